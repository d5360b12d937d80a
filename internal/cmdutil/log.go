// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a console logger on dst. quiet keeps only errors,
// verbose enables debug; quiet wins when both are set.
func NewLogger(dst io.Writer, quiet, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	switch {
	case quiet:
		level = zapcore.ErrorLevel
	case verbose:
		level = zapcore.DebugLevel
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(dst)),
		level,
	)
	return zap.New(core)
}
