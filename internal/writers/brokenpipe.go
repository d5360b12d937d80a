package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err means the reader went away (EPIPE or a
// closed io.Pipe), as when output is piped into `head`.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}

// IgnoreBrokenPipe returns nil for broken-pipe errors and err otherwise.
func IgnoreBrokenPipe(err error) error {
	if IsBrokenPipe(err) {
		return nil
	}
	return err
}
