// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"io"
	"io/fs"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"seqcheck/internal/cmdutil"
	"seqcheck/internal/engine"
	"seqcheck/internal/pipeline"
	"seqcheck/internal/records"
	"seqcheck/internal/runutil"
	"seqcheck/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitRuntime  = 3
	ExitCanceled = 130
)

type Options struct {
	Inputs []string
	Jobs   int

	Quiet             bool
	Verbose           bool
	NoAnomalyExitCode int
}

type WriterFactory interface {
	Start(out io.Writer, bufSize int) (chan<- engine.Report, <-chan error)
}

// ExitCode classifies a pipeline error. Bad input is a usage error; anything
// else that is not a cancellation is a runtime error.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	case errors.Is(err, engine.ErrInvalidWindowSize),
		errors.Is(err, records.ErrRecordParse),
		errors.Is(err, fs.ErrNotExist),
		errors.Is(err, fs.ErrPermission):
		return ExitUsage
	default:
		return ExitRuntime
	}
}

func Run(
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	an pipeline.Analyzer,
	wf WriterFactory,
) int {
	outw := bufio.NewWriter(stdout)

	log := cmdutil.NewLogger(stderr, o.Quiet, o.Verbose)
	defer func() { _ = log.Sync() }()

	runID := uuid.NewString()
	log = log.With(zap.String("run_id", runID))

	ecfg := an.Config()
	log.Debug("run start",
		zap.Int("inputs", len(o.Inputs)),
		zap.Int("jobs", o.Jobs),
		zap.Int("window", ecfg.Window),
		zap.String("strategy", string(ecfg.Strategy)),
		zap.String("range_strategy", string(ecfg.RangeStrategy)),
		zap.Int("threads", ecfg.Threads),
	)

	inCh, writeErr := wf.Start(outw, runutil.WriterBuffer(o.Jobs))

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	counts, perr := cmdutil.RunStream(
		ctx,
		pipeline.Config{Jobs: o.Jobs, RunID: runID, Logger: log},
		o.Inputs,
		an,
		func(r engine.Report) error {
			select {
			case inCh <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		log.Error("write failed", zap.Error(werr))
		return ExitRuntime
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		log.Error("flush failed", zap.Error(e))
		return ExitRuntime
	}

	if perr != nil {
		code := ExitCode(perr)
		if code != ExitCanceled {
			log.Error("run failed", zap.Error(perr))
		}
		return code
	}
	log.Debug("run done", zap.Int("reports", counts.Inputs), zap.Int("anomalies", counts.Anomalies))
	if counts.Anomalies == 0 {
		if counts.Inputs > 0 {
			log.Info("no anomaly found", zap.Int("inputs", counts.Inputs))
		}
		return o.NoAnomalyExitCode
	}
	return ExitOK
}
