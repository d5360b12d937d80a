// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"seqcheck/internal/appcore"
	"seqcheck/internal/cli"
	"seqcheck/internal/engine"
	"seqcheck/internal/runutil"
	"seqcheck/internal/version"
	"seqcheck/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	cmd := cli.NewCommand("seqcheck")

	opts, err := cli.ParseArgs(cmd, argv)
	if err != nil {
		if errors.Is(err, cli.ErrHelp) {
			cmd.SetOut(outw)
			_ = cmd.Help()
			return flush(outw, stderr, appcore.ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, "error:", err)
		cmd.SetOut(outw)
		_ = cmd.Usage()
		return flush(outw, stderr, appcore.ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "seqcheck version %s\n", version.Version)
		return flush(outw, stderr, appcore.ExitOK)
	}

	eng := engine.New(engine.Config{
		Window:        opts.Window,
		Strategy:      opts.Strategy,
		RangeStrategy: opts.RangeStrategy,
		Threads:       runutil.EffectiveThreads(opts.Threads),
	})
	coreOpts := appcore.Options{
		Inputs:            opts.Inputs,
		Jobs:              opts.Jobs,
		Quiet:             opts.Quiet,
		Verbose:           opts.Verbose,
		NoAnomalyExitCode: opts.NoAnomalyExitCode,
	}
	writer := appcore.NewReportWriterFactory(opts.Output, opts.Header)
	return appcore.Run(parent, stdout, stderr, coreOpts, eng, writer)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// flush writes buffered help/version text and returns code, or 3 if the
// write failed for a reason other than a closed pipe.
func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return appcore.ExitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return appcore.ExitRuntime
	}
	return code
}
