package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Main runs a RunContext-style entry point under a signal-aware context
// and exits with its code.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	os.Exit(mainWith(run, os.Args[1:], os.Stdout, os.Stderr))
}

func mainWith(run func(context.Context, []string, io.Writer, io.Writer) int, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, argv, stdout, stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	return code
}
