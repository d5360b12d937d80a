// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"seqcheck/internal/engine"
)

// StartFunc spins up a writer goroutine for one output format. Reports are
// sent on the returned channel; the error channel yields exactly one value
// after the input channel is closed.
type StartFunc func(out io.Writer, header bool, bufSize int) (chan<- engine.Report, <-chan error)

// ReportWriters maps format → writer. Register in init() blocks.
var ReportWriters = map[string]StartFunc{}

// RegisterReport adds a format (idempotent, last wins).
func RegisterReport(format string, fn StartFunc) { ReportWriters[format] = fn }

// RegisteredFormats returns the registered format names, sorted.
func RegisteredFormats() []string {
	out := make([]string, 0, len(ReportWriters))
	for k := range ReportWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// StartReportWriter dispatches to the registered writer for format. An
// unknown format still returns a usable channel; the error is reported once
// the channel is closed.
func StartReportWriter(out io.Writer, format string, header bool, bufSize int) (chan<- engine.Report, <-chan error) {
	if fn, ok := ReportWriters[format]; ok {
		return fn(out, header, bufSize)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Report, bufSize)
	errCh := make(chan error, 1)
	go func() {
		for range in {
		}
		errCh <- fmt.Errorf("unknown report format %q (no writer registered)", format)
	}()
	return in, errCh
}
