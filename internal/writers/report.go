package writers

import (
	"io"

	"seqcheck/internal/engine"
	"seqcheck/internal/output"
)

func init() {
	RegisterReport(output.FormatText, StartTextWriter)
	RegisterReport(output.FormatJSON, StartJSONWriter)
	RegisterReport(output.FormatJSONL, StartJSONLWriter)
}

// StartTextWriter streams one TSV row per report.
func StartTextWriter(out io.Writer, header bool, bufSize int) (chan<- engine.Report, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Report, bufSize)
	errCh := make(chan error, 1)
	go func() {
		err := output.StreamText(out, in, header)
		if err != nil {
			// keep draining so senders never block on a dead writer
			for range in {
			}
		}
		errCh <- IgnoreBrokenPipe(err)
	}()
	return in, errCh
}

// StartJSONWriter buffers every report and writes one JSON array at the end.
func StartJSONWriter(out io.Writer, _ bool, bufSize int) (chan<- engine.Report, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Report, bufSize)
	errCh := make(chan error, 1)
	go func() {
		buf := []engine.Report{}
		for r := range in {
			buf = append(buf, r)
		}
		errCh <- IgnoreBrokenPipe(output.WriteJSON(out, buf))
	}()
	return in, errCh
}
