// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"seqcheck/internal/engine"
)

// StreamText prints an optional header and one TSV line per report received
// on in.
func StreamText(w io.Writer, in <-chan engine.Report, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}
