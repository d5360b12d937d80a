// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"seqcheck/internal/engine"
	"seqcheck/internal/jsonlutil"
	"seqcheck/internal/output"
)

// StartJSONLWriter streams each report as one JSON line (v1).
func StartJSONLWriter(out io.Writer, _ bool, bufSize int) (chan<- engine.Report, <-chan error) {
	return jsonlutil.Start[engine.Report](out, bufSize,
		func(enc *json.Encoder, r engine.Report) error {
			return enc.Encode(output.ToAPIReport(r))
		},
		IsBrokenPipe,
	)
}
