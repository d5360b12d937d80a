// internal/output/rows.go
package output

import (
	"fmt"

	"seqcheck/internal/engine"
)

// FormatRowTSV returns the 11 report columns (no trailing newline). Columns
// that do not apply are "-".
func FormatRowTSV(r engine.Report) string {
	if !r.Found {
		return fmt.Sprintf("%s\t%d\t%d\t%s\t%s\t-\t-\t-\t-\t-\t-",
			r.Source, r.Count, r.Window, r.Strategy, NotFound)
	}
	return fmt.Sprintf("%s\t%d\t%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d",
		r.Source, r.Count, r.Window, r.Strategy,
		r.Anomaly.Value, r.Anomaly.Index,
		r.Range.Start, r.Range.End, r.Range.Min, r.Range.Max,
		r.Range.Weakness(),
	)
}
