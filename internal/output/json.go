// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"seqcheck/internal/engine"
	"seqcheck/pkg/api"
)

// ToAPIReport converts a domain Report to the stable wire schema (v1).
func ToAPIReport(r engine.Report) api.ReportV1 {
	v := api.ReportV1{
		Source:       r.Source,
		Count:        r.Count,
		Window:       r.Window,
		Strategy:     string(r.Strategy),
		AnomalyFound: r.Found,
		RunID:        r.RunID,
	}
	if r.Found {
		v.AnomalyIndex = r.Anomaly.Index
		v.Anomaly = r.Anomaly.Value
		v.RangeStart = r.Range.Start
		v.RangeEnd = r.Range.End
		v.RangeMin = r.Range.Min
		v.RangeMax = r.Range.Max
		v.Weakness = r.Range.Weakness()
	}
	return v
}

func toAPIReports(list []engine.Report) []api.ReportV1 {
	out := make([]api.ReportV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIReport(r))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 reports (pretty-indented).
func WriteJSON(w io.Writer, list []engine.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toAPIReports(list))
}
