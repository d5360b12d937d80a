package output

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Formats lists the accepted --output values.
var Formats = []string{FormatText, FormatJSON, FormatJSONL}

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "source\tcount\twindow\tstrategy\tanomaly\tanomaly_index\trange_start\trange_end\trange_min\trange_max\tweakness"

// NotFound is printed in the anomaly column when every value is valid.
const NotFound = "not found"
