// pkg/api/report_v1.go
package api

// ReportV1 is the stable JSON/JSONL schema for one checked input.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	Source   string `json:"source"`
	Count    int    `json:"count"`
	Window   int    `json:"window"`
	Strategy string `json:"strategy"`

	// Anomaly and range fields are always written; zero is a real index or
	// value. They are meaningful only when AnomalyFound is true.
	AnomalyFound bool   `json:"anomaly_found"`
	AnomalyIndex int    `json:"anomaly_index"`
	Anomaly      uint64 `json:"anomaly"`

	RangeStart int    `json:"range_start"`
	RangeEnd   int    `json:"range_end"` // exclusive
	RangeMin   uint64 `json:"range_min"`
	RangeMax   uint64 `json:"range_max"`
	Weakness   uint64 `json:"weakness"`

	RunID string `json:"run_id,omitempty"`
}
