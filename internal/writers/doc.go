// Package writers serializes engine reports. Each format runs in its own
// goroutine fed by a channel and reports a single error when the channel is
// closed, so the pipeline never waits on presentation.
//
// Formats register themselves in ReportWriters; JSON and JSONL encode the
// pkg/api v1 types rather than engine structs.
package writers
