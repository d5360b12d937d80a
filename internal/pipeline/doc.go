// Package pipeline reads each input through records, runs an Analyzer over
// it, and calls a visit callback with the reports in input order.
//
// The only contract to implement is Analyzer (Analyze + Config).
// This keeps the pipeline swappable and testable.
package pipeline
