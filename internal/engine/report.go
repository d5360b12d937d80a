package engine

// Report is the outcome for one input, as streamed to writers.
type Report struct {
	Source   string // display name of the input
	Count    int    // number of values read
	Window   int
	Strategy Strategy
	RunID    string
	Result
}
