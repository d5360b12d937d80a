// internal/pipeline/sim.go
package pipeline

import (
	"context"

	"seqcheck/internal/engine"
)

// Analyzer is the minimal capability the pipeline needs.
// Any engine (including fakes in tests) can satisfy this.
type Analyzer interface {
	Analyze(ctx context.Context, numbers []uint64) (engine.Result, error)
	Config() engine.Config
}
