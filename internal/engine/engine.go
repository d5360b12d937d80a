// internal/engine/engine.go
package engine

import (
	"context"
	"fmt"
)

// Config holds the checking parameters.
type Config struct {
	Window        int           // number of preceding elements each value is checked against
	Strategy      Strategy      // anomaly scan strategy ("" = twopointer)
	RangeStrategy RangeStrategy // range search strategy ("" = binary)
	Threads       int           // workers for the anomaly scan (<=1 = serial)
}

// Engine runs both checking steps with a fixed config.
type Engine struct {
	cfg Config
}

// New creates a new Engine.
func New(c Config) *Engine {
	if c.Strategy == "" {
		c.Strategy = StrategyTwoPointer
	}
	if c.RangeStrategy == "" {
		c.RangeStrategy = RangeBinary
	}
	return &Engine{cfg: c}
}

// Config returns the effective config (defaults applied).
func (e *Engine) Config() Config { return e.cfg }

// Result is the outcome of Analyze. Range is only meaningful when Found is true.
type Result struct {
	Anomaly Anomaly
	Found   bool
	Range   Range
}

// Detect runs the anomaly scan, in parallel when Threads > 1.
func (e *Engine) Detect(ctx context.Context, numbers []uint64) (Anomaly, bool, error) {
	if e.cfg.Threads > 1 {
		return DetectParallel(ctx, numbers, e.cfg.Window, e.cfg.Strategy, e.cfg.Threads)
	}
	if err := ctx.Err(); err != nil {
		return Anomaly{}, false, err
	}
	return Detect(numbers, e.cfg.Window, e.cfg.Strategy)
}

// FindRange searches for the run summing to target.
func (e *Engine) FindRange(numbers []uint64, target uint64) (Range, error) {
	return FindRange(numbers, target, e.cfg.RangeStrategy)
}

// Analyze detects the first anomaly and, if there is one, the run summing to
// it. An input without anomaly is not an error: Found is false and the range
// step is skipped.
func (e *Engine) Analyze(ctx context.Context, numbers []uint64) (Result, error) {
	a, found, err := e.Detect(ctx, numbers)
	if err != nil {
		return Result{}, err
	}
	if !found {
		return Result{}, nil
	}
	r, err := e.FindRange(numbers, a.Value)
	if err != nil {
		return Result{Anomaly: a, Found: true}, fmt.Errorf("anomaly %d at index %d: %w", a.Value, a.Index, err)
	}
	return Result{Anomaly: a, Found: true, Range: r}, nil
}
