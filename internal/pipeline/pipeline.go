// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"seqcheck/internal/engine"
	"seqcheck/internal/records"
)

// Config controls the pipeline.
type Config struct {
	Jobs   int    // inputs analysed concurrently (>=1)
	RunID  string // copied into every report
	Logger *zap.Logger

	// Read loads one input; nil means records.ReadFile.
	Read func(ctx context.Context, path string) ([]uint64, error)
}

type job struct {
	idx  int
	path string
}

type result struct {
	idx int
	rep engine.Report
	err error
}

// ForEachReport analyses every input and calls visit with the reports in
// input order. After the first failing input (by position) no later input is
// started and no later report is visited; that error is returned. Context
// cancellation returns ctx.Err().
func ForEachReport(
	ctx context.Context,
	cfg Config,
	inputs []string,
	an Analyzer,
	visit func(engine.Report) error,
) error {
	if cfg.Jobs < 1 {
		cfg.Jobs = 1
	}
	read := cfg.Read
	if read == nil {
		read = records.ReadFile
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	ecfg := an.Config()

	jobs := make(chan job)
	results := make(chan result, cfg.Jobs)

	// lowest failing input index; inputs above it are skipped
	var stopAt atomic.Int64
	stopAt.Store(math.MaxInt64)

	// Workers. Errors travel with results so the collector can order them.
	var wg sync.WaitGroup
	for w := 0; w < cfg.Jobs; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				if int64(j.idx) > stopAt.Load() {
					continue
				}
				t0 := time.Now()
				name := records.DisplayName(j.path)
				rep := engine.Report{Source: name, Window: ecfg.Window, Strategy: ecfg.Strategy, RunID: cfg.RunID}

				nums, err := read(ctx, j.path)
				if err == nil {
					rep.Count = len(nums)
					rep.Result, err = an.Analyze(ctx, nums)
					if err != nil && ctx.Err() == nil {
						err = fmt.Errorf("%s: %w", name, err)
					}
				}
				if err != nil {
					lower(&stopAt, int64(j.idx))
				} else {
					log.Debug("input analysed",
						zap.String("source", name),
						zap.Int("count", rep.Count),
						zap.Bool("anomaly_found", rep.Found),
						zap.Duration("elapsed", time.Since(t0)))
				}
				results <- result{idx: j.idx, rep: rep, err: err}
			}
		}()
	}

	// Collector: re-order and visit
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]result)
		next := 0
		for r := range results {
			pending[r.idx] = r
			for cerr == nil {
				cur, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if cur.err != nil {
					cerr = cur.err
					break
				}
				if err := visit(cur.rep); err != nil {
					cerr = err
					lower(&stopAt, int64(cur.idx))
				}
			}
		}
	}()

	// Feed work
feed:
	for i, path := range inputs {
		if int64(i) > stopAt.Load() {
			break
		}
		select {
		case <-ctx.Done():
			break feed
		case jobs <- job{idx: i, path: path}:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return cerr
}

func lower(v *atomic.Int64, n int64) {
	for {
		cur := v.Load()
		if n >= cur || v.CompareAndSwap(cur, n) {
			return
		}
	}
}
