package engine

import (
	"context"
	"math"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// chunksPerThread oversplits the index range so idle workers can pick up
// chunks and cancellation is noticed between chunks.
const chunksPerThread = 4

// DetectParallel is Detect with the index range split across threads
// workers. Each worker reports the first invalid index of its chunk and the
// overall answer is the minimum, so the result is identical to Detect.
// Chunks that start past the best index found so far are skipped.
func DetectParallel(ctx context.Context, numbers []uint64, window int, s Strategy, threads int) (Anomaly, bool, error) {
	if err := ValidateWindow(len(numbers), window); err != nil {
		return Anomaly{}, false, err
	}
	scan, err := scanner(s)
	if err != nil {
		return Anomaly{}, false, err
	}

	n := len(numbers) - window
	if threads > n {
		threads = n
	}
	if threads < 1 {
		threads = 1
	}
	chunks := threads * chunksPerThread
	if chunks > n {
		chunks = n
	}
	step := (n + chunks - 1) / chunks

	var best atomic.Int64
	best.Store(math.MaxInt64)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for from := window; from < len(numbers); from += step {
		to := min(from+step, len(numbers))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if passed(&best, from) {
				return nil
			}
			if i := scan(numbers, window, from, to, &best); i >= 0 {
				lower(&best, int64(i))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Anomaly{}, false, err
	}

	i := best.Load()
	if i == math.MaxInt64 {
		return Anomaly{}, false, nil
	}
	return Anomaly{Index: int(i), Value: numbers[i]}, true, nil
}

// lower stores v into best if it is smaller than the current value.
func lower(best *atomic.Int64, v int64) {
	for {
		cur := best.Load()
		if v >= cur || best.CompareAndSwap(cur, v) {
			return
		}
	}
}
