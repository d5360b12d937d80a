package engine

import (
	"fmt"
	"slices"
	"sync/atomic"
)

// Strategy selects how each window is searched for a matching pair.
type Strategy string

const (
	StrategyTwoPointer Strategy = "twopointer" // sorted window, converging pointers
	StrategyPairTable  Strategy = "table"      // precomputed pair sums
	StrategyBrute      Strategy = "brute"      // every pair, every window
)

// Strategies lists the accepted strategy names in help order.
var Strategies = []Strategy{StrategyTwoPointer, StrategyPairTable, StrategyBrute}

// ParseStrategy maps a CLI/config name to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	for _, st := range Strategies {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown strategy %q (want twopointer | table | brute)", s)
}

// Anomaly is the first value with no pair in its window.
type Anomaly struct {
	Index int
	Value uint64
}

// ValidateWindow checks 2 <= window < n. A single-element window has no two
// distinct positions, so it can never validate anything.
func ValidateWindow(n, window int) error {
	if window < 2 || window >= n {
		return fmt.Errorf("%w: window %d for %d values (need 2 <= window < length)", ErrInvalidWindowSize, window, n)
	}
	return nil
}

// Detect returns the first element of numbers (from index window on) that is
// not the sum of two values at distinct positions in the window elements
// immediately before it. found is false when every element is valid.
func Detect(numbers []uint64, window int, s Strategy) (a Anomaly, found bool, err error) {
	if err := ValidateWindow(len(numbers), window); err != nil {
		return Anomaly{}, false, err
	}
	scan, err := scanner(s)
	if err != nil {
		return Anomaly{}, false, err
	}
	i := scan(numbers, window, window, len(numbers), nil)
	if i < 0 {
		return Anomaly{}, false, nil
	}
	return Anomaly{Index: i, Value: numbers[i]}, true, nil
}

// scanFunc checks indices [from, to) and returns the first invalid one or -1.
// When best is non-nil the scan gives up as soon as it reaches an index that
// is not lower than best.
type scanFunc func(numbers []uint64, w, from, to int, best *atomic.Int64) int

func scanner(s Strategy) (scanFunc, error) {
	switch s {
	case StrategyTwoPointer, "":
		return scanTwoPointer, nil
	case StrategyPairTable:
		return scanPairTable, nil
	case StrategyBrute:
		return scanBrute, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", s)
	}
}

func passed(best *atomic.Int64, i int) bool {
	return best != nil && int64(i) >= best.Load()
}

/* -------------------------------------------------------------------------- */
/*                                   brute                                    */
/* -------------------------------------------------------------------------- */

func scanBrute(numbers []uint64, w, from, to int, best *atomic.Int64) int {
	for i := from; i < to; i++ {
		if passed(best, i) {
			return -1
		}
		if !hasPair(numbers[i-w:i], numbers[i]) {
			return i
		}
	}
	return -1
}

// hasPair reports whether two distinct positions of window sum to target.
func hasPair(window []uint64, target uint64) bool {
	for j := 0; j < len(window); j++ {
		for k := j + 1; k < len(window); k++ {
			if window[j]+window[k] == target {
				return true
			}
		}
	}
	return false
}

/* -------------------------------------------------------------------------- */
/*                                two-pointer                                 */
/* -------------------------------------------------------------------------- */

// scanTwoPointer keeps a sorted copy of the current window. Moving to the
// next index replaces the oldest value with the one just checked.
func scanTwoPointer(numbers []uint64, w, from, to int, best *atomic.Int64) int {
	sorted := make([]uint64, w)
	copy(sorted, numbers[from-w:from])
	slices.Sort(sorted)

	for i := from; i < to; i++ {
		if passed(best, i) {
			return -1
		}
		if !hasPairSorted(sorted, numbers[i]) {
			return i
		}
		if i+1 < to {
			slide(sorted, numbers[i-w], numbers[i])
		}
	}
	return -1
}

func hasPairSorted(sorted []uint64, target uint64) bool {
	lo, hi := 0, len(sorted)-1
	for lo < hi {
		sum := sorted[lo] + sorted[hi]
		switch {
		case sum == target:
			return true
		case sum < target:
			lo++
		default:
			hi--
		}
	}
	return false
}

// slide removes one occurrence of out from sorted and inserts in, keeping the
// slice ordered. out must be present.
func slide(sorted []uint64, out, in uint64) {
	i, _ := slices.BinarySearch(sorted, out)
	j, _ := slices.BinarySearch(sorted, in)
	if j <= i {
		copy(sorted[j+1:i+1], sorted[j:i])
		sorted[j] = in
		return
	}
	copy(sorted[i:j-1], sorted[i+1:j])
	sorted[j-1] = in
}
