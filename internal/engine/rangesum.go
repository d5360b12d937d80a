package engine

import (
	"fmt"
	"slices"
)

// RangeStrategy selects how the contiguous run is searched.
type RangeStrategy string

const (
	RangeBinary RangeStrategy = "binary" // binary search over prefix sums
	RangeScan   RangeStrategy = "scan"   // running sum from every start
)

// RangeStrategies lists the accepted range strategy names.
var RangeStrategies = []RangeStrategy{RangeBinary, RangeScan}

// ParseRangeStrategy maps a CLI/config name to a RangeStrategy.
func ParseRangeStrategy(s string) (RangeStrategy, error) {
	for _, st := range RangeStrategies {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown range strategy %q (want binary | scan)", s)
}

// Range is the half-open run numbers[Start:End] with its extremes.
type Range struct {
	Start int
	End   int
	Min   uint64
	Max   uint64
}

// Len is the number of elements in the run.
func (r Range) Len() int { return r.End - r.Start }

// Weakness is the smallest plus the largest value of the run.
func (r Range) Weakness() uint64 { return r.Min + r.Max }

// PrefixSums returns prefix with prefix[0] = 0 and prefix[i] = sum(numbers[:i]).
func PrefixSums(numbers []uint64) []uint64 {
	prefix := make([]uint64, len(numbers)+1)
	for i, v := range numbers {
		prefix[i+1] = prefix[i] + v
	}
	return prefix
}

// FindRange returns the run of at least two elements summing to target with
// the smallest start index (and, for that start, the smallest end).
func FindRange(numbers []uint64, target uint64, s RangeStrategy) (Range, error) {
	var (
		start, end int
		ok         bool
	)
	switch s {
	case RangeBinary, "":
		start, end, ok = findBinary(numbers, target)
	case RangeScan:
		start, end, ok = findScan(numbers, target)
	default:
		return Range{}, fmt.Errorf("unknown range strategy %q", s)
	}
	if !ok {
		return Range{}, fmt.Errorf("%w: no run of two or more values sums to %d", ErrNoMatchingRange, target)
	}
	r := Range{Start: start, End: end, Min: numbers[start], Max: numbers[start]}
	for _, v := range numbers[start+1 : end] {
		r.Min = min(r.Min, v)
		r.Max = max(r.Max, v)
	}
	return r, nil
}

// findBinary looks for prefix[s]+target in prefix[s+2:]. The prefix array is
// non-decreasing, so the lower bound is the shortest matching end.
func findBinary(numbers []uint64, target uint64) (int, int, bool) {
	prefix := PrefixSums(numbers)
	for s := 0; s+2 <= len(numbers); s++ {
		k, found := slices.BinarySearch(prefix[s+2:], prefix[s]+target)
		if found {
			return s, s + 2 + k, true
		}
	}
	return 0, 0, false
}

func findScan(numbers []uint64, target uint64) (int, int, bool) {
	for s := 0; s+1 < len(numbers); s++ {
		sum := numbers[s]
		for e := s + 1; e < len(numbers); e++ {
			sum += numbers[e]
			if sum == target {
				return s, e + 1, true
			}
			if sum > target {
				break
			}
		}
	}
	return 0, 0, false
}
