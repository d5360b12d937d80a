package engine

import (
	"slices"
	"sync/atomic"
)

// pairTable holds, for every element k in [base, base+rows), the sums
// numbers[k]+numbers[k+j] for j = 1..w-1 as one flat row of w-1 entries.
// Entries past the end of numbers stay zero and are never read.
type pairTable struct {
	sums  []uint64
	width int
	base  int
}

func newPairTable(numbers []uint64, w, lo, hi int) *pairTable {
	width := w - 1
	t := &pairTable{sums: make([]uint64, (hi-lo)*width), width: width, base: lo}
	for k := lo; k < hi; k++ {
		row := t.row(k)
		for j := 1; j <= width && k+j < len(numbers); j++ {
			row[j-1] = numbers[k] + numbers[k+j]
		}
	}
	return t
}

func (t *pairTable) row(k int) []uint64 {
	off := (k - t.base) * t.width
	return t.sums[off : off+t.width]
}

// contains reports whether target is a pair sum inside numbers[i-w:i]. Row k
// is cut at i-1-k so the partner never reaches index i or beyond.
func (t *pairTable) contains(i, w int, target uint64) bool {
	for k := i - w; k < i-1; k++ {
		if slices.Contains(t.row(k)[:i-1-k], target) {
			return true
		}
	}
	return false
}

func scanPairTable(numbers []uint64, w, from, to int, best *atomic.Int64) int {
	t := newPairTable(numbers, w, from-w, to-1)
	for i := from; i < to; i++ {
		if passed(best, i) {
			return -1
		}
		if !t.contains(i, w, numbers[i]) {
			return i
		}
	}
	return -1
}
