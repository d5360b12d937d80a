package engine

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRangeExample(t *testing.T) {
	for _, s := range RangeStrategies {
		r, err := FindRange(exampleSeq, 127, s)
		require.NoError(t, err, s)
		assert.Equal(t, Range{Start: 2, End: 6, Min: 15, Max: 47}, r, s)
		assert.Equal(t, []uint64{15, 25, 47, 40}, exampleSeq[r.Start:r.End])
		assert.Equal(t, uint64(62), r.Weakness())
		assert.Equal(t, 4, r.Len())
	}
}

func TestFindRangeNoMatch(t *testing.T) {
	for _, s := range RangeStrategies {
		_, err := FindRange(exampleSeq, 1, s)
		assert.ErrorIs(t, err, ErrNoMatchingRange, s)
		_, err = FindRange(nil, 5, s)
		assert.ErrorIs(t, err, ErrNoMatchingRange, s)
	}
}

// A single element equal to the target is not a run.
func TestFindRangeSingleElementExcluded(t *testing.T) {
	for _, s := range RangeStrategies {
		_, err := FindRange([]uint64{7, 100, 9}, 100, s)
		assert.ErrorIs(t, err, ErrNoMatchingRange, s)

		r, err := FindRange([]uint64{7, 100, 9, 91}, 100, s)
		require.NoError(t, err, s)
		assert.Equal(t, Range{Start: 2, End: 4, Min: 9, Max: 91}, r, s)
	}
}

func TestFindRangeZerosShortestEnd(t *testing.T) {
	for _, s := range RangeStrategies {
		r, err := FindRange([]uint64{4, 0, 3, 3, 0, 0}, 6, s)
		require.NoError(t, err, s)
		assert.Equal(t, Range{Start: 1, End: 4, Min: 0, Max: 3}, r, s)
	}
}

func TestFindRangeUnknownStrategy(t *testing.T) {
	_, err := FindRange(exampleSeq, 127, "fast")
	require.Error(t, err)
	_, err = ParseRangeStrategy("fast")
	require.Error(t, err)
}

func TestPrefixSums(t *testing.T) {
	assert.Equal(t, []uint64{0, 1, 3, 6}, PrefixSums([]uint64{1, 2, 3}))
	assert.Equal(t, []uint64{0}, PrefixSums(nil))
}

// firstRun is the definition: smallest start, then smallest end, length >= 2.
func firstRun(numbers []uint64, target uint64) (int, int, bool) {
	for s := range numbers {
		var sum uint64
		for e := s; e < len(numbers); e++ {
			sum += numbers[e]
			if e > s && sum == target {
				return s, e + 1, true
			}
		}
	}
	return 0, 0, false
}

func TestFindRangeStrategiesAgree(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for iter := 0; iter < 500; iter++ {
		n := r.IntN(40)
		seq := make([]uint64, n)
		for i := range seq {
			seq[i] = uint64(r.IntN(30))
		}
		target := uint64(r.IntN(120))
		if n >= 2 && r.IntN(2) == 0 {
			s := r.IntN(n - 1)
			e := s + 2 + r.IntN(n-s-1)
			target = 0
			for _, v := range seq[s:e] {
				target += v
			}
		}

		ws, we, wok := firstRun(seq, target)
		for _, st := range RangeStrategies {
			got, err := FindRange(seq, target, st)
			if !wok {
				require.ErrorIs(t, err, ErrNoMatchingRange, "seq=%v target=%d", seq, target)
				continue
			}
			require.NoError(t, err, "seq=%v target=%d", seq, target)
			require.Equal(t, ws, got.Start, "%s seq=%v target=%d", st, seq, target)
			require.Equal(t, we, got.End, "%s seq=%v target=%d", st, seq, target)
			require.Greater(t, got.End, got.Start+1)

			var sum uint64
			lo, hi := seq[got.Start], seq[got.Start]
			for _, v := range seq[got.Start:got.End] {
				sum += v
				lo, hi = min(lo, v), max(hi, v)
			}
			require.Equal(t, target, sum)
			require.Equal(t, lo, got.Min)
			require.Equal(t, hi, got.Max)
		}
	}
}

func TestFindRangeIdempotent(t *testing.T) {
	for _, s := range RangeStrategies {
		a, errA := FindRange(exampleSeq, 127, s)
		b, errB := FindRange(exampleSeq, 127, s)
		require.NoError(t, errA)
		require.NoError(t, errB)
		require.Equal(t, a, b)
	}
}
