package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"seqcheck/internal/engine"
	"seqcheck/internal/records"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const example = "35\n20\n15\n25\n47\n40\n62\n55\n65\n95\n102\n117\n150\n182\n127\n219\n299\n277\n309\n576\n"

func writeInput(t *testing.T, dir, name, data string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
	return fn
}

func TestForEachReport_Example(t *testing.T) {
	fn := writeInput(t, t.TempDir(), "in.txt", example)
	eng := engine.New(engine.Config{Window: 5})

	var got []engine.Report
	err := ForEachReport(context.Background(), Config{Jobs: 1, RunID: "r1"}, []string{fn}, eng,
		func(r engine.Report) error {
			got = append(got, r)
			return nil
		})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, fn, got[0].Source)
	assert.Equal(t, 20, got[0].Count)
	assert.Equal(t, 5, got[0].Window)
	assert.Equal(t, engine.StrategyTwoPointer, got[0].Strategy)
	assert.Equal(t, "r1", got[0].RunID)
	assert.Equal(t, uint64(127), got[0].Anomaly.Value)
	assert.Equal(t, uint64(62), got[0].Range.Weakness())
}

// fakeAn sleeps longer for earlier inputs so completion order is reversed.
type fakeAn struct {
	calls atomic.Int32
	fail  uint64 // first value that makes Analyze fail
}

func (f *fakeAn) Config() engine.Config { return engine.Config{Window: 2, Strategy: engine.StrategyBrute} }

func (f *fakeAn) Analyze(ctx context.Context, nums []uint64) (engine.Result, error) {
	f.calls.Add(1)
	time.Sleep(time.Duration(20-nums[0]) * time.Millisecond)
	if f.fail != 0 && nums[0] == f.fail {
		return engine.Result{}, engine.ErrNoMatchingRange
	}
	return engine.Result{Found: true, Anomaly: engine.Anomaly{Value: nums[0]}}, nil
}

func readName(_ context.Context, path string) ([]uint64, error) {
	var v uint64
	_, err := fmt.Sscanf(path, "in%d", &v)
	return []uint64{v}, err
}

func TestForEachReport_OrderedWithManyJobs(t *testing.T) {
	var inputs []string
	for i := 1; i <= 12; i++ {
		inputs = append(inputs, fmt.Sprintf("in%d", i))
	}
	var got []uint64
	err := ForEachReport(context.Background(), Config{Jobs: 4, Read: readName}, inputs, &fakeAn{},
		func(r engine.Report) error {
			got = append(got, r.Anomaly.Value)
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, got)
}

func TestForEachReport_FirstErrorByPosition(t *testing.T) {
	var inputs []string
	for i := 1; i <= 10; i++ {
		inputs = append(inputs, fmt.Sprintf("in%d", i))
	}
	an := &fakeAn{fail: 4}
	var got []uint64
	err := ForEachReport(context.Background(), Config{Jobs: 3, Read: readName}, inputs, an,
		func(r engine.Report) error {
			got = append(got, r.Anomaly.Value)
			return nil
		})
	require.ErrorIs(t, err, engine.ErrNoMatchingRange)
	assert.Contains(t, err.Error(), "in4")
	assert.Equal(t, []uint64{1, 2, 3}, got)
	assert.Less(t, int(an.calls.Load()), 10, "inputs after the failure should be skipped")
}

// failSet fails every listed input; later inputs finish sooner.
type failSet map[uint64]error

func (f failSet) Config() engine.Config { return engine.Config{Window: 2, Strategy: engine.StrategyBrute} }

func (f failSet) Analyze(_ context.Context, nums []uint64) (engine.Result, error) {
	time.Sleep(time.Duration(20-nums[0]) * time.Millisecond)
	if err := f[nums[0]]; err != nil {
		return engine.Result{}, err
	}
	return engine.Result{}, nil
}

// The earlier input's error wins even when a later input fails first.
func TestForEachReport_EarlierErrorBeatsFasterOne(t *testing.T) {
	early := errors.New("early")
	late := errors.New("late")
	inputs := []string{"in1", "in2", "in3", "in4", "in5"}
	err := ForEachReport(context.Background(), Config{Jobs: 5, Read: readName}, inputs,
		failSet{2: early, 5: late},
		func(engine.Report) error { return nil })
	require.ErrorIs(t, err, early)
	assert.NotErrorIs(t, err, late)
	assert.Contains(t, err.Error(), "in2")
}

func TestForEachReport_ReadErrorStops(t *testing.T) {
	dir := t.TempDir()
	good := writeInput(t, dir, "good.txt", example)
	bad := writeInput(t, dir, "bad.txt", "1\n2\nthree\n")

	var n int
	err := ForEachReport(context.Background(), Config{Jobs: 2}, []string{good, bad, good},
		engine.New(engine.Config{Window: 5}),
		func(engine.Report) error { n++; return nil })
	require.ErrorIs(t, err, records.ErrRecordParse)
	assert.True(t, strings.Contains(err.Error(), "bad.txt"))
	assert.Equal(t, 1, n)
}

func TestForEachReport_VisitErrorStops(t *testing.T) {
	stop := errors.New("writer closed")
	var n int
	err := ForEachReport(context.Background(), Config{Jobs: 2, Read: readName},
		[]string{"in1", "in2", "in3"}, &fakeAn{},
		func(engine.Report) error { n++; return stop })
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 1, n)
}

func TestForEachReport_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ForEachReport(ctx, Config{Jobs: 2, Read: readName}, []string{"in1", "in2"}, &fakeAn{},
		func(engine.Report) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}

func TestForEachReport_NoInputs(t *testing.T) {
	err := ForEachReport(context.Background(), Config{}, nil, &fakeAn{},
		func(engine.Report) error { t.Fatal("unexpected visit"); return nil })
	require.NoError(t, err)
}
