package appcore

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqcheck/internal/engine"
	"seqcheck/internal/records"
)

func TestExitCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{fmt.Errorf("x: %w", context.Canceled), ExitCanceled},
		{fmt.Errorf("a.txt: %w", engine.ErrInvalidWindowSize), ExitUsage},
		{&records.RecordParseError{Line: 3, Record: "x", Err: fmt.Errorf("bad")}, ExitUsage},
		{fmt.Errorf("open: %w", os.ErrNotExist), ExitUsage},
		{fmt.Errorf("anomaly: %w", engine.ErrNoMatchingRange), ExitRuntime},
		{fmt.Errorf("disk full"), ExitRuntime},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ExitCode(c.err), "%v", c.err)
	}
}

func writeInput(t *testing.T, dir, name string, vals ...uint64) string {
	t.Helper()
	var b strings.Builder
	for _, v := range vals {
		fmt.Fprintf(&b, "%d\n", v)
	}
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(b.String()), 0o644))
	return p
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	anomalous := writeInput(t, dir, "a.txt", 1, 6, 7, 13, 20, 7)
	clean := writeInput(t, dir, "b.txt", 1, 2, 3, 5, 8, 13)
	an := engine.New(engine.Config{Window: 2})
	wf := NewReportWriterFactory("text", false)

	var out, errb bytes.Buffer
	code := Run(context.Background(), &out, &errb, Options{Inputs: []string{anomalous}, Jobs: 1, NoAnomalyExitCode: 1}, an, wf)
	require.Equal(t, ExitOK, code, errb.String())
	assert.Contains(t, out.String(), "a.txt")

	out.Reset()
	errb.Reset()
	code = Run(context.Background(), &out, &errb, Options{Inputs: []string{clean}, Jobs: 1, NoAnomalyExitCode: 7}, an, wf)
	assert.Equal(t, 7, code)
	assert.Contains(t, out.String(), "not found")

	errb.Reset()
	code = Run(context.Background(), &out, &errb, Options{Inputs: []string{filepath.Join(dir, "nope.txt")}, Jobs: 1}, an, wf)
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, errb.String(), "run failed")
}

func TestRunCanceled(t *testing.T) {
	dir := t.TempDir()
	p := writeInput(t, dir, "a.txt", 1, 6, 7, 13, 20, 7)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errb bytes.Buffer
	code := Run(ctx, &out, &errb, Options{Inputs: []string{p}, Jobs: 1, Quiet: true},
		engine.New(engine.Config{Window: 2}), NewReportWriterFactory("jsonl", false))
	assert.Equal(t, ExitCanceled, code)
	assert.Empty(t, errb.String())
}
