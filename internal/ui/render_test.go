package ui

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"profdemo/internal/export"
	"profdemo/internal/profiler"
	"profdemo/internal/runner"
)

func renderSnapshot() *profiler.Snapshot {
	return &profiler.Snapshot{
		Records: []profiler.CallRecord{
			{Site: profiler.Site{Function: "bench.fibRecursive", File: "fib.go", Line: 30}, Count: 177, Exclusive: time.Millisecond, Inclusive: time.Millisecond},
			{Site: profiler.Site{Function: "bench.concatAll", File: "strings.go", Line: 20}, Count: 1, Exclusive: 2 * time.Millisecond, Inclusive: 5 * time.Millisecond},
			{Site: profiler.Site{Function: "bench.appendDigits", File: "strings.go", Line: 30}, Count: 2000, Exclusive: 3 * time.Millisecond, Inclusive: 3 * time.Millisecond},
		},
		Total: 6 * time.Millisecond,
	}
}

func TestRenderRunResult(t *testing.T) {
	res := runner.Result{
		Benchmark: "fib-recursive",
		Summary:   "832040",
		Elapsed:   3 * time.Millisecond,
		Stats:     renderSnapshot(),
	}

	out := RenderRunResult(res, 10)
	assert.Contains(t, out, "fib-recursive")
	assert.Contains(t, out, "Result: 832040")
	assert.Contains(t, out, "Elapsed:")
	assert.Contains(t, out, "NCALLS")
}

func TestRenderSnapshot_Truncation(t *testing.T) {
	out := RenderSnapshot(renderSnapshot(), 2)

	assert.Contains(t, out, "2178 function calls")
	assert.Contains(t, out, "(1 more)")
	assert.NotContains(t, out, "fib.go:30")
}

func TestRenderSnapshot_NoTruncationWhenTopCoversAll(t *testing.T) {
	out := RenderSnapshot(renderSnapshot(), 10)

	assert.Contains(t, out, "fib.go:30(bench.fibRecursive)")
	assert.NotContains(t, out, "more)")
}

func TestRenderReport(t *testing.T) {
	rep := runner.Report{Entries: []runner.Entry{
		{Benchmark: "fib-recursive", Best: 10 * time.Millisecond, Repetitions: 100},
		{Benchmark: "fib-iterative", Best: 2 * time.Millisecond, Repetitions: 100},
	}}

	out := RenderReport(rep)
	assert.Contains(t, out, "BENCHMARK")
	assert.Contains(t, out, "fib-recursive")
	assert.Contains(t, out, "fib-iterative is 5.00x faster than fib-recursive")
}

func TestRenderReport_SingleEntryNoSpeedup(t *testing.T) {
	rep := runner.Report{Entries: []runner.Entry{
		{Benchmark: "matrix-mul", Best: time.Millisecond, Repetitions: 10},
	}}

	out := RenderReport(rep)
	assert.Contains(t, out, "matrix-mul")
	assert.NotContains(t, out, "faster")
}

func TestRenderError(t *testing.T) {
	out := RenderError(errors.New("unknown benchmark"))
	assert.Contains(t, out, "Error: unknown benchmark")
}

func TestRenderArtifacts(t *testing.T) {
	out := RenderArtifacts([]export.Artifact{
		{Kind: export.KindBinary, Path: "profile.pb.gz", Size: 321},
		{Kind: export.KindText, Path: "/bad/profile.txt", Err: errors.New("permission denied")},
	})

	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "profile.pb.gz (321 bytes)")
	assert.Contains(t, out, "✗")
	assert.Contains(t, out, "permission denied")
}
