package ui

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"profdemo/internal/export"
	"profdemo/internal/profiler"
	"profdemo/internal/runner"
)

// RenderRunResult renders a run result plus the top-N profile rows.
func RenderRunResult(res runner.Result, top int) string {
	var buf bytes.Buffer

	buf.WriteString(headerStyle.Render(" "+res.Benchmark+" ") + "\n\n")
	buf.WriteString(resultStyle.Render("Result: "+res.Summary) + "\n")
	buf.WriteString(dimStyle.Render(fmt.Sprintf("Elapsed: %v", res.Elapsed)) + "\n\n")
	buf.WriteString(RenderSnapshot(res.Stats, top))

	return buf.String()
}

// RenderSnapshot renders the top rows of a profile snapshot, sorted by
// cumulative time descending.
func RenderSnapshot(snap *profiler.Snapshot, top int) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%d function calls in %.6f seconds\n\n",
		snap.TotalCalls(), snap.Total.Seconds())

	tw := tabwriter.NewWriter(&buf, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "NCALLS\tTOTTIME\tCUMTIME\tSITE")
	for i, r := range snap.SortBy(profiler.ByCumulative) {
		if top > 0 && i >= top {
			fmt.Fprintf(tw, "...\t\t\t(%d more)\n", len(snap.Records)-top)
			break
		}
		fmt.Fprintf(tw, "%d\t%.6f\t%.6f\t%s\n",
			r.Count, r.Exclusive.Seconds(), r.Inclusive.Seconds(), r.Site)
	}
	tw.Flush()
	return buf.String()
}

// RenderReport renders a comparison report as a table, followed by the
// pairwise speedup of the first two entries when present.
func RenderReport(rep runner.Report) string {
	var buf bytes.Buffer

	tw := tabwriter.NewWriter(&buf, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "BENCHMARK\tBEST\tREPS")
	for _, e := range rep.Entries {
		fmt.Fprintf(tw, "%s\t%v\t%d\n", e.Benchmark, e.Best, e.Repetitions)
	}
	tw.Flush()

	if len(rep.Entries) >= 2 {
		a, b := rep.Entries[0], rep.Entries[1]
		if ratio, err := rep.Speedup(a.Benchmark, b.Benchmark); err == nil {
			faster, slower := a.Benchmark, b.Benchmark
			if a.Best > b.Best {
				faster, slower = b.Benchmark, a.Benchmark
			}
			buf.WriteString("\n" + resultStyle.Render(
				fmt.Sprintf("%s is %.2fx faster than %s", faster, ratio, slower)) + "\n")
		}
	}
	return buf.String()
}

// RenderError renders an error for inline display.
func RenderError(err error) string {
	return errorStyle.Render("Error: " + err.Error())
}

// RenderArtifacts renders per-artifact export outcomes.
func RenderArtifacts(artifacts []export.Artifact) string {
	var buf bytes.Buffer
	for _, a := range artifacts {
		if a.Err != nil {
			buf.WriteString(errorStyle.Render("✗") +
				fmt.Sprintf(" %s -> %s: %v\n", a.Kind, a.Path, a.Err))
			continue
		}
		buf.WriteString(resultStyle.Render("✓") +
			fmt.Sprintf(" %s -> %s (%d bytes)\n", a.Kind, a.Path, a.Size))
	}
	return buf.String()
}
