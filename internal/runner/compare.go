package runner

import (
	"fmt"
	"math"
	"time"

	"profdemo/internal/bench"
)

// Entry is the best-of-N timing for one benchmark.
type Entry struct {
	Benchmark   string
	Best        time.Duration
	Repetitions int
}

// Report is an ordered set of comparison entries, in request order.
// Speedup ratios are derived on demand, never stored.
type Report struct {
	Entries []Entry
}

// Compare times each named benchmark over reps independent,
// uninstrumented invocations using its comparison argument, recording
// the minimum observed duration. Minimum, not mean: it best
// approximates steady-state cost by discarding scheduling noise.
//
// reps must be > 0. An empty name list yields an empty report.
func Compare(reg *bench.Registry, names []string, reps int) (Report, error) {
	if reps <= 0 {
		return Report{}, fmt.Errorf("%w: repetitions must be > 0, got %d",
			bench.ErrInvalidArgument, reps)
	}

	var report Report
	for _, name := range names {
		spec, err := reg.Lookup(name)
		if err != nil {
			return Report{}, err
		}

		best := time.Duration(math.MaxInt64)
		for i := 0; i < reps; i++ {
			start := time.Now()
			if _, err := spec.Fn(nil, spec.CompareArg); err != nil {
				return Report{}, fmt.Errorf("%s: %w", spec.Name, err)
			}
			if d := time.Since(start); d < best {
				best = d
			}
		}
		report.Entries = append(report.Entries, Entry{
			Benchmark:   spec.Name,
			Best:        best,
			Repetitions: reps,
		})
	}
	return report, nil
}

// Speedup returns the ratio between two entries' best times,
// max/min, so the result is always >= 1.
func (r Report) Speedup(a, b string) (float64, error) {
	ea, err := r.entry(a)
	if err != nil {
		return 0, err
	}
	eb, err := r.entry(b)
	if err != nil {
		return 0, err
	}

	hi, lo := ea.Best, eb.Best
	if lo > hi {
		hi, lo = lo, hi
	}
	if lo <= 0 {
		return math.Inf(1), nil
	}
	return float64(hi) / float64(lo), nil
}

func (r Report) entry(name string) (Entry, error) {
	for _, e := range r.Entries {
		if e.Benchmark == name {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q not in report", bench.ErrUnknownBenchmark, name)
}
