// Package runner orchestrates benchmark execution: instrumented single
// runs, the whole-suite run, and best-of-N comparison timing.
package runner

import (
	"errors"
	"fmt"
	"time"

	"profdemo/internal/bench"
	"profdemo/internal/profiler"
)

// Result is the normalized outcome of one instrumented benchmark run.
// Immutable once returned; owned by the caller. Value carries the raw
// result while Summary is bounded for display. On a failed run Value
// and Summary are empty but Stats still holds whatever was captured
// before the failure.
type Result struct {
	Benchmark string
	Value     bench.Value
	Summary   string
	Elapsed   time.Duration
	Stats     *profiler.Snapshot
}

// Run executes one benchmark under a fresh profiler. Argument and name
// validation happen before instrumentation starts; benchmark errors
// propagate unchanged, with the profiler guaranteed to be disabled
// first.
func Run(reg *bench.Registry, name string, arg int64) (Result, error) {
	spec, err := reg.Lookup(name)
	if err != nil {
		return Result{}, err
	}
	if arg < spec.MinArg {
		return Result{}, fmt.Errorf("%w: %s requires an argument >= %d, got %d",
			bench.ErrInvalidArgument, spec.Name, spec.MinArg, arg)
	}

	p := profiler.New()
	span := p.Begin()
	defer span.End()

	start := time.Now()
	val, err := spec.Fn(p, arg)
	elapsed := time.Since(start)

	res := Result{
		Benchmark: spec.Name,
		Elapsed:   elapsed,
		Stats:     span.End(),
	}
	if err != nil {
		return res, err
	}
	res.Value = val
	res.Summary = val.Summary()
	return res, nil
}

// RunAll executes every registered benchmark with its default argument,
// in registration order. A failing benchmark does not stop the rest;
// its error is joined into the returned error.
func RunAll(reg *bench.Registry) ([]Result, error) {
	var (
		results []Result
		errs    []error
	)
	for _, name := range reg.Names() {
		spec, _ := reg.Lookup(name)
		res, err := Run(reg, name, spec.DefaultArg)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		results = append(results, res)
	}
	return results, errors.Join(errs...)
}

// Profile runs the whole suite with comparison-sized arguments under a
// single profiler span, producing the combined snapshot used for
// profile-data export.
func Profile(reg *bench.Registry) (*profiler.Snapshot, error) {
	p := profiler.New()
	span := p.Begin()
	defer span.End()

	for _, spec := range reg.Specs() {
		if _, err := spec.Fn(p, spec.CompareArg); err != nil {
			return span.End(), fmt.Errorf("%s: %w", spec.Name, err)
		}
	}
	return span.End(), nil
}
