package bench

import "errors"

var (
	// ErrInvalidArgument marks a benchmark argument outside the
	// function's domain. It is always returned before any work starts.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownBenchmark is returned by registry lookups for
	// unregistered names.
	ErrUnknownBenchmark = errors.New("unknown benchmark")
)
