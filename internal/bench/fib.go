package bench

import (
	"fmt"
	"math/big"

	"profdemo/internal/profiler"
)

var (
	siteFibRecursive profiler.Site
	siteFibIterative profiler.Site
)

func init() {
	siteFibRecursive = profiler.SiteFor(fibRecursive)
	siteFibIterative = profiler.SiteFor(fibIterative)
}

// FibonacciRecursive computes F(n) by naive double recursion. The call
// count grows exponentially, which is the whole point: it is the
// showcase workload for the profiler. Deliberately not memoized.
// n is limited to the int64-safe range (n <= 92); in practice anything
// past ~40 is already intractable.
func FibonacciRecursive(p *profiler.Profiler, n int64) (Value, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n must be >= 0, got %d", ErrInvalidArgument, n)
	}
	if n > 92 {
		return nil, fmt.Errorf("%w: n must be <= 92 for the recursive variant, got %d", ErrInvalidArgument, n)
	}
	return IntValue{Int: big.NewInt(fibRecursive(p, n))}, nil
}

func fibRecursive(p *profiler.Profiler, n int64) int64 {
	defer p.Trace(siteFibRecursive)()
	if n <= 1 {
		return n
	}
	return fibRecursive(p, n-1) + fibRecursive(p, n-2)
}

// FibonacciIterative computes F(n) with a single pass over a running
// pair. Results use math/big: fixed-width integers overflow shortly
// past n=92 and must not be used here.
func FibonacciIterative(p *profiler.Profiler, n int64) (Value, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n must be >= 0, got %d", ErrInvalidArgument, n)
	}
	return IntValue{Int: fibIterative(p, n)}, nil
}

func fibIterative(p *profiler.Profiler, n int64) *big.Int {
	defer p.Trace(siteFibIterative)()
	a, b := big.NewInt(0), big.NewInt(1)
	for i := int64(0); i < n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return a
}
