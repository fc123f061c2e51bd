package bench

import (
	"fmt"

	"profdemo/internal/profiler"
)

var siteFactorize profiler.Site

func init() {
	siteFactorize = profiler.SiteFor(factorize)
}

// PrimeFactors returns the prime factorization of n in ascending order
// with multiplicity, by trial division up to sqrt(n).
func PrimeFactors(p *profiler.Profiler, n int64) (Value, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: n must be >= 2, got %d", ErrInvalidArgument, n)
	}
	return FactorsValue(factorize(p, n)), nil
}

func factorize(p *profiler.Profiler, n int64) []int64 {
	defer p.Trace(siteFactorize)()
	var factors []int64
	for d := int64(2); d*d <= n; d++ {
		for n%d == 0 {
			factors = append(factors, d)
			n /= d
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}
