package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isPrime(n int64) bool {
	if n < 2 {
		return false
	}
	for d := int64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func TestPrimeFactors_Known(t *testing.T) {
	v, err := PrimeFactors(nil, 60)
	require.NoError(t, err)
	assert.Equal(t, FactorsValue{2, 2, 3, 5}, v.(FactorsValue))
}

func TestPrimeFactors_PrimeInput(t *testing.T) {
	v, err := PrimeFactors(nil, 13)
	require.NoError(t, err)
	assert.Equal(t, FactorsValue{13}, v.(FactorsValue))
}

func TestPrimeFactors_Properties(t *testing.T) {
	for _, n := range []int64{2, 4, 97, 360, 1024, 999983, 123456789} {
		v, err := PrimeFactors(nil, n)
		require.NoError(t, err)
		factors := v.(FactorsValue)

		product := int64(1)
		prev := int64(0)
		for _, f := range factors {
			assert.True(t, isPrime(f), "factor %d of %d is not prime", f, n)
			assert.GreaterOrEqual(t, f, prev, "factors of %d not ascending", n)
			product *= f
			prev = f
		}
		assert.Equal(t, n, product, "product of factors of %d", n)
	}
}

func TestPrimeFactors_InvalidArgument(t *testing.T) {
	for _, n := range []int64{1, 0, -60} {
		_, err := PrimeFactors(nil, n)
		assert.ErrorIs(t, err, ErrInvalidArgument, "n=%d", n)
	}
}
