package bench

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntValue_Summary(t *testing.T) {
	assert.Equal(t, "55", IntValue{Int: big.NewInt(55)}.Summary())

	// A 100-digit number gets truncated with a digit count.
	huge, ok := new(big.Int).SetString("1"+strings.Repeat("0", 99), 10)
	require.True(t, ok)
	s := IntValue{Int: huge}.Summary()
	assert.Contains(t, s, "...")
	assert.Contains(t, s, "(100 digits)")
}

func TestMatrixValue_Summary(t *testing.T) {
	m := MatrixValue{{1, 2}, {3, 4}}
	assert.Equal(t, "2x2 matrix", m.Summary())
}

func TestFactorsValue_Summary(t *testing.T) {
	assert.Equal(t, "[2 2 3 5]", FactorsValue{2, 2, 3, 5}.Summary())

	long := make(FactorsValue, 20)
	for i := range long {
		long[i] = 2
	}
	s := long.Summary()
	assert.Contains(t, s, "(20 factors)")
}

func TestTextValue_Summary(t *testing.T) {
	assert.Equal(t, "short", TextValue("short").Summary())

	s := TextValue(strings.Repeat("x", 100)).Summary()
	assert.Contains(t, s, "(100 chars)")
}
