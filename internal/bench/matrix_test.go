package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixMultiply_Definition(t *testing.T) {
	const size = 4

	v, err := MatrixMultiply(nil, size)
	require.NoError(t, err)
	c := v.(MatrixValue)
	require.Len(t, c, size)

	// C[i][j] must equal sum over k of A[i][k]*B[k][j] with
	// A[i][k] = i+k and B[k][j] = k*j.
	for i := int64(0); i < size; i++ {
		for j := int64(0); j < size; j++ {
			var want int64
			for k := int64(0); k < size; k++ {
				want += (i + k) * (k * j)
			}
			assert.Equal(t, want, c[i][j], "C[%d][%d]", i, j)
		}
	}
}

func TestMatrixMultiply_InvalidArgument(t *testing.T) {
	_, err := MatrixMultiply(nil, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = MatrixMultiply(nil, -3)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
