package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringConcat_Content(t *testing.T) {
	v, err := StringConcat(nil, 10)
	require.NoError(t, err)
	assert.Equal(t, TextValue("0123456789"), v.(TextValue))
}

func TestStringConcat_Length(t *testing.T) {
	// 10 one-digit numbers plus 90 two-digit numbers.
	v, err := StringConcat(nil, 100)
	require.NoError(t, err)
	assert.Len(t, string(v.(TextValue)), 190)
}

func TestStringConcat_Empty(t *testing.T) {
	v, err := StringConcat(nil, 0)
	require.NoError(t, err)
	assert.Empty(t, string(v.(TextValue)))
}

func TestStringConcat_InvalidArgument(t *testing.T) {
	_, err := StringConcat(nil, -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
