package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profdemo/internal/bench"
)

func TestRunCmd(t *testing.T) {
	out, err := executeCommand(rootCmd, "run", "fib-recursive", "--n=10")
	require.NoError(t, err)

	assert.Contains(t, out, "Running fib-recursive (O(2^n)) with n=10")
	assert.Contains(t, out, "Result: 55")
	assert.Contains(t, out, "NCALLS")
}

func TestRunCmd_UnknownBenchmark(t *testing.T) {
	_, err := executeCommand(rootCmd, "run", "bogus", "--n=10")
	assert.ErrorIs(t, err, bench.ErrUnknownBenchmark)
}

func TestRunCmd_InvalidArgument(t *testing.T) {
	_, err := executeCommand(rootCmd, "run", "matrix-mul", "--n=-5")
	assert.ErrorIs(t, err, bench.ErrInvalidArgument)
}

func TestRunCmd_RequiresExactlyOneArg(t *testing.T) {
	_, err := executeCommand(rootCmd, "run")
	assert.Error(t, err)
}
