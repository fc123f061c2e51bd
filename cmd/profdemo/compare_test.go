package main

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profdemo/internal/bench"
)

func TestCompareCmd_Defaults(t *testing.T) {
	out, err := executeCommand(rootCmd, "compare", "--repetitions=2", "--save=false")
	require.NoError(t, err)

	assert.Contains(t, out, "fib-recursive")
	assert.Contains(t, out, "fib-iterative")
	assert.Contains(t, out, "faster than")
}

func TestCompareCmd_ExplicitNames(t *testing.T) {
	out, err := executeCommand(rootCmd, "compare", "matrix-mul", "--repetitions=2", "--save=false")
	require.NoError(t, err)

	assert.Contains(t, out, "matrix-mul")
	assert.NotContains(t, out, "faster than")
}

func TestCompareCmd_InvalidRepetitions(t *testing.T) {
	_, err := executeCommand(rootCmd, "compare", "--repetitions=-1", "--save=false")
	assert.ErrorIs(t, err, bench.ErrInvalidArgument)
}

func TestCompareCmd_SaveAndHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	viper.Set("history.path", path)
	t.Cleanup(func() { viper.Set("history.path", ".profdemo/history.db") })

	out, err := executeCommand(rootCmd, "compare", "fib-iterative", "--repetitions=2", "--save")
	require.NoError(t, err)
	assert.Contains(t, out, "Results saved to "+path)

	out, err = executeCommand(rootCmd, "history", "--limit=5")
	require.NoError(t, err)
	assert.Contains(t, out, "WHEN")
	assert.Contains(t, out, "fib-iterative")
}

func TestHistoryCmd_Empty(t *testing.T) {
	viper.Set("history.path", filepath.Join(t.TempDir(), "empty.db"))
	t.Cleanup(func() { viper.Set("history.path", ".profdemo/history.db") })

	out, err := executeCommand(rootCmd, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved comparisons")
}
