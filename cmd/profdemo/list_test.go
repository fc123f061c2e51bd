package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd(t *testing.T) {
	out, err := executeCommand(rootCmd, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "COMPLEXITY")
	for _, name := range registry.Names() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "O(2^n)")
}
