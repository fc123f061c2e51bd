package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateLogo(t *testing.T) {
	logo := GenerateLogo()
	assert.NotEmpty(t, logo)
	// The ASCII art spells PROFDEMO with box-drawing characters.
	assert.Contains(t, logo, "____")
	assert.Contains(t, logo, "|")
}
