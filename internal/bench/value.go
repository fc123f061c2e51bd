package bench

import (
	"fmt"
	"math/big"
	"strings"
)

// Value is the result of a benchmark run. Summary returns a bounded,
// display-ready form; the raw value stays reachable through the
// concrete type for callers that retain it.
type Value interface {
	Summary() string
}

// IntValue wraps an arbitrary-precision integer result.
type IntValue struct {
	Int *big.Int
}

const intSummaryDigits = 40

func (v IntValue) Summary() string {
	s := v.Int.String()
	if len(s) <= intSummaryDigits {
		return s
	}
	return fmt.Sprintf("%s... (%d digits)", s[:intSummaryDigits], len(s))
}

// MatrixValue is a dense square matrix result.
type MatrixValue [][]int64

func (v MatrixValue) Summary() string {
	return fmt.Sprintf("%dx%d matrix", len(v), len(v))
}

// FactorsValue is an ordered list of prime factors with multiplicity.
type FactorsValue []int64

const factorsSummaryMax = 16

func (v FactorsValue) Summary() string {
	shown := v
	truncated := false
	if len(shown) > factorsSummaryMax {
		shown = shown[:factorsSummaryMax]
		truncated = true
	}
	parts := make([]string, len(shown))
	for i, f := range shown {
		parts[i] = fmt.Sprintf("%d", f)
	}
	s := "[" + strings.Join(parts, " ") + "]"
	if truncated {
		s = fmt.Sprintf("%s... (%d factors)", s, len(v))
	}
	return s
}

// TextValue is a string result.
type TextValue string

const textSummaryPreview = 32

func (v TextValue) Summary() string {
	if len(v) <= textSummaryPreview {
		return string(v)
	}
	return fmt.Sprintf("%q... (%d chars)", string(v[:textSummaryPreview]), len(v))
}
