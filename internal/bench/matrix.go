package bench

import (
	"fmt"

	"profdemo/internal/profiler"
)

var (
	siteBuildMatrix    profiler.Site
	siteMultiplyMatrix profiler.Site
)

func init() {
	siteBuildMatrix = profiler.SiteFor(buildMatrix)
	siteMultiplyMatrix = profiler.SiteFor(multiplyMatrix)
}

// MatrixMultiply builds two size x size matrices (A[i][j]=i+j,
// B[i][j]=i*j) and multiplies them with the textbook triple-nested
// loop. No fast-multiplication shortcuts.
func MatrixMultiply(p *profiler.Profiler, size int64) (Value, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size must be > 0, got %d", ErrInvalidArgument, size)
	}
	n := int(size)
	a := buildMatrix(p, n, func(i, j int64) int64 { return i + j })
	b := buildMatrix(p, n, func(i, j int64) int64 { return i * j })
	return MatrixValue(multiplyMatrix(p, a, b)), nil
}

func buildMatrix(p *profiler.Profiler, n int, gen func(i, j int64) int64) [][]int64 {
	defer p.Trace(siteBuildMatrix)()
	m := make([][]int64, n)
	for i := range m {
		m[i] = make([]int64, n)
		for j := range m[i] {
			m[i][j] = gen(int64(i), int64(j))
		}
	}
	return m
}

func multiplyMatrix(p *profiler.Profiler, a, b [][]int64) [][]int64 {
	defer p.Trace(siteMultiplyMatrix)()
	n := len(a)
	c := make([][]int64, n)
	for i := 0; i < n; i++ {
		c[i] = make([]int64, n)
		for j := 0; j < n; j++ {
			var sum int64
			for k := 0; k < n; k++ {
				sum += a[i][k] * b[k][j]
			}
			c[i][j] = sum
		}
	}
	return c
}
