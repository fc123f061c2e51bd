package export

// HarnessSource returns the source of a standalone Go program that
// re-executes the benchmark suite with raw, uninstrumented calls. It is
// fully self-contained (stdlib only) so it can be built anywhere and
// run under external harnesses such as perf or valgrind; the algorithm
// bodies mirror the library versions exactly. The exporter only
// generates this text, it never executes it.
func HarnessSource() string {
	return harnessSource
}

const harnessSource = `// Generated by profdemo export. DO NOT EDIT.
//
// Standalone benchmark harness for external instrumentation tools.
// Build and run it under your profiler of choice:
//
//	go build -o harness harness.go
//	perf record -g ./harness
//	valgrind --tool=callgrind ./harness
package main

import "fmt"

func fibRecursive(n int64) int64 {
	if n <= 1 {
		return n
	}
	return fibRecursive(n-1) + fibRecursive(n-2)
}

func multiplyMatrices(size int) [][]int64 {
	a := make([][]int64, size)
	b := make([][]int64, size)
	for i := 0; i < size; i++ {
		a[i] = make([]int64, size)
		b[i] = make([]int64, size)
		for j := 0; j < size; j++ {
			a[i][j] = int64(i + j)
			b[i][j] = int64(i * j)
		}
	}
	c := make([][]int64, size)
	for i := 0; i < size; i++ {
		c[i] = make([]int64, size)
		for j := 0; j < size; j++ {
			var sum int64
			for k := 0; k < size; k++ {
				sum += a[i][k] * b[k][j]
			}
			c[i][j] = sum
		}
	}
	return c
}

func primeFactors(n int64) []int64 {
	var factors []int64
	for d := int64(2); d*d <= n; d++ {
		for n%d == 0 {
			factors = append(factors, d)
			n /= d
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}

func main() {
	fmt.Println("fib(25) =", fibRecursive(25))
	c := multiplyMatrices(50)
	fmt.Println("matrix:", len(c), "x", len(c))
	fmt.Println("factors:", primeFactors(987654321))
}
`
