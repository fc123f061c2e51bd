package bench

import (
	"fmt"

	"profdemo/internal/profiler"
)

// Complexity is the declared asymptotic class of a benchmark.
type Complexity int

const (
	Constant Complexity = iota
	Linear
	Quadratic
	Cubic
	Exponential
	SquareRoot
)

func (c Complexity) String() string {
	switch c {
	case Constant:
		return "O(1)"
	case Linear:
		return "O(n)"
	case Quadratic:
		return "O(n²)"
	case Cubic:
		return "O(n³)"
	case Exponential:
		return "O(2^n)"
	case SquareRoot:
		return "O(√n)"
	default:
		return "unknown"
	}
}

// Func is the uniform benchmark signature: one numeric argument in, a
// Value out. The profiler may be nil for uninstrumented timing runs.
type Func func(p *profiler.Profiler, arg int64) (Value, error)

// Spec describes one registered benchmark. Specs are immutable; the
// registry hands out copies.
type Spec struct {
	Name        string
	Description string
	Complexity  Complexity
	Fn          Func

	// DefaultArg is the argument for a full profiled run. CompareArg is
	// a smaller argument used for repeated best-of-N timing and for
	// profile-data generation, where DefaultArg would take too long.
	// MinArg is the smallest valid argument, checked before any
	// instrumentation starts.
	DefaultArg int64
	CompareArg int64
	MinArg     int64
}

// Registry is the immutable benchmark table, built once at start-up.
type Registry struct {
	specs map[string]Spec
	order []string
}

// NewRegistry builds the registry with the full benchmark set.
func NewRegistry() *Registry {
	r := &Registry{specs: make(map[string]Spec)}
	for _, s := range []Spec{
		{
			Name:        "fib-recursive",
			Description: "Compute Fibonacci recursively (no memoization)",
			Complexity:  Exponential,
			Fn:          FibonacciRecursive,
			DefaultArg:  30,
			CompareArg:  20,
		},
		{
			Name:        "fib-iterative",
			Description: "Compute Fibonacci iteratively with big integers",
			Complexity:  Linear,
			Fn:          FibonacciIterative,
			DefaultArg:  100000,
			CompareArg:  20,
		},
		{
			Name:        "matrix-mul",
			Description: "Multiply two dense square matrices",
			Complexity:  Cubic,
			Fn:          MatrixMultiply,
			DefaultArg:  100,
			CompareArg:  30,
			MinArg:      1,
		},
		{
			Name:        "prime-factors",
			Description: "Factorize a large number by trial division",
			Complexity:  SquareRoot,
			Fn:          PrimeFactors,
			DefaultArg:  123456789012345,
			CompareArg:  987654321,
			MinArg:      2,
		},
		{
			Name:        "string-concat",
			Description: "Build a string by naive repeated concatenation",
			Complexity:  Quadratic,
			Fn:          StringConcat,
			DefaultArg:  10000,
			CompareArg:  2000,
		},
	} {
		r.specs[s.Name] = s
		r.order = append(r.order, s.Name)
	}
	return r
}

// Lookup resolves a benchmark by name.
func (r *Registry) Lookup(name string) (Spec, error) {
	s, ok := r.specs[name]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", ErrUnknownBenchmark, name)
	}
	return s, nil
}

// Names returns the benchmark names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Specs returns all specs in registration order.
func (r *Registry) Specs() []Spec {
	out := make([]Spec, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.specs[name])
	}
	return out
}
