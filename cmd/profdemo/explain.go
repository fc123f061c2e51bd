package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain [benchmark]",
	Short: "Explain a benchmark and why it profiles the way it does",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

var explanations = map[string]string{
	"fib-recursive": `# Fibonacci (recursive) — O(2^n)

Naive double recursion: F(n) = F(n-1) + F(n-2) with no memoization.
Every call spawns two more, so the call count grows with the golden
ratio (~1.618^n). At n=30 that is over 2.6 million invocations of the
same tiny function.

**What to look for in the profile:** a single call site with a huge
NCALLS column. The per-call cost is trivial; the count is the problem.`,

	"fib-iterative": `# Fibonacci (iterative) — O(n)

A single pass accumulating a running pair. Uses arbitrary-precision
integers, so n=100000 works without overflow (F(100000) has 20899
digits); fixed-width integers would overflow just past n=92.

**What to look for in the profile:** one call, with the cost dominated
by big-integer additions as the numbers grow.`,

	"matrix-mul": `# Matrix multiplication — O(n³)

The textbook triple-nested loop over two dense n×n matrices, no
blocking or fast-multiplication shortcuts. Doubling n makes it eight
times slower.

**What to look for in the profile:** nearly all cumulative time in the
multiply site, with matrix construction a visible but minor cost.`,

	"prime-factors": `# Prime factorization — O(√n)

Trial division: walk candidate divisors up to √n, dividing out each
factor as it is found. Cheap for smooth numbers, slowest when the
remaining cofactor is a large prime.

**What to look for in the profile:** one call whose cost depends on the
size of n's largest prime factor, not on n itself.`,

	"string-concat": `# String concatenation — O(n²)

Builds a string with naive += in a loop. Each append copies the whole
string so far, so total work is quadratic in the iteration count. The
fix (a string builder) is deliberately not used here.

**What to look for in the profile:** the per-iteration append site with
NCALLS equal to the iteration count and cost growing with each call.`,
}

func runExplain(cmd *cobra.Command, args []string) error {
	var names []string
	if len(args) == 1 {
		if _, err := registry.Lookup(args[0]); err != nil {
			return err
		}
		names = args
	} else {
		names = registry.Names()
	}

	var doc strings.Builder
	for _, name := range names {
		doc.WriteString(explanations[name])
		doc.WriteString("\n\n")
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fall back to the raw markdown if the terminal renderer fails.
		fmt.Fprintln(cmd.OutOrStdout(), doc.String())
		return nil
	}

	out, err := renderer.Render(doc.String())
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), doc.String())
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
