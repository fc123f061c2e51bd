package main

import (
	"fmt"
	"log/slog"

	"profdemo/internal/history"
	"profdemo/internal/runner"
	"profdemo/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	compareReps int
	compareSave bool
)

// openHistory allows mocking the store in tests.
var openHistory = history.Open

var compareCmd = &cobra.Command{
	Use:   "compare [benchmarks...]",
	Short: "Compare benchmark performance with best-of-N timing",
	Long: `Times each benchmark over N independent repetitions without profiling
overhead and reports the best observed time plus the speedup ratio.
Defaults to comparing the two Fibonacci implementations.`,
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().IntVar(&compareReps, "repetitions", 0, "Repetitions per benchmark (0 = configured default)")
	compareCmd.Flags().BoolVar(&compareSave, "save", false, "Save results to history")
}

func runCompare(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = []string{"fib-recursive", "fib-iterative"}
	}

	reps := compareReps
	if reps == 0 {
		reps = viper.GetInt("repetitions")
	}

	slog.Debug("comparing benchmarks", "names", names, "repetitions", reps)

	report, err := runner.Compare(registry, names, reps)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.RenderReport(report))

	if compareSave {
		store, err := openHistory(viper.GetString("history.path"))
		if err != nil {
			return fmt.Errorf("failed to open history: %w", err)
		}
		defer store.Close()

		if err := store.Save(report); err != nil {
			return fmt.Errorf("failed to save history: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Results saved to %s\n", viper.GetString("history.path"))
	}
	return nil
}
