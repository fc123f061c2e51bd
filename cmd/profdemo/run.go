package main

import (
	"fmt"
	"log/slog"

	"profdemo/internal/config"
	"profdemo/internal/runner"
	"profdemo/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var runArg int64

var runCmd = &cobra.Command{
	Use:   "run <benchmark>",
	Short: "Run one benchmark under the call profiler",
	Long: `Executes a single benchmark with profiling enabled and prints the
result together with the captured per-call-site statistics
(invocation counts, exclusive and cumulative times).

Use 'profdemo list' to see the available benchmarks.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Int64Var(&runArg, "n", 0, "Benchmark argument (0 = configured default)")
}

func runRun(cmd *cobra.Command, args []string) error {
	name := args[0]

	spec, err := registry.Lookup(name)
	if err != nil {
		return err
	}

	arg := runArg
	if arg == 0 {
		arg = config.BenchArg(spec.Name, spec.DefaultArg)
	}

	slog.Debug("running benchmark", "name", spec.Name, "arg", arg)
	fmt.Fprintf(cmd.OutOrStdout(), "Running %s (%s) with n=%d...\n\n",
		spec.Name, spec.Complexity, arg)

	res, err := runner.Run(registry, name, arg)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.RenderRunResult(res, viper.GetInt("top")))
	return nil
}
