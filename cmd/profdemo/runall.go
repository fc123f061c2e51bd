package main

import (
	"fmt"

	"profdemo/internal/runner"
	"profdemo/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var runAllCmd = &cobra.Command{
	Use:   "run-all",
	Short: "Run every benchmark with profiling",
	Long: `Executes all registered benchmarks in order, each with its default
argument under its own profiler, and prints every result. A failing
benchmark does not stop the rest.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := runner.RunAll(registry)
		for _, res := range results {
			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderRunResult(res, viper.GetInt("top")))
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(runAllCmd)
}
