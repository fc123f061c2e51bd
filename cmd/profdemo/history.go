package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show saved comparison results",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum rows to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := openHistory(viper.GetString("history.path"))
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	rows, err := store.Recent(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if len(rows) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved comparisons. Run 'profdemo compare --save' first.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "WHEN\tBENCHMARK\tBEST\tREPS")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%v\t%d\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04:05"), r.Benchmark, r.Best, r.Repetitions)
	}
	return w.Flush()
}
