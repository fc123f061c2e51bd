package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered benchmarks",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "NAME\tCOMPLEXITY\tDEFAULT N\tDESCRIPTION")
		for _, s := range registry.Specs() {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", s.Name, s.Complexity, s.DefaultArg, s.Description)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
