package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"profdemo/internal/export"
	"profdemo/internal/runner"
	"profdemo/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	exportDir    string
	exportBinary bool
	exportText   bool
	exportScript bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Generate profile data files for external tools",
	Long: `Runs the benchmark suite under a single profiler span and writes the
captured statistics as:

  profile.pb.gz   pprof binary dump (view with: go tool pprof profile.pb.gz)
  profile.txt     plain-text statistics table
  harness.go      standalone harness for perf/valgrind (go build harness.go)

Artifacts are independent: a failure writing one does not stop the others.`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportDir, "out", "", "Output directory (default from config)")
	exportCmd.Flags().BoolVar(&exportBinary, "binary", true, "Write the pprof binary dump")
	exportCmd.Flags().BoolVar(&exportText, "text", true, "Write the text statistics table")
	exportCmd.Flags().BoolVar(&exportScript, "script", true, "Write the external harness source")
}

func runExport(cmd *cobra.Command, args []string) error {
	dir := exportDir
	if dir == "" {
		dir = viper.GetString("export.dir")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Collecting profile data...")
	snap, err := runner.Profile(registry)
	if err != nil {
		return err
	}
	slog.Debug("profile collected", "sites", len(snap.Records), "calls", snap.TotalCalls())

	var dest export.Destinations
	if exportBinary {
		dest.BinaryPath = filepath.Join(dir, "profile.pb.gz")
	}
	if exportText {
		dest.TextPath = filepath.Join(dir, "profile.txt")
	}
	if exportScript {
		dest.ScriptPath = filepath.Join(dir, "harness.go")
	}

	artifacts := export.Export(snap, dest)
	fmt.Fprint(cmd.OutOrStdout(), ui.RenderArtifacts(artifacts))

	for _, a := range artifacts {
		if a.Err == nil && a.Kind == export.KindBinary {
			fmt.Fprintf(cmd.OutOrStdout(), "\nView with: go tool pprof %s\n", a.Path)
		}
	}
	return nil
}
