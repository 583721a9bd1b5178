package cmd

import (
	"fmt"
	"os"

	"github.com/mvey/healthsum/internal"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	version string = "dev"
	commit  string = "unknown"
	date    string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "healthsum",
	Short: "Summarize an Apple Health export into daily sleep and heart metrics",
	Long: `healthsum turns an Apple Health export into a daily spreadsheet.

It reads the export.zip (or the export.xml inside it), extracts sleep
and heart records, stitches sleep intervals into nightly sessions, and
writes one row per calendar day with sleep and heart-rate metrics.

Features:
  • Reads export.zip directly, no manual unpacking
  • Nightly sleep sessions with deep/REM/core stage breakdown
  • Daily heart rate statistics plus resting HR and HRV (SDNN)
  • Output as CSV, JSON, YAML, Markdown, or SQLite
  • Configurable look-back window and aggregation tunables

Quick Start:
  healthsum process export.zip                  # last 30 days to CSV
  healthsum process export.zip --days 90        # longer window
  healthsum summary export.zip                  # terminal summary only`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
