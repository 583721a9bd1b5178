package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mvey/healthsum/internal"
	"github.com/mvey/healthsum/internal/export"
	"github.com/spf13/cobra"
)

var (
	days       int
	output     string
	format     string
	configPath string
	noSummary  bool
)

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process <export.zip|export.xml>",
	Short: "Convert an export into a daily summary file",
	Long: `Process an Apple Health export and write a daily summary table.

The input is either the export.zip produced by the Health app or the
export.xml extracted from it. One output row is written per calendar
day that has sleep or heart data inside the look-back window.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]

		opts := internal.DefaultOptions()
		if configPath != "" {
			if err := opts.LoadFile(configPath); err != nil {
				return err
			}
		}
		// A --days flag beats the config file.
		if cmd.Flags().Changed("days") {
			opts.Days = days
		}

		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}

		stream, err := internal.OpenExport(input)
		if err != nil {
			return err
		}
		defer func() { _ = stream.Close() }()

		var result *internal.Result
		ctx := context.Background()
		err = internal.ShowProgress(ctx, fmt.Sprintf("Processing %s", input), func() error {
			var runErr error
			result, runErr = internal.Run(stream, input, opts)
			return runErr
		})
		if err != nil {
			return err
		}

		outPath := output
		if !cmd.Flags().Changed("output") && exporter.Extension() != "csv" {
			outPath = "health_summary." + exporter.Extension()
		}

		f, err := os.Create(outPath)
		if err != nil {
			return &internal.ExportError{Format: format, Path: outPath, Err: err}
		}
		if err := exporter.Export(result.Rows, f); err != nil {
			_ = f.Close()
			return &internal.ExportError{Format: format, Path: outPath, Err: err}
		}
		if err := f.Close(); err != nil {
			return &internal.ExportError{Format: format, Path: outPath, Err: err}
		}

		if result.Empty() {
			internal.PrintWarning(fmt.Sprintf(
				"No data in range (parsed %d record(s), %d outside window); wrote empty summary to %s",
				result.Stats.Parsed, result.Stats.Filtered, outPath))
			return nil
		}

		internal.PrintSuccess(fmt.Sprintf("%d day(s) written to %s", len(result.Rows), outPath))
		if result.Stats.Skipped > 0 {
			internal.LogWarn("%d malformed record(s) skipped", result.Stats.Skipped)
		}

		if !noSummary {
			fmt.Fprintln(cmd.OutOrStdout(), internal.RenderSummary(result.Rows))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(processCmd)
	processCmd.Flags().IntVarP(&days, "days", "d", 30, "Days to look back (0 or less means all)")
	processCmd.Flags().StringVarP(&output, "output", "o", "health_summary.csv", "Output file path")
	processCmd.Flags().StringVarP(&format, "format", "f", "csv", "Output format (csv, json, yaml, md, sqlite)")
	processCmd.Flags().StringVar(&configPath, "config", "", "YAML file overriding aggregation tunables")
	processCmd.Flags().BoolVar(&noSummary, "no-summary", false, "Suppress the terminal summary")
}
