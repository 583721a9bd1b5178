package cmd

import (
	"fmt"

	"github.com/mvey/healthsum/internal"
	"github.com/spf13/cobra"
)

var (
	summaryDays   int
	summaryConfig string
)

// summaryCmd represents the summary command
var summaryCmd = &cobra.Command{
	Use:   "summary <export.zip|export.xml>",
	Short: "Print a terminal summary without writing a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]

		opts := internal.DefaultOptions()
		if summaryConfig != "" {
			if err := opts.LoadFile(summaryConfig); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("days") {
			opts.Days = summaryDays
		}

		stream, err := internal.OpenExport(input)
		if err != nil {
			return err
		}
		defer func() { _ = stream.Close() }()

		result, err := internal.Run(stream, input, opts)
		if err != nil {
			return err
		}

		if result.Empty() {
			internal.PrintWarning("No data in range")
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), internal.RenderSummary(result.Rows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().IntVarP(&summaryDays, "days", "d", 30, "Days to look back (0 or less means all)")
	summaryCmd.Flags().StringVar(&summaryConfig, "config", "", "YAML file overriding aggregation tunables")
}
