package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/desk/pkg/table"
)

// FilterOptions captures table filter and export flags.
type FilterOptions struct {
	Status string
	Term   string
	Format string
	Output string
}

// AddFilterArgs wires the filter flags on the provided command.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Status, "status", "s", table.StatusAll,
		"Filter by status attribute.")
	cmd.Flags().StringVar(&o.Term, "term", "",
		"Filter rows by a case-insensitive text term.")
}

// AddExportArgs wires the export destination flags on the provided command.
func AddExportArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Format, "format", "f", table.FormatCSV,
		"Export format, 'csv' or 'json'.")
	cmd.Flags().StringVarP(&o.Output, "output", "o", "",
		"Destination file or directory, '-' for stdout.")
}
