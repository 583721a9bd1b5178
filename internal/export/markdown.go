package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/mvey/healthsum/internal"
)

// MarkdownExporter exports daily rows as a pipe table
type MarkdownExporter struct{}

// Export writes the rows as a Markdown table with the fixed columns
func (e *MarkdownExporter) Export(rows []internal.DailyRow, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(Columns, " | ")); err != nil {
		return err
	}

	separators := make([]string, len(Columns))
	for i := range separators {
		separators[i] = "---"
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(separators, " | ")); err != nil {
		return err
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(rowCells(row), " | ")); err != nil {
			return err
		}
	}
	return nil
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
