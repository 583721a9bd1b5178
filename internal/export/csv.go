package export

import (
	"encoding/csv"
	"io"

	"github.com/mvey/healthsum/internal"
)

// CSVExporter exports daily rows as delimited text with the fixed
// column header. This is the default format.
type CSVExporter struct{}

// Export writes the header and one line per row
func (e *CSVExporter) Export(rows []internal.DailyRow, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(rowCells(row)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Extension returns the file extension for this format
func (e *CSVExporter) Extension() string {
	return "csv"
}
