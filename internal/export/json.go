package export

import (
	"encoding/json"
	"io"

	"github.com/mvey/healthsum/internal"
)

// JSONExporter exports daily rows as an indented JSON array
type JSONExporter struct{}

// Export writes the rows as JSON
func (e *JSONExporter) Export(rows []internal.DailyRow, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
