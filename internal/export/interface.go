package export

import (
	"fmt"
	"io"

	"github.com/mvey/healthsum/internal"
)

// Exporter defines the interface for all export formats
type Exporter interface {
	Export(rows []internal.DailyRow, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "csv":
		return &CSVExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "sqlite":
		return &SQLiteExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: csv, json, yaml, md, sqlite)", format)
	}
}
