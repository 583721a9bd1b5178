package export

import (
	"io"

	"github.com/mvey/healthsum/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports daily rows in YAML format
type YAMLExporter struct{}

// Export writes the rows as YAML
func (e *YAMLExporter) Export(rows []internal.DailyRow, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(rows)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
