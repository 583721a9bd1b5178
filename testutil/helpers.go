package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// SleepRecord renders a sleep-analysis Record element. value is the
// bare stage name ("AsleepDeep", "InBed", ...); timestamps are in the
// export's "2006-01-02 15:04:05 -0700" layout.
func SleepRecord(value, start, end string) string {
	return fmt.Sprintf(
		`<Record type="HKCategoryTypeIdentifierSleepAnalysis" value="HKCategoryValueSleepAnalysis%s" startDate="%s" endDate="%s" sourceName="Watch"/>`,
		value, start, end)
}

// QuantityRecord renders a quantity Record element for the given bare
// identifier ("HeartRate", "RestingHeartRate", "HeartRateVariabilitySDNN").
func QuantityRecord(identifier, value, start string) string {
	return fmt.Sprintf(
		`<Record type="HKQuantityTypeIdentifier%s" value="%s" startDate="%s" endDate="%s" unit="count/min" sourceName="Watch"/>`,
		identifier, value, start, start)
}

// ExportXML wraps record elements into a minimal well-formed export
// document.
func ExportXML(records ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString("<HealthData locale=\"en_US\">\n")
	b.WriteString(" <ExportDate value=\"2024-01-20 10:00:00 -0800\"/>\n")
	for _, r := range records {
		b.WriteString(" " + r + "\n")
	}
	b.WriteString("</HealthData>\n")
	return b.String()
}

// WriteTempFile writes data to name under a per-test temp dir and
// returns the full path.
func WriteTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write temp file %s: %v", name, err)
	}
	return path
}
