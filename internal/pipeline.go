package internal

import (
	"io"
)

// Stats describes what one run saw, so the caller can tell an empty
// result apart from an empty input.
type Stats struct {
	Parsed       int // recognized records parsed
	Skipped      int // malformed records dropped by the parser
	Filtered     int // records dropped by the time window
	SleepRecords int // sleep intervals inside the window
	HeartRecords int // heart samples inside the window
}

// Result is the output of one pipeline run
type Result struct {
	Rows  []DailyRow
	Stats Stats
}

// Empty reports whether the run produced no rows
func (r *Result) Empty() bool {
	return len(r.Rows) == 0
}

// Run drives the full pipeline over one export stream: parse records
// lazily, drop those outside the time window per record, then hand the
// two categories to their aggregators and join the outputs by date.
// source names the input in fatal parse diagnostics.
func Run(r io.Reader, source string, opts Options) (*Result, error) {
	parser := NewRecordParser(r, source)
	window := NewTimeWindow(opts.Now, opts.Days)
	if opts.Days > 0 {
		LogDebug("keeping records starting at or after %s", window.Cutoff())
	}

	var sleepRecs, heartRecs []*RawRecord
	filtered := 0
	for {
		rec, err := parser.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !window.Contains(rec) {
			filtered++
			continue
		}
		if rec.Type == RecordSleepAnalysis {
			sleepRecs = append(sleepRecs, rec)
		} else {
			heartRecs = append(heartRecs, rec)
		}
	}

	parseStats := parser.Stats()
	LogInfo("parsed %d record(s), skipped %d malformed, %d outside window",
		parseStats.Parsed, parseStats.Skipped, filtered)

	sessions := NewSleepAggregator(opts).Aggregate(sleepRecs)
	heartDays := AggregateHeartDays(heartRecs)
	rows := MergeRows(sessions, heartDays)

	return &Result{
		Rows: rows,
		Stats: Stats{
			Parsed:       parseStats.Parsed,
			Skipped:      parseStats.Skipped,
			Filtered:     filtered,
			SleepRecords: len(sleepRecs),
			HeartRecords: len(heartRecs),
		},
	}, nil
}
