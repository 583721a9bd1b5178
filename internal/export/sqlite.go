package export

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mvey/healthsum/internal"
	_ "modernc.org/sqlite"
)

// SQLiteExporter exports daily rows into a single-table SQLite
// database. The database is assembled in a temporary file (the driver
// needs a seekable file, not a stream) and then copied to the writer.
// Absent metrics are stored as NULL, never as 0.
type SQLiteExporter struct{}

const createDailySummary = `
CREATE TABLE daily_summary (
	date              TEXT PRIMARY KEY,
	bedtime           TEXT,
	wake_time         TEXT,
	time_in_bed_hours REAL,
	total_sleep_hours REAL,
	deep_hours        REAL,
	rem_hours         REAL,
	core_hours        REAL,
	awake_minutes     REAL,
	avg_hr            REAL,
	min_hr            REAL,
	max_hr            REAL,
	sample_count      INTEGER,
	resting_hr        REAL,
	hrv_sdnn          REAL
)`

const insertDailySummary = `
INSERT INTO daily_summary (
	date, bedtime, wake_time, time_in_bed_hours, total_sleep_hours,
	deep_hours, rem_hours, core_hours, awake_minutes,
	avg_hr, min_hr, max_hr, sample_count, resting_hr, hrv_sdnn
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// Export writes the rows as a SQLite database file
func (e *SQLiteExporter) Export(rows []internal.DailyRow, w io.Writer) error {
	dir, err := os.MkdirTemp("", "healthsum-sqlite-*")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	path := filepath.Join(dir, "daily_summary.db")
	if err := writeDatabase(rows, path); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to reopen database: %w", err)
	}
	defer func() { _ = f.Close() }()

	_, err = io.Copy(w, f)
	return err
}

// Extension returns the file extension for this format
func (e *SQLiteExporter) Extension() string {
	return "db"
}

// writeDatabase creates the schema and inserts every row in one
// transaction.
func writeDatabase(rows []internal.DailyRow, path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec(createDailySummary); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(insertDailySummary)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, row := range rows {
		if _, err := stmt.Exec(dailySummaryArgs(row)...); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to insert row %s: %w", row.Date, err)
		}
	}

	return tx.Commit()
}

// dailySummaryArgs maps a row to insert arguments, NULL for absent
func dailySummaryArgs(row internal.DailyRow) []interface{} {
	var bedtime, wake sql.NullString
	var timeInBed, totalSleep, deep, rem, core, awake sql.NullFloat64
	if s := row.Sleep; s != nil {
		bedtime = sql.NullString{String: s.Bedtime.Format("15:04"), Valid: true}
		wake = sql.NullString{String: s.WakeTime.Format("15:04"), Valid: true}
		timeInBed = sql.NullFloat64{Float64: s.TimeInBed.Hours(), Valid: true}
		totalSleep = sql.NullFloat64{Float64: s.TotalSleep.Hours(), Valid: true}
		deep = sql.NullFloat64{Float64: s.Deep.Hours(), Valid: true}
		rem = sql.NullFloat64{Float64: s.REM.Hours(), Valid: true}
		core = sql.NullFloat64{Float64: s.Core.Hours(), Valid: true}
		awake = sql.NullFloat64{Float64: s.Awake.Minutes(), Valid: true}
	}

	var avg, minHR, maxHR, resting, hrv sql.NullFloat64
	var count sql.NullInt64
	if h := row.Heart; h != nil {
		avg = nullFloat(h.AvgHR)
		minHR = nullFloat(h.MinHR)
		maxHR = nullFloat(h.MaxHR)
		resting = nullFloat(h.RestingHR)
		hrv = nullFloat(h.HRVSDNN)
		if h.SampleCount != nil {
			count = sql.NullInt64{Int64: int64(*h.SampleCount), Valid: true}
		}
	}

	return []interface{}{
		row.Date, bedtime, wake, timeInBed, totalSleep,
		deep, rem, core, awake,
		avg, minHR, maxHR, count, resting, hrv,
	}
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
