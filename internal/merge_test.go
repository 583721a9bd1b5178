package internal

import (
	"testing"
	"time"
)

func TestMergeFullOuterJoin(t *testing.T) {
	sleep := []*SleepSession{
		{NightDate: "2024-01-05", TotalSleep: 7 * time.Hour},
		{NightDate: "2024-01-07", TotalSleep: 6 * time.Hour},
	}
	avg := 65.0
	heart := []*HeartDaySummary{
		{Date: "2024-01-05", AvgHR: &avg},
		{Date: "2024-01-06", AvgHR: &avg},
	}

	rows := MergeRows(sleep, heart)

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	wantDates := []string{"2024-01-05", "2024-01-06", "2024-01-07"}
	for i, want := range wantDates {
		if rows[i].Date != want {
			t.Errorf("rows[%d].Date = %q, want %q", i, rows[i].Date, want)
		}
	}

	// Both sides present.
	if rows[0].Sleep == nil || rows[0].Heart == nil {
		t.Error("2024-01-05 should have both sleep and heart data")
	}
	// Heart only: the sleep group stays nil so absence is never
	// mistaken for zero sleep.
	if rows[1].Sleep != nil {
		t.Error("2024-01-06 should have no sleep data")
	}
	if rows[1].Heart == nil {
		t.Error("2024-01-06 should have heart data")
	}
	// Sleep only.
	if rows[2].Sleep == nil || rows[2].Heart != nil {
		t.Error("2024-01-07 should have sleep data only")
	}
}

func TestMergeRowDatesUnique(t *testing.T) {
	sleep := []*SleepSession{
		{NightDate: "2024-01-05"},
		{NightDate: "2024-01-06"},
	}
	heart := []*HeartDaySummary{
		{Date: "2024-01-05"},
		{Date: "2024-01-06"},
	}

	rows := MergeRows(sleep, heart)

	seen := make(map[string]bool)
	for _, row := range rows {
		if seen[row.Date] {
			t.Errorf("duplicate date %q", row.Date)
		}
		seen[row.Date] = true
	}
	for i := 1; i < len(rows); i++ {
		if rows[i-1].Date >= rows[i].Date {
			t.Errorf("rows not strictly ascending: %q then %q", rows[i-1].Date, rows[i].Date)
		}
	}
}

func TestMergeEmptyInputs(t *testing.T) {
	if rows := MergeRows(nil, nil); len(rows) != 0 {
		t.Errorf("got %d rows for empty inputs, want 0", len(rows))
	}
}
