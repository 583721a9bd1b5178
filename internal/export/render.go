package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mvey/healthsum/internal"
)

// Columns is the fixed output header shared by the tabular formats
var Columns = []string{
	"date", "bedtime", "wake_time", "time_in_bed", "total_sleep",
	"deep", "rem", "core", "awake",
	"avg_hr", "min_hr", "max_hr", "sample_count", "resting_hr", "hrv_sdnn",
}

// rowCells renders one row into the fixed column layout. Absent metrics
// render as empty strings, never as 0: a blank cell means no data, a 0
// would claim a measured zero.
func rowCells(row internal.DailyRow) []string {
	cells := make([]string, 0, len(Columns))
	cells = append(cells, row.Date)

	if s := row.Sleep; s != nil {
		cells = append(cells,
			s.Bedtime.Format("15:04"),
			s.WakeTime.Format("15:04"),
			formatHours(s.TimeInBed),
			formatHours(s.TotalSleep),
			formatHours(s.Deep),
			formatHours(s.REM),
			formatHours(s.Core),
			formatMinutes(s.Awake),
		)
	} else {
		cells = append(cells, "", "", "", "", "", "", "", "")
	}

	if h := row.Heart; h != nil {
		cells = append(cells,
			formatOptFloat(h.AvgHR),
			formatOptFloat(h.MinHR),
			formatOptFloat(h.MaxHR),
			formatOptInt(h.SampleCount),
			formatOptFloat(h.RestingHR),
			formatOptFloat(h.HRVSDNN),
		)
	} else {
		cells = append(cells, "", "", "", "", "", "")
	}

	return cells
}

// formatHours renders a duration as decimal hours with 2 places
func formatHours(d time.Duration) string {
	return fmt.Sprintf("%.2f", d.Hours())
}

// formatMinutes renders a duration as decimal minutes with 1 place
func formatMinutes(d time.Duration) string {
	return fmt.Sprintf("%.1f", d.Minutes())
}

func formatOptFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}

func formatOptInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
