package internal

import "sort"

// MergeRows performs a full outer join of sleep sessions and heart day
// summaries on their date keys. Every date present on either side gets
// exactly one row, ascending; the missing side stays nil so absence is
// never mistaken for a zero reading.
func MergeRows(sleep []*SleepSession, heart []*HeartDaySummary) []DailyRow {
	sleepByDate := make(map[string]*SleepSession, len(sleep))
	for _, s := range sleep {
		sleepByDate[s.NightDate] = s
	}
	heartByDate := make(map[string]*HeartDaySummary, len(heart))
	for _, h := range heart {
		heartByDate[h.Date] = h
	}

	dates := make([]string, 0, len(sleepByDate)+len(heartByDate))
	seen := make(map[string]bool)
	for date := range sleepByDate {
		if !seen[date] {
			seen[date] = true
			dates = append(dates, date)
		}
	}
	for date := range heartByDate {
		if !seen[date] {
			seen[date] = true
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)

	rows := make([]DailyRow, 0, len(dates))
	for _, date := range dates {
		rows = append(rows, DailyRow{
			Date:  date,
			Sleep: sleepByDate[date],
			Heart: heartByDate[date],
		})
	}
	return rows
}
