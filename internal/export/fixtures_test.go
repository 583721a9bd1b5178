package export

import (
	"time"

	"github.com/mvey/healthsum/internal"
)

var exportZone = time.FixedZone("PST", -8*3600)

// fullRow has both metric groups populated
func fullRow() internal.DailyRow {
	avg, minHR, maxHR := 65.0, 60.0, 70.0
	count := 3
	resting, hrv := 52.0, 48.5

	return internal.DailyRow{
		Date: "2024-01-06",
		Sleep: &internal.SleepSession{
			NightDate:  "2024-01-06",
			Bedtime:    time.Date(2024, 1, 5, 23, 10, 0, 0, exportZone),
			WakeTime:   time.Date(2024, 1, 6, 6, 0, 0, 0, exportZone),
			TimeInBed:  410 * time.Minute,
			TotalSleep: 410 * time.Minute,
			Deep:       380 * time.Minute,
			Core:       30 * time.Minute,
		},
		Heart: &internal.HeartDaySummary{
			Date:        "2024-01-06",
			AvgHR:       &avg,
			MinHR:       &minHR,
			MaxHR:       &maxHR,
			SampleCount: &count,
			RestingHR:   &resting,
			HRVSDNN:     &hrv,
		},
	}
}

// sleepOnlyRow has the heart group absent
func sleepOnlyRow() internal.DailyRow {
	return internal.DailyRow{
		Date: "2024-01-07",
		Sleep: &internal.SleepSession{
			NightDate:  "2024-01-07",
			Bedtime:    time.Date(2024, 1, 6, 22, 45, 0, 0, exportZone),
			WakeTime:   time.Date(2024, 1, 7, 6, 30, 0, 0, exportZone),
			TimeInBed:  465 * time.Minute,
			TotalSleep: 420 * time.Minute,
			Core:       420 * time.Minute,
			Awake:      12 * time.Minute,
		},
	}
}

// heartOnlyRow has the sleep group absent
func heartOnlyRow() internal.DailyRow {
	resting := 52.0
	return internal.DailyRow{
		Date: "2024-01-08",
		Heart: &internal.HeartDaySummary{
			Date:      "2024-01-08",
			RestingHR: &resting,
		},
	}
}
