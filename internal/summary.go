package internal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	summaryTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("62")).
				Bold(true)

	summaryHeadingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("212")).
				Bold(true)

	summaryLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))

	summaryValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Bold(true)
)

// SummaryStats are cross-day averages over the generated rows
type SummaryStats struct {
	Nights        int
	AvgSleepHours float64
	DeepNights    int
	AvgDeepHours  float64 // over nights that recorded deep sleep
	REMNights     int
	AvgREMHours   float64 // over nights that recorded REM sleep
	HRDays        int
	AvgHR         float64
	RestingDays   int
	AvgRestingHR  float64
	HRVDays       int
	AvgHRVSDNN    float64
}

// BuildSummary folds the daily rows into overall averages. Absent
// metrics never contribute to a denominator.
func BuildSummary(rows []DailyRow) SummaryStats {
	var s SummaryStats
	var sleepSum, deepSum, remSum float64
	var hrSum, restingSum, hrvSum float64

	for _, row := range rows {
		if row.Sleep != nil {
			s.Nights++
			sleepSum += row.Sleep.TotalSleep.Hours()
			if row.Sleep.Deep > 0 {
				s.DeepNights++
				deepSum += row.Sleep.Deep.Hours()
			}
			if row.Sleep.REM > 0 {
				s.REMNights++
				remSum += row.Sleep.REM.Hours()
			}
		}
		if row.Heart != nil {
			if row.Heart.AvgHR != nil {
				s.HRDays++
				hrSum += *row.Heart.AvgHR
			}
			if row.Heart.RestingHR != nil {
				s.RestingDays++
				restingSum += *row.Heart.RestingHR
			}
			if row.Heart.HRVSDNN != nil {
				s.HRVDays++
				hrvSum += *row.Heart.HRVSDNN
			}
		}
	}

	if s.Nights > 0 {
		s.AvgSleepHours = sleepSum / float64(s.Nights)
	}
	if s.DeepNights > 0 {
		s.AvgDeepHours = deepSum / float64(s.DeepNights)
	}
	if s.REMNights > 0 {
		s.AvgREMHours = remSum / float64(s.REMNights)
	}
	if s.HRDays > 0 {
		s.AvgHR = hrSum / float64(s.HRDays)
	}
	if s.RestingDays > 0 {
		s.AvgRestingHR = restingSum / float64(s.RestingDays)
	}
	if s.HRVDays > 0 {
		s.AvgHRVSDNN = hrvSum / float64(s.HRVDays)
	}
	return s
}

// RenderSummary renders the styled terminal summary block
func RenderSummary(rows []DailyRow) string {
	s := BuildSummary(rows)
	var b strings.Builder

	b.WriteString(summaryTitleStyle.Render("SUMMARY"))
	b.WriteString("\n")

	if s.Nights > 0 {
		b.WriteString(summaryHeadingStyle.Render("Sleep"))
		b.WriteString("\n")
		summaryLine(&b, "Nights tracked", fmt.Sprintf("%d", s.Nights))
		summaryLine(&b, "Average sleep", fmt.Sprintf("%.2f h/night", s.AvgSleepHours))
		if s.DeepNights > 0 {
			summaryLine(&b, "Average deep sleep", fmt.Sprintf("%.2f h/night", s.AvgDeepHours))
		}
		if s.REMNights > 0 {
			summaryLine(&b, "Average REM sleep", fmt.Sprintf("%.2f h/night", s.AvgREMHours))
		}
	}

	if s.HRDays > 0 || s.RestingDays > 0 || s.HRVDays > 0 {
		b.WriteString(summaryHeadingStyle.Render("Heart"))
		b.WriteString("\n")
		if s.HRDays > 0 {
			summaryLine(&b, "Average heart rate", fmt.Sprintf("%.1f bpm", s.AvgHR))
		}
		if s.RestingDays > 0 {
			summaryLine(&b, "Average resting HR", fmt.Sprintf("%.1f bpm", s.AvgRestingHR))
		}
		if s.HRVDays > 0 {
			summaryLine(&b, "Average HRV (SDNN)", fmt.Sprintf("%.1f ms", s.AvgHRVSDNN))
		}
	}

	if s.Nights == 0 && s.HRDays == 0 && s.RestingDays == 0 && s.HRVDays == 0 {
		summaryLine(&b, "No data", "")
	}

	return b.String()
}

func summaryLine(b *strings.Builder, label, value string) {
	b.WriteString("  ")
	b.WriteString(summaryLabelStyle.Render(label + ":"))
	if value != "" {
		b.WriteString(" ")
		b.WriteString(summaryValueStyle.Render(value))
	}
	b.WriteString("\n")
}
