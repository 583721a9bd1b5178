package internal

import (
	"math"
	"sort"
	"time"
)

// heartDayAccum collects raw samples for one calendar date before the
// statistical reduction.
type heartDayAccum struct {
	samples   []float64
	restingHR *float64
	restingAt time.Time // start of the winning resting sample
	hrvSDNN   *float64
	hrvAt     time.Time
}

// AggregateHeartDays groups heart samples by the calendar date of their
// own start timestamp and reduces each date to a summary. Resting-HR
// and HRV are one-per-day metrics; when an export carries several for
// the same date, the sample with the latest start wins. A date with
// only a resting or HRV sample still yields a summary, with the
// instantaneous HR stats left absent.
func AggregateHeartDays(records []*RawRecord) []*HeartDaySummary {
	days := make(map[string]*heartDayAccum)
	accum := func(date string) *heartDayAccum {
		a, ok := days[date]
		if !ok {
			a = &heartDayAccum{}
			days[date] = a
		}
		return a
	}

	for _, r := range records {
		date := r.DateKey()
		switch r.Type {
		case RecordHeartRate:
			a := accum(date)
			a.samples = append(a.samples, r.Value)
		case RecordRestingHeartRate:
			a := accum(date)
			if a.restingHR == nil || r.Start.After(a.restingAt) {
				v := r.Value
				a.restingHR = &v
				a.restingAt = r.Start
			}
		case RecordHRV:
			a := accum(date)
			if a.hrvSDNN == nil || r.Start.After(a.hrvAt) {
				v := r.Value
				a.hrvSDNN = &v
				a.hrvAt = r.Start
			}
		}
	}

	summaries := make([]*HeartDaySummary, 0, len(days))
	for date, a := range days {
		summaries = append(summaries, a.reduce(date))
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Date < summaries[j].Date
	})
	return summaries
}

// reduce computes the day's statistics. Absent metrics stay nil.
func (a *heartDayAccum) reduce(date string) *HeartDaySummary {
	s := &HeartDaySummary{
		Date:      date,
		RestingHR: a.restingHR,
		HRVSDNN:   a.hrvSDNN,
	}
	if len(a.samples) == 0 {
		return s
	}

	sum := 0.0
	minV := a.samples[0]
	maxV := a.samples[0]
	for _, v := range a.samples {
		sum += v
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	avg := round1(sum / float64(len(a.samples)))
	count := len(a.samples)
	s.AvgHR = &avg
	s.MinHR = &minV
	s.MaxHR = &maxV
	s.SampleCount = &count
	return s
}

// round1 rounds to one decimal place
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
