package internal

import (
	"testing"
	"time"
)

var testZone = time.FixedZone("PST", -8*3600)

// jan returns a January 2024 instant in the test zone
func jan(day, hour, minute int) time.Time {
	return time.Date(2024, 1, day, hour, minute, 0, 0, testZone)
}

func sleepRec(stage SleepStage, start, end time.Time) *RawRecord {
	return &RawRecord{Type: RecordSleepAnalysis, Stage: stage, Start: start, End: end}
}

func defaultSleepAggregator() *SleepAggregator {
	opts := DefaultOptions()
	return NewSleepAggregator(opts)
}

func TestSleepOverlapCountedOnce(t *testing.T) {
	// Core 23:10-23:40 and Deep 23:35-06:00 overlap for 5 minutes.
	// The overlap must count once: total is 23:10-06:00 wall clock,
	// not 30min+385min.
	agg := defaultSleepAggregator()
	sessions := agg.Aggregate([]*RawRecord{
		sleepRec(StageAsleepCore, jan(5, 23, 10), jan(5, 23, 40)),
		sleepRec(StageAsleepDeep, jan(5, 23, 35), jan(6, 6, 0)),
	})

	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	s := sessions[0]

	if s.NightDate != "2024-01-06" {
		t.Errorf("NightDate = %q, want 2024-01-06", s.NightDate)
	}
	if s.Core != 30*time.Minute {
		t.Errorf("Core = %v, want 30m", s.Core)
	}
	if s.Deep != 380*time.Minute {
		t.Errorf("Deep = %v, want 380m (overlap credited to the earlier interval)", s.Deep)
	}
	if s.TotalSleep != 410*time.Minute {
		t.Errorf("TotalSleep = %v, want 410m", s.TotalSleep)
	}
	if s.TimeInBed != 410*time.Minute {
		t.Errorf("TimeInBed = %v, want 410m", s.TimeInBed)
	}
	if got := s.Deep + s.REM + s.Core + s.Unspecified; got != s.TotalSleep {
		t.Errorf("stage sum %v != TotalSleep %v", got, s.TotalSleep)
	}
}

func TestSleepDuplicateIntervalsNotDoubleCounted(t *testing.T) {
	// Multi-device sync: identical Deep intervals from two sources.
	agg := defaultSleepAggregator()
	sessions := agg.Aggregate([]*RawRecord{
		sleepRec(StageAsleepDeep, jan(5, 23, 0), jan(6, 1, 0)),
		sleepRec(StageAsleepDeep, jan(5, 23, 0), jan(6, 1, 0)),
	})

	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	if sessions[0].Deep != 2*time.Hour {
		t.Errorf("Deep = %v, want 2h", sessions[0].Deep)
	}
	if sessions[0].TotalSleep != 2*time.Hour {
		t.Errorf("TotalSleep = %v, want 2h", sessions[0].TotalSleep)
	}
}

func TestSleepBriefAwakeningDoesNotSplitNight(t *testing.T) {
	// 3-minute gap is within the 5-minute tolerance.
	agg := defaultSleepAggregator()
	sessions := agg.Aggregate([]*RawRecord{
		sleepRec(StageAsleepCore, jan(5, 23, 0), jan(5, 23, 30)),
		sleepRec(StageAsleepCore, jan(5, 23, 33), jan(6, 6, 0)),
	})

	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	s := sessions[0]
	if !s.Bedtime.Equal(jan(5, 23, 0)) {
		t.Errorf("Bedtime = %v, want 23:00", s.Bedtime)
	}
	if !s.WakeTime.Equal(jan(6, 6, 0)) {
		t.Errorf("WakeTime = %v, want 06:00", s.WakeTime)
	}
	// The 3-minute gap stays inside time in bed but not total sleep.
	if s.TimeInBed != 7*time.Hour {
		t.Errorf("TimeInBed = %v, want 7h", s.TimeInBed)
	}
	if s.TotalSleep != 7*time.Hour-3*time.Minute {
		t.Errorf("TotalSleep = %v, want 6h57m", s.TotalSleep)
	}
}

func TestSleepNapMergesIntoSameNight(t *testing.T) {
	// A late-night episode and an early-morning episode both land on
	// Jan 6 and merge: durations sum, bounds widen.
	agg := defaultSleepAggregator()
	sessions := agg.Aggregate([]*RawRecord{
		sleepRec(StageAsleepCore, jan(5, 23, 0), jan(5, 23, 30)),
		sleepRec(StageAsleepCore, jan(6, 2, 0), jan(6, 4, 0)),
	})

	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	s := sessions[0]
	if s.NightDate != "2024-01-06" {
		t.Errorf("NightDate = %q, want 2024-01-06", s.NightDate)
	}
	if !s.Bedtime.Equal(jan(5, 23, 0)) || !s.WakeTime.Equal(jan(6, 4, 0)) {
		t.Errorf("bounds = %v..%v, want 23:00..04:00", s.Bedtime, s.WakeTime)
	}
	if s.TotalSleep != 2*time.Hour+30*time.Minute {
		t.Errorf("TotalSleep = %v, want 2h30m", s.TotalSleep)
	}
	// Merged time in bed sums the episode spans; the waking gap
	// between them never counts.
	if s.TimeInBed != 2*time.Hour+30*time.Minute {
		t.Errorf("TimeInBed = %v, want 2h30m", s.TimeInBed)
	}
}

func TestSleepNightDateConvention(t *testing.T) {
	tests := []struct {
		name    string
		bedtime time.Time
		want    string
	}{
		{"evening bedtime shifts to wake date", jan(5, 23, 0), "2024-01-06"},
		{"bedtime exactly at cutover shifts", jan(5, 18, 0), "2024-01-06"},
		{"afternoon nap keeps its own date", jan(5, 14, 0), "2024-01-05"},
		{"after-midnight bedtime keeps its own date", jan(6, 1, 30), "2024-01-06"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := defaultSleepAggregator()
			sessions := agg.Aggregate([]*RawRecord{
				sleepRec(StageAsleepUnspecified, tt.bedtime, tt.bedtime.Add(time.Hour)),
			})
			if len(sessions) != 1 {
				t.Fatalf("got %d sessions, want 1", len(sessions))
			}
			if sessions[0].NightDate != tt.want {
				t.Errorf("NightDate = %q, want %q", sessions[0].NightDate, tt.want)
			}
		})
	}
}

func TestSleepCutoverHourConfigurable(t *testing.T) {
	opts := DefaultOptions()
	opts.NightCutoverHour = 21
	agg := NewSleepAggregator(opts)

	sessions := agg.Aggregate([]*RawRecord{
		sleepRec(StageAsleepUnspecified, jan(5, 19, 0), jan(5, 20, 0)),
	})
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	// 19:00 is before the 21:00 cutover, so the nap keeps Jan 5.
	if sessions[0].NightDate != "2024-01-05" {
		t.Errorf("NightDate = %q, want 2024-01-05", sessions[0].NightDate)
	}
}

func TestSleepGapSplitsEpisodes(t *testing.T) {
	// A morning episode and an evening episode of the same day map to
	// different night dates.
	agg := defaultSleepAggregator()
	sessions := agg.Aggregate([]*RawRecord{
		sleepRec(StageAsleepUnspecified, jan(5, 9, 0), jan(5, 10, 0)),
		sleepRec(StageAsleepUnspecified, jan(5, 23, 0), jan(6, 6, 0)),
	})

	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}
	if sessions[0].NightDate != "2024-01-05" || sessions[1].NightDate != "2024-01-06" {
		t.Errorf("night dates = %q, %q; want 2024-01-05, 2024-01-06",
			sessions[0].NightDate, sessions[1].NightDate)
	}
}

func TestSleepInBedCountsTowardTimeInBedOnly(t *testing.T) {
	agg := defaultSleepAggregator()
	sessions := agg.Aggregate([]*RawRecord{
		sleepRec(StageInBed, jan(5, 23, 0), jan(6, 7, 0)),
		sleepRec(StageAsleepCore, jan(5, 23, 30), jan(6, 6, 0)),
	})

	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	s := sessions[0]
	if s.TimeInBed != 8*time.Hour {
		t.Errorf("TimeInBed = %v, want 8h (InBed widens the span)", s.TimeInBed)
	}
	if s.TotalSleep != 6*time.Hour+30*time.Minute {
		t.Errorf("TotalSleep = %v, want 6h30m (InBed never counts as sleep)", s.TotalSleep)
	}
}

func TestSleepAwakeTrackedSeparately(t *testing.T) {
	agg := defaultSleepAggregator()
	sessions := agg.Aggregate([]*RawRecord{
		sleepRec(StageAsleepCore, jan(5, 23, 0), jan(6, 2, 0)),
		sleepRec(StageAwake, jan(6, 2, 0), jan(6, 2, 10)),
		sleepRec(StageAsleepCore, jan(6, 2, 10), jan(6, 6, 0)),
	})

	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	s := sessions[0]
	if s.Awake != 10*time.Minute {
		t.Errorf("Awake = %v, want 10m", s.Awake)
	}
	if s.TotalSleep != 6*time.Hour+50*time.Minute {
		t.Errorf("TotalSleep = %v, want 6h50m", s.TotalSleep)
	}
}

func TestSleepDiscardsInvalidIntervals(t *testing.T) {
	agg := defaultSleepAggregator()
	sessions := agg.Aggregate([]*RawRecord{
		// end before start: malformed, dropped
		sleepRec(StageAsleepCore, jan(6, 6, 0), jan(5, 23, 0)),
		// zero-length: dropped
		sleepRec(StageAsleepCore, jan(5, 23, 0), jan(5, 23, 0)),
		sleepRec(StageAsleepCore, jan(5, 23, 0), jan(6, 6, 0)),
	})

	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	if sessions[0].TotalSleep != 7*time.Hour {
		t.Errorf("TotalSleep = %v, want 7h", sessions[0].TotalSleep)
	}
}

func TestSleepUnsortedInput(t *testing.T) {
	agg := defaultSleepAggregator()
	sessions := agg.Aggregate([]*RawRecord{
		sleepRec(StageAsleepREM, jan(6, 4, 0), jan(6, 6, 0)),
		sleepRec(StageAsleepCore, jan(5, 23, 0), jan(6, 4, 0)),
	})

	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	s := sessions[0]
	if !s.Bedtime.Equal(jan(5, 23, 0)) {
		t.Errorf("Bedtime = %v, want 23:00", s.Bedtime)
	}
	if s.Core != 5*time.Hour || s.REM != 2*time.Hour {
		t.Errorf("Core/REM = %v/%v, want 5h/2h", s.Core, s.REM)
	}
}

func TestSessionsSortedByNightDate(t *testing.T) {
	agg := defaultSleepAggregator()
	sessions := agg.Aggregate([]*RawRecord{
		sleepRec(StageAsleepCore, jan(10, 23, 0), jan(11, 6, 0)),
		sleepRec(StageAsleepCore, jan(5, 23, 0), jan(6, 6, 0)),
		sleepRec(StageAsleepCore, jan(7, 23, 0), jan(8, 6, 0)),
	})

	if len(sessions) != 3 {
		t.Fatalf("got %d sessions, want 3", len(sessions))
	}
	for i := 1; i < len(sessions); i++ {
		if sessions[i-1].NightDate >= sessions[i].NightDate {
			t.Errorf("sessions not strictly ascending: %q then %q",
				sessions[i-1].NightDate, sessions[i].NightDate)
		}
	}
}
