package internal

import (
	"sort"
	"time"
)

// SleepAggregator stitches sleep-stage intervals into nightly sessions.
// Consecutive intervals whose gap is within the merge tolerance belong
// to the same episode, so brief awakenings never split a night. Stage
// durations come from a single sweep over the asleep intervals that
// counts every wall-clock slice once, which keeps duplicate intervals
// from multi-device sync from double-counting.
type SleepAggregator struct {
	cutoverHour int
	mergeGap    time.Duration
}

// NewSleepAggregator creates an aggregator with the given tunables
func NewSleepAggregator(opts Options) *SleepAggregator {
	return &SleepAggregator{
		cutoverHour: opts.NightCutoverHour,
		mergeGap:    opts.MergeGap,
	}
}

// interval is a half-open [start, end) slice of wall-clock time
type interval struct {
	start time.Time
	end   time.Time
}

// Aggregate groups sleep records into one SleepSession per night date,
// sorted ascending. Records that are not sleep analysis or whose end is
// not after their start are discarded.
func (a *SleepAggregator) Aggregate(records []*RawRecord) []*SleepSession {
	recs := make([]*RawRecord, 0, len(records))
	for _, r := range records {
		if r.Type != RecordSleepAnalysis {
			continue
		}
		if !r.End.After(r.Start) {
			LogDebug("discarding sleep interval with end <= start at %s", r.Start)
			continue
		}
		recs = append(recs, r)
	}
	if len(recs) == 0 {
		return nil
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Start.Equal(recs[j].Start) {
			return recs[i].End.Before(recs[j].End)
		}
		return recs[i].Start.Before(recs[j].Start)
	})

	byNight := make(map[string]*SleepSession)
	for _, episode := range a.splitEpisodes(recs) {
		session := a.sessionFromEpisode(episode)
		if existing, ok := byNight[session.NightDate]; ok {
			mergeSessions(existing, session)
		} else {
			byNight[session.NightDate] = session
		}
	}

	sessions := make([]*SleepSession, 0, len(byNight))
	for _, s := range byNight {
		sessions = append(sessions, s)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].NightDate < sessions[j].NightDate
	})
	return sessions
}

// splitEpisodes cuts the sorted records into continuous sleep episodes.
// The running episode end is the max end seen so far, so an interval
// nested inside a longer one never opens a new episode.
func (a *SleepAggregator) splitEpisodes(recs []*RawRecord) [][]*RawRecord {
	var episodes [][]*RawRecord
	var current []*RawRecord
	var currentEnd time.Time

	for _, r := range recs {
		if len(current) > 0 && r.Start.Sub(currentEnd) > a.mergeGap {
			episodes = append(episodes, current)
			current = nil
		}
		current = append(current, r)
		if r.End.After(currentEnd) {
			currentEnd = r.End
		}
	}
	if len(current) > 0 {
		episodes = append(episodes, current)
	}
	return episodes
}

// stagedInterval tags an interval with its sleep stage
type stagedInterval struct {
	interval
	stage SleepStage
}

// sessionFromEpisode reduces one continuous episode to a session.
// bedtime is the earliest start, wake the latest end, time in bed the
// wall-clock span between them.
func (a *SleepAggregator) sessionFromEpisode(episode []*RawRecord) *SleepSession {
	bedtime := episode[0].Start
	wake := episode[0].End
	var asleep []stagedInterval
	var awake []interval

	for _, r := range episode {
		if r.End.After(wake) {
			wake = r.End
		}
		iv := interval{start: r.Start, end: r.End}
		switch r.Stage {
		case StageAsleepDeep, StageAsleepREM, StageAsleepCore, StageAsleepUnspecified:
			asleep = append(asleep, stagedInterval{interval: iv, stage: r.Stage})
		case StageAwake:
			awake = append(awake, iv)
		}
		// InBed intervals widen the episode bounds only.
	}

	stages := attributeStages(asleep)
	s := &SleepSession{
		NightDate:   a.nightDate(bedtime),
		Bedtime:     bedtime,
		WakeTime:    wake,
		TimeInBed:   wake.Sub(bedtime),
		Deep:        stages[StageAsleepDeep],
		REM:         stages[StageAsleepREM],
		Core:        stages[StageAsleepCore],
		Unspecified: stages[StageAsleepUnspecified],
		Awake:       unionDuration(awake),
	}
	s.TotalSleep = s.Deep + s.REM + s.Core + s.Unspecified
	return s
}

// attributeStages sweeps the asleep intervals in start order and
// credits each not-yet-covered slice of time to the stage of the
// earliest interval claiming it. Every wall-clock slice counts exactly
// once, so overlapping duplicates (same stage or not) never inflate the
// totals, and the per-stage durations still sum to the union of all
// asleep time.
func attributeStages(ivs []stagedInterval) map[SleepStage]time.Duration {
	out := make(map[SleepStage]time.Duration)
	if len(ivs) == 0 {
		return out
	}
	sort.Slice(ivs, func(i, j int) bool {
		return ivs[i].start.Before(ivs[j].start)
	})

	// With starts sorted ascending, [start, coveredUntil] is always
	// fully covered, so clipping to coveredUntil is exact.
	coveredUntil := ivs[0].start
	for _, iv := range ivs {
		start := iv.start
		if coveredUntil.After(start) {
			start = coveredUntil
		}
		if iv.end.After(start) {
			out[iv.stage] += iv.end.Sub(start)
		}
		if iv.end.After(coveredUntil) {
			coveredUntil = iv.end
		}
	}
	return out
}

// nightDate assigns the episode to a calendar date: bedtimes at or
// after the cutover hour belong to the following date (the wake date),
// earlier bedtimes to their own date.
func (a *SleepAggregator) nightDate(bedtime time.Time) string {
	if bedtime.Hour() >= a.cutoverHour {
		return bedtime.AddDate(0, 0, 1).Format(DateLayout)
	}
	return bedtime.Format(DateLayout)
}

// mergeSessions folds src into dst when two disjoint episodes land on
// the same night date (e.g. a nap plus the main sleep). Durations sum;
// the bounds widen to min bedtime / max wake.
func mergeSessions(dst, src *SleepSession) {
	if src.Bedtime.Before(dst.Bedtime) {
		dst.Bedtime = src.Bedtime
	}
	if src.WakeTime.After(dst.WakeTime) {
		dst.WakeTime = src.WakeTime
	}
	dst.TimeInBed += src.TimeInBed
	dst.TotalSleep += src.TotalSleep
	dst.Deep += src.Deep
	dst.REM += src.REM
	dst.Core += src.Core
	dst.Unspecified += src.Unspecified
	dst.Awake += src.Awake
}

// unionDuration sums the wall-clock time covered by the union of the
// intervals. Overlaps count once.
func unionDuration(ivs []interval) time.Duration {
	if len(ivs) == 0 {
		return 0
	}
	sort.Slice(ivs, func(i, j int) bool {
		return ivs[i].start.Before(ivs[j].start)
	})

	var total time.Duration
	merged := ivs[0]
	for _, iv := range ivs[1:] {
		if iv.start.After(merged.end) {
			total += merged.end.Sub(merged.start)
			merged = iv
			continue
		}
		if iv.end.After(merged.end) {
			merged.end = iv.end
		}
	}
	total += merged.end.Sub(merged.start)
	return total
}
