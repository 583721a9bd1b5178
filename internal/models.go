package internal

import (
	"time"
)

// AppleTimeLayout is the timestamp format used by Apple Health exports,
// e.g. "2024-12-21 23:45:30 -0800".
const AppleTimeLayout = "2006-01-02 15:04:05 -0700"

// DateLayout is the calendar-date key format used throughout aggregation.
// Lexicographic order on these keys matches chronological order.
const DateLayout = "2006-01-02"

// RecordType classifies a health record by its export type identifier.
// Unknown types are discarded at parse time, never dispatched on.
type RecordType int

const (
	RecordUnknown RecordType = iota
	RecordSleepAnalysis
	RecordHeartRate
	RecordRestingHeartRate
	RecordHRV
)

// String returns a short name for the record type
func (t RecordType) String() string {
	switch t {
	case RecordSleepAnalysis:
		return "sleep"
	case RecordHeartRate:
		return "heart_rate"
	case RecordRestingHeartRate:
		return "resting_heart_rate"
	case RecordHRV:
		return "hrv_sdnn"
	default:
		return "unknown"
	}
}

// ClassifyRecordType maps an export type identifier to a RecordType
func ClassifyRecordType(identifier string) RecordType {
	switch identifier {
	case "HKCategoryTypeIdentifierSleepAnalysis":
		return RecordSleepAnalysis
	case "HKQuantityTypeIdentifierHeartRate":
		return RecordHeartRate
	case "HKQuantityTypeIdentifierRestingHeartRate":
		return RecordRestingHeartRate
	case "HKQuantityTypeIdentifierHeartRateVariabilitySDNN":
		return RecordHRV
	default:
		return RecordUnknown
	}
}

// SleepStage classifies a sleep-analysis interval
type SleepStage int

const (
	StageUnknown SleepStage = iota
	StageInBed
	StageAsleepUnspecified
	StageAsleepCore
	StageAsleepDeep
	StageAsleepREM
	StageAwake
)

// String returns a short name for the sleep stage
func (s SleepStage) String() string {
	switch s {
	case StageInBed:
		return "in_bed"
	case StageAsleepUnspecified:
		return "asleep"
	case StageAsleepCore:
		return "core"
	case StageAsleepDeep:
		return "deep"
	case StageAsleepREM:
		return "rem"
	case StageAwake:
		return "awake"
	default:
		return "unknown"
	}
}

// ClassifySleepStage maps a sleep-analysis value identifier to a
// SleepStage. Older exports use the bare "Asleep" value, newer ones the
// staged AsleepCore/AsleepDeep/AsleepREM/AsleepUnspecified values.
func ClassifySleepStage(value string) SleepStage {
	switch value {
	case "HKCategoryValueSleepAnalysisInBed":
		return StageInBed
	case "HKCategoryValueSleepAnalysisAsleep",
		"HKCategoryValueSleepAnalysisAsleepUnspecified":
		return StageAsleepUnspecified
	case "HKCategoryValueSleepAnalysisAsleepCore":
		return StageAsleepCore
	case "HKCategoryValueSleepAnalysisAsleepDeep":
		return StageAsleepDeep
	case "HKCategoryValueSleepAnalysisAsleepREM":
		return StageAsleepREM
	case "HKCategoryValueSleepAnalysisAwake":
		return StageAwake
	default:
		return StageUnknown
	}
}

// RawRecord is a single parsed health record. Immutable once parsed.
// Stage is meaningful only for RecordSleepAnalysis; Value only for the
// quantity types.
type RawRecord struct {
	Type  RecordType
	Stage SleepStage
	Start time.Time
	End   time.Time
	Value float64
}

// DateKey returns the calendar-date key of the record's own start
// timestamp, in the record's own zone offset.
func (r *RawRecord) DateKey() string {
	return r.Start.Format(DateLayout)
}

// SleepSession is one night's aggregated sleep, keyed by night date.
// Stage durations are interval unions, so overlapping source records
// never double-count.
type SleepSession struct {
	NightDate   string        `json:"night_date" yaml:"night_date"`
	Bedtime     time.Time     `json:"bedtime" yaml:"bedtime"`
	WakeTime    time.Time     `json:"wake_time" yaml:"wake_time"`
	TimeInBed   time.Duration `json:"time_in_bed" yaml:"time_in_bed"`
	TotalSleep  time.Duration `json:"total_sleep" yaml:"total_sleep"`
	Deep        time.Duration `json:"deep" yaml:"deep"`
	REM         time.Duration `json:"rem" yaml:"rem"`
	Core        time.Duration `json:"core" yaml:"core"`
	Unspecified time.Duration `json:"unspecified" yaml:"unspecified"`
	Awake       time.Duration `json:"awake" yaml:"awake"`
}

// HeartDaySummary is one day's aggregated heart metrics. Nil fields mean
// no data, which is distinct from a zero reading.
type HeartDaySummary struct {
	Date        string   `json:"date" yaml:"date"`
	AvgHR       *float64 `json:"avg_hr,omitempty" yaml:"avg_hr,omitempty"`
	MinHR       *float64 `json:"min_hr,omitempty" yaml:"min_hr,omitempty"`
	MaxHR       *float64 `json:"max_hr,omitempty" yaml:"max_hr,omitempty"`
	SampleCount *int     `json:"sample_count,omitempty" yaml:"sample_count,omitempty"`
	RestingHR   *float64 `json:"resting_hr,omitempty" yaml:"resting_hr,omitempty"`
	HRVSDNN     *float64 `json:"hrv_sdnn,omitempty" yaml:"hrv_sdnn,omitempty"`
}

// DailyRow is the terminal output unit: one row per calendar date
// present in either aggregator's output. A nil group means no data for
// that date on that side.
type DailyRow struct {
	Date  string           `json:"date" yaml:"date"`
	Sleep *SleepSession    `json:"sleep,omitempty" yaml:"sleep,omitempty"`
	Heart *HeartDaySummary `json:"heart,omitempty" yaml:"heart,omitempty"`
}
