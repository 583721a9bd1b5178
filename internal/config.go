package internal

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Options holds the pipeline tunables. The night cutover hour and the
// episode merge gap are inferred conventions rather than documented
// ones, so both are explicit here and overridable from a config file.
type Options struct {
	// Days is the look-back window; <= 0 disables filtering.
	Days int
	// Now anchors the look-back cutoff.
	Now time.Time
	// NightCutoverHour: a bedtime at or after this local hour
	// attributes the night to the next calendar date.
	NightCutoverHour int
	// MergeGap is the largest gap between consecutive sleep intervals
	// still treated as the same sleep episode.
	MergeGap time.Duration
}

// DefaultOptions returns the standard tunables: 30-day window, 18:00
// cutover, 5-minute merge gap.
func DefaultOptions() Options {
	return Options{
		Days:             30,
		Now:              time.Now(),
		NightCutoverHour: 18,
		MergeGap:         5 * time.Minute,
	}
}

// fileConfig is the YAML shape of a tunables file. Pointer fields so an
// absent key leaves the current value alone.
type fileConfig struct {
	Days             *int `yaml:"days"`
	NightCutoverHour *int `yaml:"night_cutover_hour"`
	MergeGapMinutes  *int `yaml:"merge_gap_minutes"`
}

// LoadFile overlays tunables from a YAML config file onto the options
func (o *Options) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &InputError{Path: path, Op: "open", Err: err}
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return &InputError{Path: path, Op: "parse", Err: err}
	}

	if cfg.Days != nil {
		o.Days = *cfg.Days
	}
	if cfg.NightCutoverHour != nil {
		if *cfg.NightCutoverHour < 0 || *cfg.NightCutoverHour > 23 {
			return &InputError{Path: path, Op: "parse",
				Err: fmt.Errorf("night_cutover_hour %d out of range 0-23", *cfg.NightCutoverHour)}
		}
		o.NightCutoverHour = *cfg.NightCutoverHour
	}
	if cfg.MergeGapMinutes != nil {
		if *cfg.MergeGapMinutes < 0 {
			return &InputError{Path: path, Op: "parse",
				Err: fmt.Errorf("merge_gap_minutes %d must not be negative", *cfg.MergeGapMinutes)}
		}
		o.MergeGap = time.Duration(*cfg.MergeGapMinutes) * time.Minute
	}

	return nil
}
