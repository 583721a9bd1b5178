package internal

import "time"

// TimeWindow filters records against a look-back cutoff. The reference
// instant is injected by the caller so the cutoff is testable; the
// filter never reads the ambient clock.
type TimeWindow struct {
	cutoff time.Time
	all    bool
}

// NewTimeWindow builds a window keeping records that start at or after
// now minus days. days <= 0 means no filtering.
func NewTimeWindow(now time.Time, days int) TimeWindow {
	if days <= 0 {
		return TimeWindow{all: true}
	}
	return TimeWindow{cutoff: now.AddDate(0, 0, -days)}
}

// Contains reports whether the record starts inside the window
func (w TimeWindow) Contains(r *RawRecord) bool {
	return w.all || !r.Start.Before(w.cutoff)
}

// Cutoff returns the cutoff instant, zero when the window is unbounded
func (w TimeWindow) Cutoff() time.Time {
	return w.cutoff
}
