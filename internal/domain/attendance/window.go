package attendance

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time without a date, as configured for the daily
// attendance window.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// ParseTimeOfDay parses "HH:MM:SS" in 24-hour notation.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
}

// At anchors the time of day to day's calendar date, in day's location.
func (t TimeOfDay) At(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, t.Second, 0, day.Location())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// WithinWindow reports whether now falls inside the daily window [start, end],
// inclusive on both ends. The interval is re-anchored to now's calendar date
// on every call. When end sorts before start the window wraps past midnight:
// the late-evening stretch and the early-morning stretch of now's own day
// both count. A zero-width window (start == end) admits nothing; callers
// treat that configuration as invalid.
func WithinWindow(now time.Time, start, end TimeOfDay) bool {
	startAt := start.At(now)
	endAt := end.At(now)

	switch {
	case startAt.Equal(endAt):
		return false
	case endAt.Before(startAt):
		// wraps past midnight
		return !now.Before(startAt) || !now.After(endAt)
	default:
		return !now.Before(startAt) && !now.After(endAt)
	}
}
