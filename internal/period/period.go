// Package period maps an anchor date and a grouping granularity to the
// inclusive calendar range it belongs to. Pure date arithmetic, no I/O.
package period

import (
	"errors"
	"fmt"
	"time"
)

type Granularity string

const (
	Day   Granularity = "1day"
	Week  Granularity = "1week"
	Month Granularity = "1month"
)

var ErrInvalidGranularity = errors.New("invalid granularity")

// Parse validates a group_by query value.
func Parse(s string) (Granularity, error) {
	switch Granularity(s) {
	case Day, Week, Month:
		return Granularity(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidGranularity, s)
}

// ParseOrDefault falls back to Day for anything unrecognized, including
// the empty string. Handlers use this so a bad group_by never 500s.
func ParseOrDefault(s string) Granularity {
	g, err := Parse(s)
	if err != nil {
		return Day
	}
	return g
}

// Range returns the inclusive [start, end] period containing anchor.
// Day: the anchor itself. Week: Monday through Sunday of the anchor's
// week. Month: first through last calendar day of the anchor's month.
func Range(anchor time.Time, g Granularity) (time.Time, time.Time, error) {
	anchor = Truncate(anchor)
	switch g {
	case Day:
		return anchor, anchor, nil
	case Week:
		start := anchor.AddDate(0, 0, -weekdayIndex(anchor))
		return start, start.AddDate(0, 0, 6), nil
	case Month:
		start := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		return start, start.AddDate(0, 1, -1), nil
	}
	return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidGranularity, string(g))
}

// Truncate drops the time-of-day component.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// weekdayIndex counts days since Monday (Monday=0 .. Sunday=6).
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
