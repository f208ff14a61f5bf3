// Package datetime provides date and time utility functions.
package datetime

import (
	"time"

	"github.com/iwvelando/kpi-dashboard/pkg/constants"
)

const (
	// DateLayout is the format expected in config files and is also the output
	// date format.
	DateLayout = constants.DateLayout
)

const secondsPerDay = 24 * 60 * 60

// MustParseDate parses a date string using DateLayout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseDate(dateStr string) time.Time {
	t, err := ParseDate(dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(DateLayout, dateStr)
}

// Truncate drops the clock portion of t, returning midnight UTC of the same
// calendar date.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// OffsetDays returns the date the given number of days relative to t.
func OffsetDays(t time.Time, days int) time.Time {
	return Truncate(t).AddDate(0, 0, days)
}

// DaysInclusive counts the calendar days in [start, end]. It returns 0 when
// end is before start.
func DaysInclusive(start, end time.Time) int {
	s, e := Truncate(start), Truncate(end)
	if e.Before(s) {
		return 0
	}
	// Both are UTC midnights so the difference is a whole number of days.
	// Unix seconds avoid the ~292 year cap of time.Duration.
	return int((e.Unix()-s.Unix())/secondsPerDay) + 1
}

// Format renders t using DateLayout.
func Format(t time.Time) string {
	return t.Format(DateLayout)
}
