package utils

import (
	"time"

	"github.com/rpglife/rpglife/internal/constants"
)

// DayString returns the calendar-day string (YYYY-MM-DD) for t in its own
// location. All per-day bucketing in the engine keys off this format.
func DayString(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// DaysAgo returns the day string for n days before t.
func DaysAgo(t time.Time, n int) string {
	return t.AddDate(0, 0, -n).Format(constants.DateFormat)
}

// NextMidnight returns the first instant of the day after t in t's location.
func NextMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DayString(a) == DayString(b)
}

// DaysSince returns the number of whole days elapsed from earlier to later.
func DaysSince(earlier, later time.Time) int {
	if later.Before(earlier) {
		return 0
	}
	return int(later.Sub(earlier).Hours() / 24)
}
