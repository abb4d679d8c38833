package schedule

import (
	"fmt"
	"time"
)

// DayType classifies a calendar date. Every date maps to exactly one value.
type DayType string

const (
	DayTypeWorkday DayType = "workday"
	DayTypeHoliday DayType = "holiday"
	DayTypeWeekend DayType = "weekend"
)

// ValidDayType reports whether s is one of the three day types.
func ValidDayType(s string) bool {
	switch DayType(s) {
	case DayTypeWorkday, DayTypeHoliday, DayTypeWeekend:
		return true
	}
	return false
}

// ISOWeekday returns the ISO weekday of t: 1 (Monday) .. 7 (Sunday).
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// DateOnly truncates t to its calendar date in UTC. All engine comparisons
// operate on normalized dates so wall-clock components never leak in.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the inclusive day count of [from, to].
func DaysBetween(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours()/24) + 1
}

// ParseDate parses an ISO calendar date "YYYY-MM-DD".
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, &InvalidDateError{Value: s, Reason: "expected YYYY-MM-DD"}
	}
	return DateOnly(t), nil
}

// ParseClock parses a 24-hour "HH:MM" value (a trailing ":SS" as produced by
// a TIME column is tolerated) into minutes since midnight.
func ParseClock(s string) (int, error) {
	var h, m int
	switch len(s) {
	case 5:
		if _, err := fmt.Sscanf(s, "%2d:%2d", &h, &m); err != nil {
			return 0, &InvalidDateError{Value: s, Reason: "expected HH:MM"}
		}
	case 8:
		var sec int
		if _, err := fmt.Sscanf(s, "%2d:%2d:%2d", &h, &m, &sec); err != nil || sec < 0 || sec > 59 {
			return 0, &InvalidDateError{Value: s, Reason: "expected HH:MM:SS"}
		}
	default:
		return 0, &InvalidDateError{Value: s, Reason: "expected HH:MM"}
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, &InvalidDateError{Value: s, Reason: "hours must be 00-23 and minutes 00-59"}
	}
	return h*60 + m, nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
