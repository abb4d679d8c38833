package schedule

import "fmt"

// InvalidDateError reports a malformed or impossible calendar date or clock value.
type InvalidDateError struct {
	Value  string
	Reason string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date/time %q: %s", e.Value, e.Reason)
}

// ConflictError reports an assignment that clashes with an existing active
// assignment or carries an invalid date range.
type ConflictError struct {
	WorkerID string
	ClientID string
	Reason   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("assignment conflict: %s", e.Reason)
}

// OverlapError reports a time slot overlapping another active slot on the
// same (weekday, day type) key.
type OverlapError struct {
	Weekday  int
	DayType  DayType
	Proposed string
	Existing string
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("time slot %s overlaps existing slot %s on weekday %d (%s)",
		e.Proposed, e.Existing, e.Weekday, e.DayType)
}

// RangeTooLargeError reports a resolution window exceeding the configured cap.
type RangeTooLargeError struct {
	Days    int
	MaxDays int
}

func (e *RangeTooLargeError) Error() string {
	return fmt.Sprintf("resolution range of %d days exceeds the maximum of %d", e.Days, e.MaxDays)
}
