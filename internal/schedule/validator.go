package schedule

import (
	"fmt"

	"github.com/Gusi-ui/sadmini-sub001/internal/model"
)

// ValidateAssignment checks a proposed assignment against the current active
// set. It is a pure function over its arguments: on rejection nothing has
// been touched, so callers can refuse the whole write atomically.
func ValidateAssignment(proposed *model.Assignment, existingActive []model.Assignment) error {
	if proposed.EndDate != nil && DateOnly(proposed.StartDate).After(DateOnly(*proposed.EndDate)) {
		return &ConflictError{
			WorkerID: proposed.WorkerID,
			ClientID: proposed.ClientID,
			Reason: fmt.Sprintf("start date %s is after end date %s",
				DateOnly(proposed.StartDate).Format("2006-01-02"),
				DateOnly(*proposed.EndDate).Format("2006-01-02")),
		}
	}

	for i := range existingActive {
		other := &existingActive[i]
		if other.AssignmentID == proposed.AssignmentID {
			continue
		}
		if !other.IsActive {
			continue
		}
		if other.WorkerID == proposed.WorkerID && other.ClientID == proposed.ClientID {
			return &ConflictError{
				WorkerID: proposed.WorkerID,
				ClientID: proposed.ClientID,
				Reason:   "an active assignment already exists for this worker and client",
			}
		}
	}

	return nil
}

// ValidateTimeSlot checks a proposed slot against the other slots of the same
// assignment. Intervals are half-open, so [09:00,11:00) and [11:00,13:00) on
// the same key do not collide.
func ValidateTimeSlot(proposed *model.TimeSlot, existing []model.TimeSlot) error {
	if proposed.Weekday < 1 || proposed.Weekday > 7 {
		return &InvalidDateError{
			Value:  fmt.Sprintf("%d", proposed.Weekday),
			Reason: "weekday must be between 1 (Monday) and 7 (Sunday)",
		}
	}
	if !ValidDayType(proposed.DayType) {
		return &InvalidDateError{Value: proposed.DayType, Reason: "unknown day type"}
	}

	start, err := ParseClock(proposed.StartTime)
	if err != nil {
		return err
	}
	end, err := ParseClock(proposed.EndTime)
	if err != nil {
		return err
	}
	if end <= start {
		return &InvalidDateError{
			Value:  fmt.Sprintf("%s-%s", proposed.StartTime, proposed.EndTime),
			Reason: "end time must be after start time",
		}
	}

	for i := range existing {
		other := &existing[i]
		if other.TimeSlotID == proposed.TimeSlotID {
			continue
		}
		if !other.IsActive {
			continue
		}
		if other.Weekday != proposed.Weekday || other.DayType != proposed.DayType {
			continue
		}
		otherStart, err := ParseClock(other.StartTime)
		if err != nil {
			return err
		}
		otherEnd, err := ParseClock(other.EndTime)
		if err != nil {
			return err
		}
		if start < otherEnd && otherStart < end {
			return &OverlapError{
				Weekday:  proposed.Weekday,
				DayType:  DayType(proposed.DayType),
				Proposed: fmt.Sprintf("[%s,%s)", FormatClock(start), FormatClock(end)),
				Existing: fmt.Sprintf("[%s,%s)", FormatClock(otherStart), FormatClock(otherEnd)),
			}
		}
	}

	return nil
}
