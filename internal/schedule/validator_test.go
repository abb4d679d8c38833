package schedule

import (
	"errors"
	"testing"

	"github.com/Gusi-ui/sadmini-sub001/internal/model"
)

func TestValidateAssignment_StartAfterEnd(t *testing.T) {
	end := mustDate(t, "2025-01-01")
	a := &model.Assignment{
		AssignmentID: "a-1", WorkerID: "w-1", ClientID: "c-1",
		StartDate: mustDate(t, "2025-02-01"), EndDate: &end,
	}

	err := ValidateAssignment(a, nil)
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("want *ConflictError, got %v", err)
	}
}

func TestValidateAssignment_EqualStartAndEndIsValid(t *testing.T) {
	day := mustDate(t, "2025-01-01")
	a := &model.Assignment{
		AssignmentID: "a-1", WorkerID: "w-1", ClientID: "c-1",
		StartDate: day, EndDate: &day,
	}

	if err := ValidateAssignment(a, nil); err != nil {
		t.Errorf("single-day assignment should be valid: %v", err)
	}
}

func TestValidateAssignment_SecondActiveForSamePair(t *testing.T) {
	existing := []model.Assignment{
		{AssignmentID: "a-1", WorkerID: "w-1", ClientID: "c-1", StartDate: mustDate(t, "2025-01-01"), IsActive: true},
	}
	proposed := &model.Assignment{
		AssignmentID: "a-2", WorkerID: "w-1", ClientID: "c-1", StartDate: mustDate(t, "2025-03-01"),
	}

	err := ValidateAssignment(proposed, existing)
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("want *ConflictError, got %v", err)
	}
	if conflict.WorkerID != "w-1" || conflict.ClientID != "c-1" {
		t.Errorf("conflict carries pair (%s, %s)", conflict.WorkerID, conflict.ClientID)
	}
}

func TestValidateAssignment_OtherPairsDoNotConflict(t *testing.T) {
	existing := []model.Assignment{
		{AssignmentID: "a-1", WorkerID: "w-1", ClientID: "c-1", StartDate: mustDate(t, "2025-01-01"), IsActive: true},
		{AssignmentID: "a-2", WorkerID: "w-2", ClientID: "c-2", StartDate: mustDate(t, "2025-01-01"), IsActive: true},
		// ended assignment of the same pair must not block a new one
		{AssignmentID: "a-3", WorkerID: "w-1", ClientID: "c-2", StartDate: mustDate(t, "2024-01-01"), IsActive: false},
	}
	proposed := &model.Assignment{
		AssignmentID: "a-4", WorkerID: "w-1", ClientID: "c-2", StartDate: mustDate(t, "2025-03-01"),
	}

	if err := ValidateAssignment(proposed, existing); err != nil {
		t.Errorf("no active assignment exists for (w-1, c-2), got %v", err)
	}
}

func TestValidateAssignment_UpdateOfItselfDoesNotConflict(t *testing.T) {
	existing := []model.Assignment{
		{AssignmentID: "a-1", WorkerID: "w-1", ClientID: "c-1", StartDate: mustDate(t, "2025-01-01"), IsActive: true},
	}
	proposed := &model.Assignment{
		AssignmentID: "a-1", WorkerID: "w-1", ClientID: "c-1", StartDate: mustDate(t, "2025-01-01"),
	}

	if err := ValidateAssignment(proposed, existing); err != nil {
		t.Errorf("an assignment must not conflict with itself: %v", err)
	}
}

func TestValidateTimeSlot_EndNotAfterStart(t *testing.T) {
	for _, times := range [][2]string{{"11:00", "09:00"}, {"09:00", "09:00"}} {
		slot := &model.TimeSlot{
			TimeSlotID: "s-1", Weekday: 3, DayType: "workday",
			StartTime: times[0], EndTime: times[1],
		}
		err := ValidateTimeSlot(slot, nil)
		var invalid *InvalidDateError
		if !errors.As(err, &invalid) {
			t.Errorf("%s-%s: want *InvalidDateError, got %v", times[0], times[1], err)
		}
	}
}

func TestValidateTimeSlot_BadWeekdayAndDayType(t *testing.T) {
	err := ValidateTimeSlot(&model.TimeSlot{Weekday: 0, DayType: "workday", StartTime: "09:00", EndTime: "10:00"}, nil)
	if err == nil {
		t.Error("weekday 0 should be rejected")
	}
	err = ValidateTimeSlot(&model.TimeSlot{Weekday: 8, DayType: "workday", StartTime: "09:00", EndTime: "10:00"}, nil)
	if err == nil {
		t.Error("weekday 8 should be rejected")
	}
	err = ValidateTimeSlot(&model.TimeSlot{Weekday: 1, DayType: "someday", StartTime: "09:00", EndTime: "10:00"}, nil)
	if err == nil {
		t.Error("unknown day type should be rejected")
	}
}

// [09:00,11:00) and [10:00,12:00) overlap in [10:00,11:00).
func TestValidateTimeSlot_OverlappingIntervals(t *testing.T) {
	existing := []model.TimeSlot{
		{TimeSlotID: "s-1", Weekday: 3, DayType: "workday", StartTime: "09:00", EndTime: "11:00", IsActive: true},
	}
	proposed := &model.TimeSlot{
		TimeSlotID: "s-2", Weekday: 3, DayType: "workday", StartTime: "10:00", EndTime: "12:00",
	}

	err := ValidateTimeSlot(proposed, existing)
	var overlap *OverlapError
	if !errors.As(err, &overlap) {
		t.Fatalf("want *OverlapError, got %v", err)
	}
	if overlap.Weekday != 3 || overlap.DayType != DayTypeWorkday {
		t.Errorf("overlap reported on (%d, %s)", overlap.Weekday, overlap.DayType)
	}
}

// Half-open intervals: [09:00,11:00) and [11:00,13:00) share only the
// boundary and must both be accepted.
func TestValidateTimeSlot_AdjacentIntervalsDoNotOverlap(t *testing.T) {
	existing := []model.TimeSlot{
		{TimeSlotID: "s-1", Weekday: 3, DayType: "workday", StartTime: "09:00", EndTime: "11:00", IsActive: true},
	}
	proposed := &model.TimeSlot{
		TimeSlotID: "s-2", Weekday: 3, DayType: "workday", StartTime: "11:00", EndTime: "13:00",
	}

	if err := ValidateTimeSlot(proposed, existing); err != nil {
		t.Errorf("adjacent slots must be accepted: %v", err)
	}
}

func TestValidateTimeSlot_DifferentKeyMayOverlap(t *testing.T) {
	existing := []model.TimeSlot{
		{TimeSlotID: "s-1", Weekday: 3, DayType: "workday", StartTime: "09:00", EndTime: "11:00", IsActive: true},
	}

	// same interval, different day type
	holiday := &model.TimeSlot{TimeSlotID: "s-2", Weekday: 3, DayType: "holiday", StartTime: "09:00", EndTime: "11:00"}
	if err := ValidateTimeSlot(holiday, existing); err != nil {
		t.Errorf("same interval on another day type must be accepted: %v", err)
	}

	// same interval, different weekday
	thursday := &model.TimeSlot{TimeSlotID: "s-3", Weekday: 4, DayType: "workday", StartTime: "09:00", EndTime: "11:00"}
	if err := ValidateTimeSlot(thursday, existing); err != nil {
		t.Errorf("same interval on another weekday must be accepted: %v", err)
	}
}

func TestValidateTimeSlot_InactiveSlotsIgnored(t *testing.T) {
	existing := []model.TimeSlot{
		{TimeSlotID: "s-1", Weekday: 3, DayType: "workday", StartTime: "09:00", EndTime: "11:00", IsActive: false},
	}
	proposed := &model.TimeSlot{
		TimeSlotID: "s-2", Weekday: 3, DayType: "workday", StartTime: "10:00", EndTime: "12:00",
	}

	if err := ValidateTimeSlot(proposed, existing); err != nil {
		t.Errorf("deactivated slots must not block new ones: %v", err)
	}
}

func TestValidateTimeSlot_UpdateOfItselfDoesNotOverlap(t *testing.T) {
	existing := []model.TimeSlot{
		{TimeSlotID: "s-1", Weekday: 3, DayType: "workday", StartTime: "09:00", EndTime: "11:00", IsActive: true},
	}
	proposed := &model.TimeSlot{
		TimeSlotID: "s-1", Weekday: 3, DayType: "workday", StartTime: "09:30", EndTime: "11:30",
	}

	if err := ValidateTimeSlot(proposed, existing); err != nil {
		t.Errorf("a slot must not overlap itself on update: %v", err)
	}
}
