package schedule

import (
	"testing"

	"github.com/Gusi-ui/sadmini-sub001/internal/model"
)

func TestSlotSet_OrderedByStartTime(t *testing.T) {
	set := NewSlotSet([]model.TimeSlot{
		{TimeSlotID: "s-3", AssignmentID: "a-1", Weekday: 3, DayType: "workday", StartTime: "16:00", EndTime: "18:00", IsActive: true},
		{TimeSlotID: "s-1", AssignmentID: "a-1", Weekday: 3, DayType: "workday", StartTime: "09:00", EndTime: "11:00", IsActive: true},
		{TimeSlotID: "s-2", AssignmentID: "a-1", Weekday: 3, DayType: "workday", StartTime: "12:00", EndTime: "13:00", IsActive: true},
	})

	slots := set.SlotsFor(3, DayTypeWorkday)
	if len(slots) != 3 {
		t.Fatalf("got %d slots, want 3", len(slots))
	}
	for i, wantID := range []string{"s-1", "s-2", "s-3"} {
		if slots[i].TimeSlotID != wantID {
			t.Errorf("slot %d = %s, want %s", i, slots[i].TimeSlotID, wantID)
		}
	}
}

func TestSlotSet_FiltersInactive(t *testing.T) {
	set := NewSlotSet([]model.TimeSlot{
		{TimeSlotID: "s-1", Weekday: 1, DayType: "workday", StartTime: "09:00", EndTime: "11:00", IsActive: true},
		{TimeSlotID: "s-2", Weekday: 1, DayType: "workday", StartTime: "12:00", EndTime: "13:00", IsActive: false},
	})

	slots := set.SlotsFor(1, DayTypeWorkday)
	if len(slots) != 1 || slots[0].TimeSlotID != "s-1" {
		t.Errorf("inactive slot leaked into SlotsFor: %v", slots)
	}
	if set.Len() != 1 {
		t.Errorf("Len() = %d, want 1", set.Len())
	}
}

func TestSlotSet_KeyIsWeekdayAndDayType(t *testing.T) {
	set := NewSlotSet([]model.TimeSlot{
		{TimeSlotID: "s-1", Weekday: 3, DayType: "workday", StartTime: "09:00", EndTime: "11:00", IsActive: true},
		{TimeSlotID: "s-2", Weekday: 3, DayType: "holiday", StartTime: "09:00", EndTime: "11:00", IsActive: true},
		{TimeSlotID: "s-3", Weekday: 4, DayType: "workday", StartTime: "09:00", EndTime: "11:00", IsActive: true},
	})

	if got := set.SlotsFor(3, DayTypeWorkday); len(got) != 1 || got[0].TimeSlotID != "s-1" {
		t.Errorf("SlotsFor(3, workday) = %v", got)
	}
	if got := set.SlotsFor(3, DayTypeHoliday); len(got) != 1 || got[0].TimeSlotID != "s-2" {
		t.Errorf("SlotsFor(3, holiday) = %v", got)
	}
	if got := set.SlotsFor(5, DayTypeWorkday); len(got) != 0 {
		t.Errorf("SlotsFor(5, workday) = %v, want empty", got)
	}
}
