package schedule

import (
	"sort"

	"github.com/Gusi-ui/sadmini-sub001/internal/model"
)

// SlotSet holds the recurring slot definitions of one assignment, indexed by
// (weekday, day type). It stores and retrieves only; overlap validation is
// the validator's responsibility before slots ever reach a SlotSet.
type SlotSet struct {
	byKey map[slotKey][]model.TimeSlot
}

type slotKey struct {
	weekday int
	dayType DayType
}

// NewSlotSet indexes the active slots of an assignment. Slots under each key
// are ordered by start time ascending; ties break on end time then ID so the
// ordering is fully deterministic.
func NewSlotSet(slots []model.TimeSlot) *SlotSet {
	s := &SlotSet{byKey: make(map[slotKey][]model.TimeSlot)}
	for _, slot := range slots {
		if !slot.IsActive {
			continue
		}
		key := slotKey{weekday: slot.Weekday, dayType: DayType(slot.DayType)}
		s.byKey[key] = append(s.byKey[key], slot)
	}
	for key := range s.byKey {
		group := s.byKey[key]
		sort.Slice(group, func(i, j int) bool {
			if group[i].StartTime != group[j].StartTime {
				return group[i].StartTime < group[j].StartTime
			}
			if group[i].EndTime != group[j].EndTime {
				return group[i].EndTime < group[j].EndTime
			}
			return group[i].TimeSlotID < group[j].TimeSlotID
		})
	}
	return s
}

// SlotsFor returns the active slots matching the weekday and day type,
// ordered by start time ascending. Callers must not mutate the result.
func (s *SlotSet) SlotsFor(weekday int, dayType DayType) []model.TimeSlot {
	return s.byKey[slotKey{weekday: weekday, dayType: dayType}]
}

// Len reports the number of indexed slots.
func (s *SlotSet) Len() int {
	n := 0
	for _, group := range s.byKey {
		n += len(group)
	}
	return n
}
