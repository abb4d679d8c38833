package schedule

import (
	"time"

	"github.com/Gusi-ui/sadmini-sub001/internal/model"
)

// HolidayCalendar answers "is this date a holiday for this municipality".
// Implementations must be side-effect free so the classifier stays pure.
type HolidayCalendar interface {
	IsHoliday(date time.Time, municipality string) (bool, *model.Holiday)
}

// SnapshotCalendar is an in-memory HolidayCalendar built from a holiday
// snapshot. Only active records are indexed. Rows with an empty municipality
// apply to every municipality; a municipality-scoped row takes precedence
// over such a global row on the same date.
type SnapshotCalendar struct {
	byDay map[calendarKey]*model.Holiday
}

type calendarKey struct {
	day          string
	municipality string
}

// NewSnapshotCalendar indexes the given holidays. The upstream uniqueness
// invariant (one active row per date and municipality) makes the index
// unambiguous; on a duplicate snapshot the first record wins.
func NewSnapshotCalendar(holidays []model.Holiday) *SnapshotCalendar {
	c := &SnapshotCalendar{byDay: make(map[calendarKey]*model.Holiday, len(holidays))}
	for i := range holidays {
		h := &holidays[i]
		if !h.IsActive {
			continue
		}
		key := calendarKey{day: DateOnly(h.Day).Format("2006-01-02"), municipality: h.Municipality}
		if _, exists := c.byDay[key]; !exists {
			c.byDay[key] = h
		}
	}
	return c
}

// IsHoliday looks up an exact date for a municipality, falling back to
// records that apply everywhere.
func (c *SnapshotCalendar) IsHoliday(date time.Time, municipality string) (bool, *model.Holiday) {
	day := DateOnly(date).Format("2006-01-02")
	if h, ok := c.byDay[calendarKey{day: day, municipality: municipality}]; ok {
		return true, h
	}
	if municipality != "" {
		if h, ok := c.byDay[calendarKey{day: day}]; ok {
			return true, h
		}
	}
	return false, nil
}
