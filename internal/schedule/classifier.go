package schedule

import "time"

// Classifier assigns every calendar date exactly one day type.
type Classifier struct {
	calendar HolidayCalendar
}

// NewClassifier creates a Classifier over the given holiday calendar.
func NewClassifier(calendar HolidayCalendar) *Classifier {
	return &Classifier{calendar: calendar}
}

// Classify returns the day type of date for a municipality.
// Precedence is strict and must not be reordered: a holiday wins over the
// weekend so that a holiday falling on a Saturday or Sunday is still billed
// and scheduled as a holiday.
func (c *Classifier) Classify(date time.Time, municipality string) DayType {
	if ok, _ := c.calendar.IsHoliday(date, municipality); ok {
		return DayTypeHoliday
	}
	if wd := ISOWeekday(date); wd == 6 || wd == 7 {
		return DayTypeWeekend
	}
	return DayTypeWorkday
}
