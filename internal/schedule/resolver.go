package schedule

import (
	"time"

	"github.com/Gusi-ui/sadmini-sub001/internal/model"
)

// ResolvedVisit is one concrete care visit derived from a slot on a date.
// Visits are recomputed on demand and never persisted.
type ResolvedVisit struct {
	Date         time.Time `json:"date"`
	AssignmentID string    `json:"assignment_id"`
	WorkerID     string    `json:"worker_id"`
	ClientID     string    `json:"client_id"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	DayType      DayType   `json:"day_type"`
}

// Resolver expands an assignment's slot definitions into dated visits.
// It is pure: identical snapshots and range always produce the identical
// ordered sequence, so schedules can be safely recomputed after the holiday
// calendar changes retroactively.
type Resolver struct {
	classifier   *Classifier
	maxRangeDays int
}

// NewResolver creates a Resolver. maxRangeDays caps the caller-supplied
// window; zero or negative disables the cap.
func NewResolver(classifier *Classifier, maxRangeDays int) *Resolver {
	return &Resolver{classifier: classifier, maxRangeDays: maxRangeDays}
}

// Resolve produces the visits of one assignment for each date in [from, to],
// clamped to the assignment's own validity window. A nil end date means the
// assignment is open-ended and bounded only by the requested range. Dates
// with no matching slot contribute nothing; a range entirely outside the
// validity window yields an empty sequence.
func (r *Resolver) Resolve(a *model.Assignment, slots *SlotSet, municipality string, from, to time.Time) ([]ResolvedVisit, error) {
	from = DateOnly(from)
	to = DateOnly(to)

	if from.After(to) {
		return []ResolvedVisit{}, nil
	}
	if r.maxRangeDays > 0 {
		if days := DaysBetween(from, to); days > r.maxRangeDays {
			return nil, &RangeTooLargeError{Days: days, MaxDays: r.maxRangeDays}
		}
	}

	start := from
	if s := DateOnly(a.StartDate); s.After(start) {
		start = s
	}
	end := to
	if a.EndDate != nil {
		if e := DateOnly(*a.EndDate); e.Before(end) {
			end = e
		}
	}
	if start.After(end) {
		return []ResolvedVisit{}, nil
	}

	visits := []ResolvedVisit{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dayType := r.classifier.Classify(d, municipality)
		weekday := ISOWeekday(d)
		for _, slot := range slots.SlotsFor(weekday, dayType) {
			visits = append(visits, ResolvedVisit{
				Date:         d,
				AssignmentID: a.AssignmentID,
				WorkerID:     a.WorkerID,
				ClientID:     a.ClientID,
				StartTime:    slot.StartTime,
				EndTime:      slot.EndTime,
				DayType:      dayType,
			})
		}
	}

	return visits, nil
}
