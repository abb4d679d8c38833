package dto

// ── schedule resolution DTOs ──

// ResolveRequest bounds a resolution query.
type ResolveRequest struct {
	From string `form:"from" binding:"required"` // "2025-01-01"
	To   string `form:"to"   binding:"required"` // "2025-01-31"
}

// ResolvedVisitResponse is one concrete care visit.
type ResolvedVisitResponse struct {
	Date         string       `json:"date"`
	AssignmentID string       `json:"assignment_id"`
	Worker       *WorkerBrief `json:"worker,omitempty"`
	Client       *ClientBrief `json:"client,omitempty"`
	StartTime    string       `json:"start_time"`
	EndTime      string       `json:"end_time"`
	DayType      string       `json:"day_type"`
}

// ScheduleResponse is an ordered sequence of resolved visits.
type ScheduleResponse struct {
	From   string                  `json:"from"`
	To     string                  `json:"to"`
	Visits []ResolvedVisitResponse `json:"visits"`
}
