package dto

// ── assignment module DTOs ──

// CreateAssignmentRequest creates a draft assignment.
type CreateAssignmentRequest struct {
	WorkerID  string `json:"worker_id"  binding:"required,uuid"`
	ClientID  string `json:"client_id"  binding:"required,uuid"`
	StartDate string `json:"start_date" binding:"required"` // "2025-01-01"
	EndDate   string `json:"end_date"   binding:"omitempty"`
}

// UpdateAssignmentRequest adjusts the date range of a draft or active assignment.
type UpdateAssignmentRequest struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"` // empty string clears the end date
}

// EndAssignmentRequest ends an active assignment.
type EndAssignmentRequest struct {
	EndDate string `json:"end_date" binding:"omitempty"` // defaults to today
}

// AssignmentListRequest filters the assignment list.
type AssignmentListRequest struct {
	PageRequest
	WorkerID string `form:"worker_id" binding:"omitempty,uuid"`
	ClientID string `form:"client_id" binding:"omitempty,uuid"`
	Status   string `form:"status"    binding:"omitempty,oneof=draft active ended"`
}

// AssignmentResponse is the assignment shape returned to the UI.
type AssignmentResponse struct {
	ID        string             `json:"id"`
	WorkerID  string             `json:"worker_id"`
	ClientID  string             `json:"client_id"`
	Worker    *WorkerBrief       `json:"worker,omitempty"`
	Client    *ClientBrief       `json:"client,omitempty"`
	StartDate string             `json:"start_date"`
	EndDate   string             `json:"end_date,omitempty"`
	Status    string             `json:"status"`
	IsActive  bool               `json:"is_active"`
	Slots     []TimeSlotResponse `json:"slots,omitempty"`
	CreatedAt string             `json:"created_at"`
	UpdatedAt string             `json:"updated_at"`
}

// ── time slot DTOs ──

// CreateTimeSlotRequest attaches a recurring slot to an assignment.
type CreateTimeSlotRequest struct {
	Weekday   int    `json:"weekday"    binding:"required,min=1,max=7"`
	DayType   string `json:"day_type"   binding:"required,oneof=workday holiday weekend"`
	StartTime string `json:"start_time" binding:"required"` // "09:00"
	EndTime   string `json:"end_time"   binding:"required"` // "11:00"
}

// UpdateTimeSlotRequest partially updates a slot.
type UpdateTimeSlotRequest struct {
	Weekday   *int    `json:"weekday"    binding:"omitempty,min=1,max=7"`
	DayType   *string `json:"day_type"   binding:"omitempty,oneof=workday holiday weekend"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	IsActive  *bool   `json:"is_active"`
}

// TimeSlotResponse is the slot shape returned to the UI.
type TimeSlotResponse struct {
	ID           string `json:"id"`
	AssignmentID string `json:"assignment_id"`
	Weekday      int    `json:"weekday"`
	DayType      string `json:"day_type"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	IsActive     bool   `json:"is_active"`
}
