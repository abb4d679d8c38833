package model

import "time"

// Assignment lifecycle states. Ended assignments are never reactivated;
// a new record is created instead.
const (
	AssignmentStatusDraft  = "draft"
	AssignmentStatusActive = "active"
	AssignmentStatusEnded  = "ended"
)

// Assignment — one worker paired with one client over a date range,
// maps to assignments. A nil EndDate means the assignment is open-ended.
type Assignment struct {
	AssignmentID string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"assignment_id"`
	WorkerID     string     `gorm:"type:uuid;not null"                             json:"worker_id"`
	ClientID     string     `gorm:"type:uuid;not null"                             json:"client_id"`
	StartDate    time.Time  `gorm:"type:date;not null"                             json:"start_date"`
	EndDate      *time.Time `gorm:"type:date"                                      json:"end_date,omitempty"`
	Status       string     `gorm:"type:varchar(20);not null;default:'draft'"      json:"status"` // draft | active | ended
	IsActive     bool       `gorm:"not null;default:false"                         json:"is_active"`
	SoftDeleteModel

	// associations
	Worker *Worker    `gorm:"foreignKey:WorkerID;references:WorkerID" json:"worker,omitempty"`
	Client *Client    `gorm:"foreignKey:ClientID;references:ClientID" json:"client,omitempty"`
	Slots  []TimeSlot `gorm:"foreignKey:AssignmentID"                 json:"slots,omitempty"`
}

// TableName sets the table name.
func (Assignment) TableName() string { return "assignments" }
