package model

// TimeSlot — recurring weekly slot of an assignment, maps to time_slots.
// Weekday follows ISO numbering (1 = Monday .. 7 = Sunday). A slot applies to
// a date only when both the weekday and the date's classified day type match.
// Times are "HH:MM" strings; intervals are half-open [start, end).
type TimeSlot struct {
	TimeSlotID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"time_slot_id"`
	AssignmentID string `gorm:"type:uuid;not null"                             json:"assignment_id"`
	Weekday      int    `gorm:"type:smallint;not null"                         json:"weekday"`  // 1-7
	DayType      string `gorm:"type:varchar(10);not null"                      json:"day_type"` // workday | holiday | weekend
	StartTime    string `gorm:"type:time;not null"                             json:"start_time"`
	EndTime      string `gorm:"type:time;not null"                             json:"end_time"`
	IsActive     bool   `gorm:"not null;default:true"                          json:"is_active"`
	SoftDeleteModel
}

// TableName sets the table name.
func (TimeSlot) TableName() string { return "time_slots" }
