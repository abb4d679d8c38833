package model

import "time"

// Holiday scopes.
const (
	HolidayTypeNational = "national"
	HolidayTypeRegional = "regional"
	HolidayTypeLocal    = "local"
)

// Holiday — one dated holiday record, maps to holidays.
// Municipality is empty for holidays that apply everywhere (national ones);
// at most one active row may exist per (day, municipality).
// Rows are deactivated, never removed, so past schedules stay recomputable.
type Holiday struct {
	HolidayID    string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"holiday_id"`
	Day          time.Time `gorm:"column:day;type:date;not null"                  json:"day"`
	Name         string    `gorm:"type:varchar(100);not null"                     json:"name"`
	Type         string    `gorm:"type:varchar(20);not null"                      json:"type"` // national | regional | local
	Municipality string    `gorm:"type:varchar(100);not null;default:''"          json:"municipality"`
	IsActive     bool      `gorm:"not null;default:true"                          json:"is_active"`
	SoftDeleteModel
}

// TableName sets the table name.
func (Holiday) TableName() string { return "holidays" }
