package dto

// ── holiday module DTOs ──

// CreateHolidayRequest registers a holiday.
// Municipality is empty for holidays that apply everywhere.
type CreateHolidayRequest struct {
	Day          string `json:"day"          binding:"required"` // "2025-01-01"
	Name         string `json:"name"         binding:"required,min=2,max=100"`
	Type         string `json:"type"         binding:"required,oneof=national regional local"`
	Municipality string `json:"municipality" binding:"omitempty,max=100"`
}

// UpdateHolidayRequest partially updates a holiday.
type UpdateHolidayRequest struct {
	Name     *string `json:"name"      binding:"omitempty,min=2,max=100"`
	Type     *string `json:"type"      binding:"omitempty,oneof=national regional local"`
	IsActive *bool   `json:"is_active"`
}

// HolidayListRequest filters the holiday list.
type HolidayListRequest struct {
	Municipality string `form:"municipality" binding:"omitempty,max=100"`
	Year         int    `form:"year"         binding:"omitempty,min=2000,max=2100"`
}

// SeedHolidaysRequest seeds the national holidays of one year.
type SeedHolidaysRequest struct {
	Year int `json:"year" binding:"required,min=2000,max=2100"`
}

// HolidayResponse is the holiday shape returned to the UI.
type HolidayResponse struct {
	ID           string `json:"id"`
	Day          string `json:"day"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Municipality string `json:"municipality,omitempty"`
	IsActive     bool   `json:"is_active"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// SeedHolidaysResponse reports a seeding run.
type SeedHolidaysResponse struct {
	Year     int               `json:"year"`
	Inserted int               `json:"inserted"`
	Skipped  int               `json:"skipped"`
	Holidays []HolidayResponse `json:"holidays"`
}
