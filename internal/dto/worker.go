package dto

// ── worker module DTOs ──

// CreateWorkerRequest creates a care worker.
type CreateWorkerRequest struct {
	Name         string `json:"name"          binding:"required,min=2,max=100"`
	EmployeeCode string `json:"employee_code" binding:"required,min=2,max=20"`
	Phone        string `json:"phone"         binding:"omitempty,max=20"`
	Municipality string `json:"municipality"  binding:"required,min=2,max=100"`
}

// UpdateWorkerRequest partially updates a care worker.
type UpdateWorkerRequest struct {
	Name         *string `json:"name"          binding:"omitempty,min=2,max=100"`
	Phone        *string `json:"phone"         binding:"omitempty,max=20"`
	Municipality *string `json:"municipality"  binding:"omitempty,min=2,max=100"`
	IsActive     *bool   `json:"is_active"`
}

// WorkerListRequest filters the worker list.
type WorkerListRequest struct {
	PageRequest
	Municipality string `form:"municipality" binding:"omitempty,max=100"`
}

// WorkerResponse is the worker shape returned to the UI.
type WorkerResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	EmployeeCode string `json:"employee_code"`
	Phone        string `json:"phone,omitempty"`
	Municipality string `json:"municipality"`
	IsActive     bool   `json:"is_active"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// WorkerBrief is the short worker shape embedded in other responses.
type WorkerBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
