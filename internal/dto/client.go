package dto

// ── client module DTOs ──

// CreateClientRequest creates a care recipient.
type CreateClientRequest struct {
	Name         string `json:"name"         binding:"required,min=2,max=100"`
	Address      string `json:"address"      binding:"omitempty,max=255"`
	Municipality string `json:"municipality" binding:"required,min=2,max=100"`
}

// UpdateClientRequest partially updates a care recipient.
type UpdateClientRequest struct {
	Name         *string `json:"name"         binding:"omitempty,min=2,max=100"`
	Address      *string `json:"address"      binding:"omitempty,max=255"`
	Municipality *string `json:"municipality" binding:"omitempty,min=2,max=100"`
	IsActive     *bool   `json:"is_active"`
}

// ClientListRequest filters the client list.
type ClientListRequest struct {
	PageRequest
	Municipality string `form:"municipality" binding:"omitempty,max=100"`
}

// ClientResponse is the client shape returned to the UI.
type ClientResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address,omitempty"`
	Municipality string `json:"municipality"`
	IsActive     bool   `json:"is_active"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// ClientBrief is the short client shape embedded in other responses.
type ClientBrief struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Municipality string `json:"municipality"`
}
