package model

// Client — care recipient, maps to clients.
// Municipality drives which holiday calendar applies to the client's visits.
type Client struct {
	ClientID     string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"client_id"`
	Name         string `gorm:"type:varchar(100);not null"                     json:"name"`
	Address      string `gorm:"type:varchar(255)"                              json:"address,omitempty"`
	Municipality string `gorm:"type:varchar(100);not null"                     json:"municipality"`
	IsActive     bool   `gorm:"not null;default:true"                          json:"is_active"`
	SoftDeleteModel
}

// TableName sets the table name.
func (Client) TableName() string { return "clients" }
