package model

// User — staff account for the administration UI, maps to users.
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	Name         string `gorm:"type:varchar(100);not null"                     json:"name"`
	Role         string `gorm:"type:varchar(20);not null;default:'coordinator'" json:"role"` // admin | coordinator
	IsActive     bool   `gorm:"not null;default:true"                          json:"is_active"`
	SoftDeleteModel
}

// TableName sets the table name.
func (User) TableName() string { return "users" }
