package model

// Worker — care worker, maps to workers.
type Worker struct {
	WorkerID     string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"worker_id"`
	Name         string `gorm:"type:varchar(100);not null"                     json:"name"`
	EmployeeCode string `gorm:"type:varchar(20);not null;uniqueIndex"          json:"employee_code"`
	Phone        string `gorm:"type:varchar(20)"                               json:"phone,omitempty"`
	Municipality string `gorm:"type:varchar(100);not null"                     json:"municipality"`
	IsActive     bool   `gorm:"not null;default:true"                          json:"is_active"`
	SoftDeleteModel
}

// TableName sets the table name.
func (Worker) TableName() string { return "workers" }
