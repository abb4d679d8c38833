package repository

import "gorm.io/gorm"

// Repository aggregates all data-access interfaces.
type Repository struct {
	User       UserRepository
	Worker     WorkerRepository
	Client     ClientRepository
	Holiday    HolidayRepository
	Assignment AssignmentRepository
	TimeSlot   TimeSlotRepository
}

// NewRepository wires every repository over one gorm handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:       NewUserRepo(db),
		Worker:     NewWorkerRepo(db),
		Client:     NewClientRepo(db),
		Holiday:    NewHolidayRepo(db),
		Assignment: NewAssignmentRepo(db),
		TimeSlot:   NewTimeSlotRepo(db),
	}
}
