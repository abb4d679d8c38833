package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Gusi-ui/sadmini-sub001/internal/model"
)

// TimeSlotRepository is the recurring slot data access interface.
type TimeSlotRepository interface {
	Create(ctx context.Context, slot *model.TimeSlot) error
	GetByID(ctx context.Context, id string) (*model.TimeSlot, error)
	// ListByAssignment returns every slot of an assignment, active or not,
	// ordered by weekday then start time.
	ListByAssignment(ctx context.Context, assignmentID string) ([]model.TimeSlot, error)
	Update(ctx context.Context, slot *model.TimeSlot) error
	Deactivate(ctx context.Context, id string, updatedBy string) error
}

type timeSlotRepo struct {
	db *gorm.DB
}

// NewTimeSlotRepo creates a TimeSlotRepository.
func NewTimeSlotRepo(db *gorm.DB) TimeSlotRepository {
	return &timeSlotRepo{db: db}
}

func (r *timeSlotRepo) Create(ctx context.Context, slot *model.TimeSlot) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *timeSlotRepo) GetByID(ctx context.Context, id string) (*model.TimeSlot, error) {
	var slot model.TimeSlot
	err := r.db.WithContext(ctx).Where("time_slot_id = ?", id).First(&slot).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *timeSlotRepo) ListByAssignment(ctx context.Context, assignmentID string) ([]model.TimeSlot, error) {
	var slots []model.TimeSlot
	err := r.db.WithContext(ctx).
		Where("assignment_id = ?", assignmentID).
		Order("weekday ASC, start_time ASC").
		Find(&slots).Error
	return slots, err
}

func (r *timeSlotRepo) Update(ctx context.Context, slot *model.TimeSlot) error {
	return r.db.WithContext(ctx).Save(slot).Error
}

func (r *timeSlotRepo) Deactivate(ctx context.Context, id string, updatedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.TimeSlot{}).
		Where("time_slot_id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_by": updatedBy,
			"updated_at": gorm.Expr("NOW()"),
		}).Error
}
