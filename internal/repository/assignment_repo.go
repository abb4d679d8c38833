package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Gusi-ui/sadmini-sub001/internal/model"
)

// AssignmentRepository is the assignment data access interface.
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *model.Assignment) error
	GetByID(ctx context.Context, id string) (*model.Assignment, error)
	List(ctx context.Context, workerID, clientID, status string, page, pageSize int) ([]model.Assignment, int64, error)
	// ListActive returns every active assignment, optionally narrowed to a
	// worker/client pair. The validator runs against this set.
	ListActive(ctx context.Context, workerID, clientID string) ([]model.Assignment, error)
	ListActiveByWorker(ctx context.Context, workerID string) ([]model.Assignment, error)
	ListActiveByClient(ctx context.Context, clientID string) ([]model.Assignment, error)
	Update(ctx context.Context, assignment *model.Assignment) error
	// EndExpired flips assignments whose end date has passed to ended.
	// Returns the number of rows affected.
	EndExpired(ctx context.Context, today time.Time) (int64, error)
}

type assignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepo creates an AssignmentRepository.
func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) Create(ctx context.Context, assignment *model.Assignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *assignmentRepo) GetByID(ctx context.Context, id string) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.db.WithContext(ctx).
		Preload("Worker").
		Preload("Client").
		Preload("Slots").
		Where("assignment_id = ?", id).
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepo) List(ctx context.Context, workerID, clientID, status string, page, pageSize int) ([]model.Assignment, int64, error) {
	var assignments []model.Assignment
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Assignment{})
	if workerID != "" {
		db = db.Where("worker_id = ?", workerID)
	}
	if clientID != "" {
		db = db.Where("client_id = ?", clientID)
	}
	if status != "" {
		db = db.Where("status = ?", status)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Worker").
		Preload("Client").
		Order("start_date DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&assignments).Error
	return assignments, total, err
}

func (r *assignmentRepo) ListActive(ctx context.Context, workerID, clientID string) ([]model.Assignment, error) {
	var assignments []model.Assignment
	db := r.db.WithContext(ctx).Where("is_active = ?", true)
	if workerID != "" {
		db = db.Where("worker_id = ?", workerID)
	}
	if clientID != "" {
		db = db.Where("client_id = ?", clientID)
	}
	err := db.Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepo) ListActiveByWorker(ctx context.Context, workerID string) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Slots").
		Where("worker_id = ? AND is_active = ?", workerID, true).
		Order("start_date ASC").
		Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepo) ListActiveByClient(ctx context.Context, clientID string) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.db.WithContext(ctx).
		Preload("Worker").
		Preload("Client").
		Preload("Slots").
		Where("client_id = ? AND is_active = ?", clientID, true).
		Order("start_date ASC").
		Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepo) Update(ctx context.Context, assignment *model.Assignment) error {
	return r.db.WithContext(ctx).Save(assignment).Error
}

func (r *assignmentRepo) EndExpired(ctx context.Context, today time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Assignment{}).
		Where("is_active = ? AND end_date IS NOT NULL AND end_date < ?", true, today).
		Updates(map[string]interface{}{
			"is_active":  false,
			"status":     model.AssignmentStatusEnded,
			"updated_at": gorm.Expr("NOW()"),
		})
	return result.RowsAffected, result.Error
}
