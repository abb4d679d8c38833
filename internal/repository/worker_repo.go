package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Gusi-ui/sadmini-sub001/internal/model"
)

// WorkerRepository is the care worker data access interface.
type WorkerRepository interface {
	Create(ctx context.Context, worker *model.Worker) error
	GetByID(ctx context.Context, id string) (*model.Worker, error)
	List(ctx context.Context, municipality string, page, pageSize int) ([]model.Worker, int64, error)
	Update(ctx context.Context, worker *model.Worker) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type workerRepo struct {
	db *gorm.DB
}

// NewWorkerRepo creates a WorkerRepository.
func NewWorkerRepo(db *gorm.DB) WorkerRepository {
	return &workerRepo{db: db}
}

func (r *workerRepo) Create(ctx context.Context, worker *model.Worker) error {
	return r.db.WithContext(ctx).Create(worker).Error
}

func (r *workerRepo) GetByID(ctx context.Context, id string) (*model.Worker, error) {
	var worker model.Worker
	err := r.db.WithContext(ctx).Where("worker_id = ?", id).First(&worker).Error
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

func (r *workerRepo) List(ctx context.Context, municipality string, page, pageSize int) ([]model.Worker, int64, error) {
	var workers []model.Worker
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Worker{})
	if municipality != "" {
		db = db.Where("municipality = ?", municipality)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&workers).Error
	return workers, total, err
}

func (r *workerRepo) Update(ctx context.Context, worker *model.Worker) error {
	return r.db.WithContext(ctx).Save(worker).Error
}

func (r *workerRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Worker{}).
		Where("worker_id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  false,
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
