package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Gusi-ui/sadmini-sub001/internal/model"
)

// ClientRepository is the care recipient data access interface.
type ClientRepository interface {
	Create(ctx context.Context, client *model.Client) error
	GetByID(ctx context.Context, id string) (*model.Client, error)
	List(ctx context.Context, municipality string, page, pageSize int) ([]model.Client, int64, error)
	Update(ctx context.Context, client *model.Client) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type clientRepo struct {
	db *gorm.DB
}

// NewClientRepo creates a ClientRepository.
func NewClientRepo(db *gorm.DB) ClientRepository {
	return &clientRepo{db: db}
}

func (r *clientRepo) Create(ctx context.Context, client *model.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *clientRepo) GetByID(ctx context.Context, id string) (*model.Client, error) {
	var client model.Client
	err := r.db.WithContext(ctx).Where("client_id = ?", id).First(&client).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepo) List(ctx context.Context, municipality string, page, pageSize int) ([]model.Client, int64, error) {
	var clients []model.Client
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Client{})
	if municipality != "" {
		db = db.Where("municipality = ?", municipality)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&clients).Error
	return clients, total, err
}

func (r *clientRepo) Update(ctx context.Context, client *model.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

func (r *clientRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Client{}).
		Where("client_id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  false,
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
