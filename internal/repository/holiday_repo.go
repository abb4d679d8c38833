package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Gusi-ui/sadmini-sub001/internal/model"
)

// HolidayRepository is the holiday calendar data access interface.
// Holidays are deactivated, never deleted.
type HolidayRepository interface {
	Create(ctx context.Context, holiday *model.Holiday) error
	GetByID(ctx context.Context, id string) (*model.Holiday, error)
	List(ctx context.Context, municipality string, year int) ([]model.Holiday, error)
	// ListForMunicipality returns the active holidays that apply to one
	// municipality: its own rows plus the rows that apply everywhere.
	ListForMunicipality(ctx context.Context, municipality string) ([]model.Holiday, error)
	// ActiveOn returns the active holiday on a date scoped exactly to the
	// given municipality, or gorm.ErrRecordNotFound.
	ActiveOn(ctx context.Context, day time.Time, municipality string) (*model.Holiday, error)
	Update(ctx context.Context, holiday *model.Holiday) error
	Deactivate(ctx context.Context, id string, updatedBy string) error
}

type holidayRepo struct {
	db *gorm.DB
}

// NewHolidayRepo creates a HolidayRepository.
func NewHolidayRepo(db *gorm.DB) HolidayRepository {
	return &holidayRepo{db: db}
}

func (r *holidayRepo) Create(ctx context.Context, holiday *model.Holiday) error {
	return r.db.WithContext(ctx).Create(holiday).Error
}

func (r *holidayRepo) GetByID(ctx context.Context, id string) (*model.Holiday, error) {
	var holiday model.Holiday
	err := r.db.WithContext(ctx).Where("holiday_id = ?", id).First(&holiday).Error
	if err != nil {
		return nil, err
	}
	return &holiday, nil
}

func (r *holidayRepo) List(ctx context.Context, municipality string, year int) ([]model.Holiday, error) {
	var holidays []model.Holiday
	db := r.db.WithContext(ctx)

	if municipality != "" {
		db = db.Where("(municipality = ? OR municipality = '')", municipality)
	}
	if year > 0 {
		from := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)
		db = db.Where("day BETWEEN ? AND ?", from, to)
	}

	err := db.Order("day ASC").Find(&holidays).Error
	return holidays, err
}

func (r *holidayRepo) ListForMunicipality(ctx context.Context, municipality string) ([]model.Holiday, error) {
	var holidays []model.Holiday
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("(municipality = ? OR municipality = '')", municipality).
		Order("day ASC").
		Find(&holidays).Error
	return holidays, err
}

func (r *holidayRepo) ActiveOn(ctx context.Context, day time.Time, municipality string) (*model.Holiday, error) {
	var holiday model.Holiday
	err := r.db.WithContext(ctx).
		Where("day = ? AND municipality = ? AND is_active = ?", day, municipality, true).
		First(&holiday).Error
	if err != nil {
		return nil, err
	}
	return &holiday, nil
}

func (r *holidayRepo) Update(ctx context.Context, holiday *model.Holiday) error {
	return r.db.WithContext(ctx).Save(holiday).Error
}

func (r *holidayRepo) Deactivate(ctx context.Context, id string, updatedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Holiday{}).
		Where("holiday_id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_by": updatedBy,
			"updated_at": gorm.Expr("NOW()"),
		}).Error
}
