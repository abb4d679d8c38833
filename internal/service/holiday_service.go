package service

import (
	"context"
	"errors"

	"github.com/rickar/cal/v2/es"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Gusi-ui/sadmini-sub001/internal/dto"
	"github.com/Gusi-ui/sadmini-sub001/internal/model"
	"github.com/Gusi-ui/sadmini-sub001/internal/repository"
	"github.com/Gusi-ui/sadmini-sub001/internal/schedule"
)

// ── holiday module errors ──

var (
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrHolidayExists   = errors.New("an active holiday already exists on that date for that municipality")
)

// HolidayService is the holiday calendar business interface.
// Holidays are soft-deactivated, never deleted, so past schedules stay
// recomputable.
type HolidayService interface {
	Create(ctx context.Context, req *dto.CreateHolidayRequest, callerID string) (*dto.HolidayResponse, error)
	GetByID(ctx context.Context, id string) (*dto.HolidayResponse, error)
	List(ctx context.Context, req *dto.HolidayListRequest) ([]dto.HolidayResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateHolidayRequest, callerID string) (*dto.HolidayResponse, error)
	Deactivate(ctx context.Context, id string, callerID string) error
	// SeedNationalHolidays inserts the Spanish national holidays of one
	// year, skipping dates that already carry an active record.
	SeedNationalHolidays(ctx context.Context, year int, callerID string) (*dto.SeedHolidaysResponse, error)
}

type holidayService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewHolidayService creates a HolidayService.
func NewHolidayService(repo *repository.Repository, logger *zap.Logger) HolidayService {
	return &holidayService{repo: repo, logger: logger}
}

func (s *holidayService) Create(ctx context.Context, req *dto.CreateHolidayRequest, callerID string) (*dto.HolidayResponse, error) {
	day, err := schedule.ParseDate(req.Day)
	if err != nil {
		return nil, err
	}

	// one active holiday per (date, municipality)
	if _, err := s.repo.Holiday.ActiveOn(ctx, day, req.Municipality); err == nil {
		return nil, ErrHolidayExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("checking holiday uniqueness failed", zap.Error(err))
		return nil, err
	}

	holiday := &model.Holiday{
		Day:          day,
		Name:         req.Name,
		Type:         req.Type,
		Municipality: req.Municipality,
		IsActive:     true,
	}
	holiday.CreatedBy = &callerID
	holiday.UpdatedBy = &callerID

	if err := s.repo.Holiday.Create(ctx, holiday); err != nil {
		s.logger.Error("creating holiday failed", zap.Error(err))
		return nil, err
	}
	return toHolidayResponse(holiday), nil
}

func (s *holidayService) GetByID(ctx context.Context, id string) (*dto.HolidayResponse, error) {
	holiday, err := s.repo.Holiday.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHolidayNotFound
		}
		s.logger.Error("looking up holiday failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toHolidayResponse(holiday), nil
}

func (s *holidayService) List(ctx context.Context, req *dto.HolidayListRequest) ([]dto.HolidayResponse, error) {
	holidays, err := s.repo.Holiday.List(ctx, req.Municipality, req.Year)
	if err != nil {
		s.logger.Error("listing holidays failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.HolidayResponse, 0, len(holidays))
	for i := range holidays {
		result = append(result, *toHolidayResponse(&holidays[i]))
	}
	return result, nil
}

func (s *holidayService) Update(ctx context.Context, id string, req *dto.UpdateHolidayRequest, callerID string) (*dto.HolidayResponse, error) {
	holiday, err := s.repo.Holiday.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHolidayNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		holiday.Name = *req.Name
	}
	if req.Type != nil {
		holiday.Type = *req.Type
	}
	if req.IsActive != nil {
		// reactivation must not break the one-per-date invariant
		if *req.IsActive && !holiday.IsActive {
			if existing, err := s.repo.Holiday.ActiveOn(ctx, holiday.Day, holiday.Municipality); err == nil && existing.HolidayID != holiday.HolidayID {
				return nil, ErrHolidayExists
			} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}
		holiday.IsActive = *req.IsActive
	}
	holiday.UpdatedBy = &callerID

	if err := s.repo.Holiday.Update(ctx, holiday); err != nil {
		s.logger.Error("updating holiday failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toHolidayResponse(holiday), nil
}

func (s *holidayService) Deactivate(ctx context.Context, id string, callerID string) error {
	if _, err := s.repo.Holiday.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHolidayNotFound
		}
		return err
	}

	if err := s.repo.Holiday.Deactivate(ctx, id, callerID); err != nil {
		s.logger.Error("deactivating holiday failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *holidayService) SeedNationalHolidays(ctx context.Context, year int, callerID string) (*dto.SeedHolidaysResponse, error) {
	resp := &dto.SeedHolidaysResponse{Year: year, Holidays: []dto.HolidayResponse{}}

	for _, h := range es.Holidays {
		actual, _ := h.Calc(year)
		if actual.IsZero() {
			continue
		}
		day := schedule.DateOnly(actual)

		if _, err := s.repo.Holiday.ActiveOn(ctx, day, ""); err == nil {
			resp.Skipped++
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("checking seeded holiday failed", zap.Error(err))
			return nil, err
		}

		holiday := &model.Holiday{
			Day:          day,
			Name:         h.Name,
			Type:         model.HolidayTypeNational,
			Municipality: "",
			IsActive:     true,
		}
		holiday.CreatedBy = &callerID
		holiday.UpdatedBy = &callerID

		if err := s.repo.Holiday.Create(ctx, holiday); err != nil {
			s.logger.Error("seeding holiday failed", zap.String("name", h.Name), zap.Error(err))
			return nil, err
		}
		resp.Inserted++
		resp.Holidays = append(resp.Holidays, *toHolidayResponse(holiday))
	}

	s.logger.Info("national holidays seeded",
		zap.Int("year", year),
		zap.Int("inserted", resp.Inserted),
		zap.Int("skipped", resp.Skipped),
	)
	return resp, nil
}

// ── helpers ──

func toHolidayResponse(holiday *model.Holiday) *dto.HolidayResponse {
	return &dto.HolidayResponse{
		ID:           holiday.HolidayID,
		Day:          holiday.Day.Format("2006-01-02"),
		Name:         holiday.Name,
		Type:         holiday.Type,
		Municipality: holiday.Municipality,
		IsActive:     holiday.IsActive,
		CreatedAt:    holiday.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:    holiday.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
