package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Gusi-ui/sadmini-sub001/internal/dto"
	"github.com/Gusi-ui/sadmini-sub001/internal/model"
	"github.com/Gusi-ui/sadmini-sub001/internal/repository"
)

// ── worker module errors ──

var ErrWorkerNotFound = errors.New("worker not found")

// WorkerService is the care worker business interface.
type WorkerService interface {
	Create(ctx context.Context, req *dto.CreateWorkerRequest, callerID string) (*dto.WorkerResponse, error)
	GetByID(ctx context.Context, id string) (*dto.WorkerResponse, error)
	List(ctx context.Context, req *dto.WorkerListRequest) ([]dto.WorkerResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateWorkerRequest, callerID string) (*dto.WorkerResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type workerService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewWorkerService creates a WorkerService.
func NewWorkerService(repo *repository.Repository, logger *zap.Logger) WorkerService {
	return &workerService{repo: repo, logger: logger}
}

func (s *workerService) Create(ctx context.Context, req *dto.CreateWorkerRequest, callerID string) (*dto.WorkerResponse, error) {
	worker := &model.Worker{
		Name:         req.Name,
		EmployeeCode: req.EmployeeCode,
		Phone:        req.Phone,
		Municipality: req.Municipality,
		IsActive:     true,
	}
	worker.CreatedBy = &callerID
	worker.UpdatedBy = &callerID

	if err := s.repo.Worker.Create(ctx, worker); err != nil {
		s.logger.Error("creating worker failed", zap.Error(err))
		return nil, err
	}

	return toWorkerResponse(worker), nil
}

func (s *workerService) GetByID(ctx context.Context, id string) (*dto.WorkerResponse, error) {
	worker, err := s.repo.Worker.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		s.logger.Error("looking up worker failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toWorkerResponse(worker), nil
}

func (s *workerService) List(ctx context.Context, req *dto.WorkerListRequest) ([]dto.WorkerResponse, int64, error) {
	req.Normalize()

	workers, total, err := s.repo.Worker.List(ctx, req.Municipality, req.Page, req.PageSize)
	if err != nil {
		s.logger.Error("listing workers failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.WorkerResponse, 0, len(workers))
	for i := range workers {
		result = append(result, *toWorkerResponse(&workers[i]))
	}
	return result, total, nil
}

func (s *workerService) Update(ctx context.Context, id string, req *dto.UpdateWorkerRequest, callerID string) (*dto.WorkerResponse, error) {
	worker, err := s.repo.Worker.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		worker.Name = *req.Name
	}
	if req.Phone != nil {
		worker.Phone = *req.Phone
	}
	if req.Municipality != nil {
		worker.Municipality = *req.Municipality
	}
	if req.IsActive != nil {
		worker.IsActive = *req.IsActive
	}
	worker.UpdatedBy = &callerID

	if err := s.repo.Worker.Update(ctx, worker); err != nil {
		s.logger.Error("updating worker failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toWorkerResponse(worker), nil
}

func (s *workerService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.repo.Worker.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorkerNotFound
		}
		return err
	}

	if err := s.repo.Worker.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("deleting worker failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── helpers ──

func toWorkerResponse(worker *model.Worker) *dto.WorkerResponse {
	return &dto.WorkerResponse{
		ID:           worker.WorkerID,
		Name:         worker.Name,
		EmployeeCode: worker.EmployeeCode,
		Phone:        worker.Phone,
		Municipality: worker.Municipality,
		IsActive:     worker.IsActive,
		CreatedAt:    worker.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:    worker.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
