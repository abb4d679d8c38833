package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Gusi-ui/sadmini-sub001/internal/dto"
	"github.com/Gusi-ui/sadmini-sub001/internal/model"
	"github.com/Gusi-ui/sadmini-sub001/internal/repository"
	"github.com/Gusi-ui/sadmini-sub001/internal/schedule"
)

// ── assignment module errors ──

var (
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrAssignmentEnded    = errors.New("ended assignments cannot be reactivated")
	ErrTimeSlotNotFound   = errors.New("time slot not found")
)

// AssignmentService is the worker/client assignment business interface.
// Assignments start as drafts; activation runs the conflict validator, so
// an invalid proposal is refused before anything is written.
type AssignmentService interface {
	Create(ctx context.Context, req *dto.CreateAssignmentRequest, callerID string) (*dto.AssignmentResponse, error)
	GetByID(ctx context.Context, id string) (*dto.AssignmentResponse, error)
	List(ctx context.Context, req *dto.AssignmentListRequest) ([]dto.AssignmentResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateAssignmentRequest, callerID string) (*dto.AssignmentResponse, error)
	Activate(ctx context.Context, id string, callerID string) (*dto.AssignmentResponse, error)
	End(ctx context.Context, id string, req *dto.EndAssignmentRequest, callerID string) (*dto.AssignmentResponse, error)

	AddTimeSlot(ctx context.Context, assignmentID string, req *dto.CreateTimeSlotRequest, callerID string) (*dto.TimeSlotResponse, error)
	ListTimeSlots(ctx context.Context, assignmentID string) ([]dto.TimeSlotResponse, error)
	UpdateTimeSlot(ctx context.Context, assignmentID, slotID string, req *dto.UpdateTimeSlotRequest, callerID string) (*dto.TimeSlotResponse, error)
	DeactivateTimeSlot(ctx context.Context, assignmentID, slotID string, callerID string) error
}

type assignmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAssignmentService creates an AssignmentService.
func NewAssignmentService(repo *repository.Repository, logger *zap.Logger) AssignmentService {
	return &assignmentService{repo: repo, logger: logger}
}

func (s *assignmentService) Create(ctx context.Context, req *dto.CreateAssignmentRequest, callerID string) (*dto.AssignmentResponse, error) {
	startDate, err := schedule.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	var endDate *time.Time
	if req.EndDate != "" {
		parsed, err := schedule.ParseDate(req.EndDate)
		if err != nil {
			return nil, err
		}
		endDate = &parsed
	}

	if _, err := s.repo.Worker.GetByID(ctx, req.WorkerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Client.GetByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	assignment := &model.Assignment{
		WorkerID:  req.WorkerID,
		ClientID:  req.ClientID,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    model.AssignmentStatusDraft,
		IsActive:  false,
	}
	assignment.CreatedBy = &callerID
	assignment.UpdatedBy = &callerID

	// drafts still get the date sanity check; conflicts wait for activation
	if err := schedule.ValidateAssignment(assignment, nil); err != nil {
		return nil, err
	}

	if err := s.repo.Assignment.Create(ctx, assignment); err != nil {
		s.logger.Error("creating assignment failed", zap.Error(err))
		return nil, err
	}
	return toAssignmentResponse(assignment), nil
}

func (s *assignmentService) GetByID(ctx context.Context, id string) (*dto.AssignmentResponse, error) {
	assignment, err := s.repo.Assignment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("looking up assignment failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toAssignmentResponse(assignment), nil
}

func (s *assignmentService) List(ctx context.Context, req *dto.AssignmentListRequest) ([]dto.AssignmentResponse, int64, error) {
	req.Normalize()

	assignments, total, err := s.repo.Assignment.List(ctx, req.WorkerID, req.ClientID, req.Status, req.Page, req.PageSize)
	if err != nil {
		s.logger.Error("listing assignments failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		result = append(result, *toAssignmentResponse(&assignments[i]))
	}
	return result, total, nil
}

func (s *assignmentService) Update(ctx context.Context, id string, req *dto.UpdateAssignmentRequest, callerID string) (*dto.AssignmentResponse, error) {
	assignment, err := s.repo.Assignment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	if assignment.Status == model.AssignmentStatusEnded {
		return nil, ErrAssignmentEnded
	}

	if req.StartDate != nil {
		startDate, err := schedule.ParseDate(*req.StartDate)
		if err != nil {
			return nil, err
		}
		assignment.StartDate = startDate
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			assignment.EndDate = nil
		} else {
			endDate, err := schedule.ParseDate(*req.EndDate)
			if err != nil {
				return nil, err
			}
			assignment.EndDate = &endDate
		}
	}

	if err := schedule.ValidateAssignment(assignment, nil); err != nil {
		return nil, err
	}
	assignment.UpdatedBy = &callerID

	if err := s.repo.Assignment.Update(ctx, assignment); err != nil {
		s.logger.Error("updating assignment failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toAssignmentResponse(assignment), nil
}

// Activate promotes a draft to active after validating it against the
// current active set. Nothing is written when the validator rejects.
func (s *assignmentService) Activate(ctx context.Context, id string, callerID string) (*dto.AssignmentResponse, error) {
	assignment, err := s.repo.Assignment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	if assignment.Status == model.AssignmentStatusEnded {
		return nil, ErrAssignmentEnded
	}
	if assignment.Status == model.AssignmentStatusActive {
		return toAssignmentResponse(assignment), nil
	}

	existing, err := s.repo.Assignment.ListActive(ctx, assignment.WorkerID, assignment.ClientID)
	if err != nil {
		s.logger.Error("loading active assignments failed", zap.Error(err))
		return nil, err
	}
	if err := schedule.ValidateAssignment(assignment, existing); err != nil {
		return nil, err
	}

	assignment.Status = model.AssignmentStatusActive
	assignment.IsActive = true
	assignment.UpdatedBy = &callerID

	if err := s.repo.Assignment.Update(ctx, assignment); err != nil {
		s.logger.Error("activating assignment failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("assignment activated",
		zap.String("assignment_id", assignment.AssignmentID),
		zap.String("worker_id", assignment.WorkerID),
		zap.String("client_id", assignment.ClientID),
	)
	return toAssignmentResponse(assignment), nil
}

func (s *assignmentService) End(ctx context.Context, id string, req *dto.EndAssignmentRequest, callerID string) (*dto.AssignmentResponse, error) {
	assignment, err := s.repo.Assignment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	if assignment.Status == model.AssignmentStatusEnded {
		return toAssignmentResponse(assignment), nil
	}

	endDate := schedule.DateOnly(time.Now())
	if req.EndDate != "" {
		endDate, err = schedule.ParseDate(req.EndDate)
		if err != nil {
			return nil, err
		}
	}
	if schedule.DateOnly(assignment.StartDate).After(endDate) {
		endDate = schedule.DateOnly(assignment.StartDate)
	}

	assignment.EndDate = &endDate
	assignment.Status = model.AssignmentStatusEnded
	assignment.IsActive = false
	assignment.UpdatedBy = &callerID

	if err := s.repo.Assignment.Update(ctx, assignment); err != nil {
		s.logger.Error("ending assignment failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("assignment ended",
		zap.String("assignment_id", assignment.AssignmentID),
		zap.String("end_date", endDate.Format("2006-01-02")),
	)
	return toAssignmentResponse(assignment), nil
}

// ── time slots ──

func (s *assignmentService) AddTimeSlot(ctx context.Context, assignmentID string, req *dto.CreateTimeSlotRequest, callerID string) (*dto.TimeSlotResponse, error) {
	assignment, err := s.repo.Assignment.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	if assignment.Status == model.AssignmentStatusEnded {
		return nil, ErrAssignmentEnded
	}

	slot := &model.TimeSlot{
		AssignmentID: assignmentID,
		Weekday:      req.Weekday,
		DayType:      req.DayType,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		IsActive:     true,
	}
	slot.CreatedBy = &callerID
	slot.UpdatedBy = &callerID

	existing, err := s.repo.TimeSlot.ListByAssignment(ctx, assignmentID)
	if err != nil {
		s.logger.Error("loading time slots failed", zap.Error(err))
		return nil, err
	}
	if err := schedule.ValidateTimeSlot(slot, existing); err != nil {
		return nil, err
	}

	if err := s.repo.TimeSlot.Create(ctx, slot); err != nil {
		s.logger.Error("creating time slot failed", zap.Error(err))
		return nil, err
	}
	return toTimeSlotResponse(slot), nil
}

func (s *assignmentService) ListTimeSlots(ctx context.Context, assignmentID string) ([]dto.TimeSlotResponse, error) {
	if _, err := s.repo.Assignment.GetByID(ctx, assignmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}

	slots, err := s.repo.TimeSlot.ListByAssignment(ctx, assignmentID)
	if err != nil {
		s.logger.Error("listing time slots failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.TimeSlotResponse, 0, len(slots))
	for i := range slots {
		result = append(result, *toTimeSlotResponse(&slots[i]))
	}
	return result, nil
}

func (s *assignmentService) UpdateTimeSlot(ctx context.Context, assignmentID, slotID string, req *dto.UpdateTimeSlotRequest, callerID string) (*dto.TimeSlotResponse, error) {
	slot, err := s.repo.TimeSlot.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimeSlotNotFound
		}
		return nil, err
	}
	if slot.AssignmentID != assignmentID {
		return nil, ErrTimeSlotNotFound
	}

	if req.Weekday != nil {
		slot.Weekday = *req.Weekday
	}
	if req.DayType != nil {
		slot.DayType = *req.DayType
	}
	if req.StartTime != nil {
		slot.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		slot.EndTime = *req.EndTime
	}
	if req.IsActive != nil {
		slot.IsActive = *req.IsActive
	}
	slot.UpdatedBy = &callerID

	existing, err := s.repo.TimeSlot.ListByAssignment(ctx, assignmentID)
	if err != nil {
		s.logger.Error("loading time slots failed", zap.Error(err))
		return nil, err
	}
	if err := schedule.ValidateTimeSlot(slot, existing); err != nil {
		return nil, err
	}

	if err := s.repo.TimeSlot.Update(ctx, slot); err != nil {
		s.logger.Error("updating time slot failed", zap.String("id", slotID), zap.Error(err))
		return nil, err
	}
	return toTimeSlotResponse(slot), nil
}

func (s *assignmentService) DeactivateTimeSlot(ctx context.Context, assignmentID, slotID string, callerID string) error {
	slot, err := s.repo.TimeSlot.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTimeSlotNotFound
		}
		return err
	}
	if slot.AssignmentID != assignmentID {
		return ErrTimeSlotNotFound
	}

	if err := s.repo.TimeSlot.Deactivate(ctx, slotID, callerID); err != nil {
		s.logger.Error("deactivating time slot failed", zap.String("id", slotID), zap.Error(err))
		return err
	}
	return nil
}

// ── helpers ──

func toAssignmentResponse(assignment *model.Assignment) *dto.AssignmentResponse {
	resp := &dto.AssignmentResponse{
		ID:        assignment.AssignmentID,
		WorkerID:  assignment.WorkerID,
		ClientID:  assignment.ClientID,
		StartDate: assignment.StartDate.Format("2006-01-02"),
		Status:    assignment.Status,
		IsActive:  assignment.IsActive,
		CreatedAt: assignment.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt: assignment.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if assignment.EndDate != nil {
		resp.EndDate = assignment.EndDate.Format("2006-01-02")
	}
	if assignment.Worker != nil {
		resp.Worker = &dto.WorkerBrief{ID: assignment.Worker.WorkerID, Name: assignment.Worker.Name}
	}
	if assignment.Client != nil {
		resp.Client = &dto.ClientBrief{
			ID:           assignment.Client.ClientID,
			Name:         assignment.Client.Name,
			Municipality: assignment.Client.Municipality,
		}
	}
	for i := range assignment.Slots {
		resp.Slots = append(resp.Slots, *toTimeSlotResponse(&assignment.Slots[i]))
	}
	return resp
}

func toTimeSlotResponse(slot *model.TimeSlot) *dto.TimeSlotResponse {
	return &dto.TimeSlotResponse{
		ID:           slot.TimeSlotID,
		AssignmentID: slot.AssignmentID,
		Weekday:      slot.Weekday,
		DayType:      slot.DayType,
		StartTime:    slot.StartTime,
		EndTime:      slot.EndTime,
		IsActive:     slot.IsActive,
	}
}
