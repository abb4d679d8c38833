package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Gusi-ui/sadmini-sub001/config"
	"github.com/Gusi-ui/sadmini-sub001/internal/dto"
	"github.com/Gusi-ui/sadmini-sub001/internal/model"
	"github.com/Gusi-ui/sadmini-sub001/internal/repository"
	"github.com/Gusi-ui/sadmini-sub001/internal/schedule"
)

// ScheduleService resolves recurring slot definitions into dated visits.
// Everything is computed from fresh snapshots on each call, so a retroactive
// holiday edit is reflected immediately.
type ScheduleService interface {
	ResolveAssignment(ctx context.Context, assignmentID string, req *dto.ResolveRequest) (*dto.ScheduleResponse, error)
	ResolveWorker(ctx context.Context, workerID string, req *dto.ResolveRequest) (*dto.ScheduleResponse, error)
	ResolveClient(ctx context.Context, clientID string, req *dto.ResolveRequest) (*dto.ScheduleResponse, error)
}

type scheduleService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScheduleService creates a ScheduleService.
func NewScheduleService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) ScheduleService {
	return &scheduleService{cfg: cfg, repo: repo, logger: logger}
}

func (s *scheduleService) ResolveAssignment(ctx context.Context, assignmentID string, req *dto.ResolveRequest) (*dto.ScheduleResponse, error) {
	from, to, err := parseRange(req)
	if err != nil {
		return nil, err
	}

	assignment, err := s.repo.Assignment.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("looking up assignment failed", zap.String("id", assignmentID), zap.Error(err))
		return nil, err
	}

	visits, err := s.resolveAll(ctx, []model.Assignment{*assignment}, from, to)
	if err != nil {
		return nil, err
	}
	return s.toScheduleResponse(ctx, visits, from, to)
}

func (s *scheduleService) ResolveWorker(ctx context.Context, workerID string, req *dto.ResolveRequest) (*dto.ScheduleResponse, error) {
	from, to, err := parseRange(req)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.Worker.GetByID(ctx, workerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}

	assignments, err := s.repo.Assignment.ListActiveByWorker(ctx, workerID)
	if err != nil {
		s.logger.Error("loading worker assignments failed", zap.String("worker_id", workerID), zap.Error(err))
		return nil, err
	}

	visits, err := s.resolveAll(ctx, assignments, from, to)
	if err != nil {
		return nil, err
	}
	return s.toScheduleResponse(ctx, visits, from, to)
}

func (s *scheduleService) ResolveClient(ctx context.Context, clientID string, req *dto.ResolveRequest) (*dto.ScheduleResponse, error) {
	from, to, err := parseRange(req)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.Client.GetByID(ctx, clientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	assignments, err := s.repo.Assignment.ListActiveByClient(ctx, clientID)
	if err != nil {
		s.logger.Error("loading client assignments failed", zap.String("client_id", clientID), zap.Error(err))
		return nil, err
	}

	visits, err := s.resolveAll(ctx, assignments, from, to)
	if err != nil {
		return nil, err
	}
	return s.toScheduleResponse(ctx, visits, from, to)
}

// resolveAll expands every assignment over [from, to] and merges the results
// into one deterministically ordered sequence. Holiday snapshots are loaded
// once per municipality.
func (s *scheduleService) resolveAll(ctx context.Context, assignments []model.Assignment, from, to time.Time) ([]schedule.ResolvedVisit, error) {
	calendars := map[string]*schedule.SnapshotCalendar{}
	merged := []schedule.ResolvedVisit{}

	for i := range assignments {
		a := &assignments[i]

		municipality, err := s.municipalityOf(ctx, a)
		if err != nil {
			return nil, err
		}

		calendar, ok := calendars[municipality]
		if !ok {
			holidays, err := s.repo.Holiday.ListForMunicipality(ctx, municipality)
			if err != nil {
				s.logger.Error("loading holiday snapshot failed", zap.String("municipality", municipality), zap.Error(err))
				return nil, err
			}
			calendar = schedule.NewSnapshotCalendar(holidays)
			calendars[municipality] = calendar
		}

		slots := a.Slots
		if slots == nil {
			slots, err = s.repo.TimeSlot.ListByAssignment(ctx, a.AssignmentID)
			if err != nil {
				s.logger.Error("loading time slots failed", zap.String("assignment_id", a.AssignmentID), zap.Error(err))
				return nil, err
			}
		}

		resolver := schedule.NewResolver(schedule.NewClassifier(calendar), s.cfg.Schedule.MaxRangeDays)
		visits, err := resolver.Resolve(a, schedule.NewSlotSet(slots), municipality, from, to)
		if err != nil {
			return nil, err
		}
		merged = append(merged, visits...)
	}

	sort.Slice(merged, func(i, j int) bool {
		a, b := &merged[i], &merged[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.StartTime != b.StartTime {
			return a.StartTime < b.StartTime
		}
		if a.EndTime != b.EndTime {
			return a.EndTime < b.EndTime
		}
		return a.AssignmentID < b.AssignmentID
	})
	return merged, nil
}

// municipalityOf returns the client's municipality, which decides the
// applicable holiday calendar. Visits happen at the client's home.
func (s *scheduleService) municipalityOf(ctx context.Context, a *model.Assignment) (string, error) {
	if a.Client != nil {
		return a.Client.Municipality, nil
	}
	client, err := s.repo.Client.GetByID(ctx, a.ClientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrClientNotFound
		}
		return "", err
	}
	return client.Municipality, nil
}

func (s *scheduleService) toScheduleResponse(ctx context.Context, visits []schedule.ResolvedVisit, from, to time.Time) (*dto.ScheduleResponse, error) {
	workers := map[string]*dto.WorkerBrief{}
	clients := map[string]*dto.ClientBrief{}

	resp := &dto.ScheduleResponse{
		From:   from.Format("2006-01-02"),
		To:     to.Format("2006-01-02"),
		Visits: make([]dto.ResolvedVisitResponse, 0, len(visits)),
	}
	for i := range visits {
		v := &visits[i]

		worker, ok := workers[v.WorkerID]
		if !ok {
			w, err := s.repo.Worker.GetByID(ctx, v.WorkerID)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			if w != nil {
				worker = &dto.WorkerBrief{ID: w.WorkerID, Name: w.Name}
			}
			workers[v.WorkerID] = worker
		}

		client, ok := clients[v.ClientID]
		if !ok {
			c, err := s.repo.Client.GetByID(ctx, v.ClientID)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			if c != nil {
				client = &dto.ClientBrief{ID: c.ClientID, Name: c.Name, Municipality: c.Municipality}
			}
			clients[v.ClientID] = client
		}

		resp.Visits = append(resp.Visits, dto.ResolvedVisitResponse{
			Date:         v.Date.Format("2006-01-02"),
			AssignmentID: v.AssignmentID,
			Worker:       worker,
			Client:       client,
			StartTime:    v.StartTime,
			EndTime:      v.EndTime,
			DayType:      string(v.DayType),
		})
	}
	return resp, nil
}

func parseRange(req *dto.ResolveRequest) (time.Time, time.Time, error) {
	from, err := schedule.ParseDate(req.From)
	if err != nil {
		return from, from, err
	}
	to, err := schedule.ParseDate(req.To)
	if err != nil {
		return from, to, err
	}
	return from, to, nil
}
