package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Gusi-ui/sadmini-sub001/internal/repository"
	"github.com/Gusi-ui/sadmini-sub001/internal/schedule"
)

// Scheduler runs the recurring maintenance jobs.
type Scheduler struct {
	cron   *cron.Cron
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScheduler creates the job scheduler. Jobs are registered but not
// running until Start.
func NewScheduler(repo *repository.Repository, logger *zap.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:   cron.New(),
		repo:   repo,
		logger: logger,
	}

	// shortly after midnight, close out assignments whose end date passed
	if _, err := s.cron.AddFunc("5 0 * * *", s.endExpiredAssignments); err != nil {
		return nil, err
	}
	return s, nil
}

// Start launches the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("cron scheduler started")
}

// Stop halts the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("cron scheduler stopped")
}

func (s *Scheduler) endExpiredAssignments() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	today := schedule.DateOnly(time.Now())
	n, err := s.repo.Assignment.EndExpired(ctx, today)
	if err != nil {
		s.logger.Error("ending expired assignments failed", zap.Error(err))
		return
	}
	if n > 0 {
		s.logger.Info("expired assignments ended", zap.Int64("count", n))
	}
}
