package service

import (
	"go.uber.org/zap"

	"github.com/Gusi-ui/sadmini-sub001/config"
	"github.com/Gusi-ui/sadmini-sub001/internal/repository"
	"github.com/Gusi-ui/sadmini-sub001/pkg/jwt"
	"github.com/Gusi-ui/sadmini-sub001/pkg/redis"
)

// Service aggregates every business service.
type Service struct {
	Auth       AuthService
	Worker     WorkerService
	Client     ClientService
	Holiday    HolidayService
	Assignment AssignmentService
	Schedule   ScheduleService
	Export     ExportService
}

// NewService wires the business services.
// rdb may be nil; token revocation then degrades gracefully.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	scheduleSvc := NewScheduleService(cfg, repo, logger)
	return &Service{
		Auth:       NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Worker:     NewWorkerService(repo, logger),
		Client:     NewClientService(repo, logger),
		Holiday:    NewHolidayService(repo, logger),
		Assignment: NewAssignmentService(repo, logger),
		Schedule:   scheduleSvc,
		Export:     NewExportService(repo, scheduleSvc, logger),
	}
}
