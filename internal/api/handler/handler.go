package handler

import "github.com/Gusi-ui/sadmini-sub001/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth       *AuthHandler
	Worker     *WorkerHandler
	Client     *ClientHandler
	Holiday    *HolidayHandler
	Assignment *AssignmentHandler
	Schedule   *ScheduleHandler
	Export     *ExportHandler
}

// NewHandler wires the handlers over the service layer.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Worker:     NewWorkerHandler(svc.Worker),
		Client:     NewClientHandler(svc.Client),
		Holiday:    NewHolidayHandler(svc.Holiday),
		Assignment: NewAssignmentHandler(svc.Assignment),
		Schedule:   NewScheduleHandler(svc.Schedule),
		Export:     NewExportHandler(svc.Export),
	}
}
