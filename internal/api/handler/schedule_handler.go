package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Gusi-ui/sadmini-sub001/internal/dto"
	"github.com/Gusi-ui/sadmini-sub001/internal/service"
	"github.com/Gusi-ui/sadmini-sub001/pkg/response"
)

// ScheduleHandler serves the resolved schedule read endpoints.
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler creates a ScheduleHandler.
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

func (h *ScheduleHandler) writeError(c *gin.Context, err error) {
	if writeScheduleError(c, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrAssignmentNotFound):
		response.NotFound(c, 15001, "assignment not found")
	case errors.Is(err, service.ErrWorkerNotFound):
		response.NotFound(c, 13001, "worker not found")
	case errors.Is(err, service.ErrClientNotFound):
		response.NotFound(c, 13002, "client not found")
	default:
		response.InternalError(c)
	}
}

// ResolveAssignment
// GET /api/v1/schedule/assignments/:id?from=&to=
func (h *ScheduleHandler) ResolveAssignment(c *gin.Context) {
	var req dto.ResolveRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "from and to are required")
		return
	}

	result, err := h.scheduleSvc.ResolveAssignment(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, result)
}

// ResolveWorker
// GET /api/v1/schedule/workers/:id?from=&to=
func (h *ScheduleHandler) ResolveWorker(c *gin.Context) {
	var req dto.ResolveRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "from and to are required")
		return
	}

	result, err := h.scheduleSvc.ResolveWorker(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, result)
}

// ResolveClient
// GET /api/v1/schedule/clients/:id?from=&to=
func (h *ScheduleHandler) ResolveClient(c *gin.Context) {
	var req dto.ResolveRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "from and to are required")
		return
	}

	result, err := h.scheduleSvc.ResolveClient(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, result)
}
