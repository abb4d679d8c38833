package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Gusi-ui/sadmini-sub001/internal/dto"
	"github.com/Gusi-ui/sadmini-sub001/internal/service"
	"github.com/Gusi-ui/sadmini-sub001/pkg/response"
)

// AssignmentHandler serves the assignment and time slot endpoints.
type AssignmentHandler struct {
	assignmentSvc service.AssignmentService
}

// NewAssignmentHandler creates an AssignmentHandler.
func NewAssignmentHandler(assignmentSvc service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentSvc: assignmentSvc}
}

func (h *AssignmentHandler) writeError(c *gin.Context, err error) {
	if writeScheduleError(c, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrAssignmentNotFound):
		response.NotFound(c, 15001, "assignment not found")
	case errors.Is(err, service.ErrTimeSlotNotFound):
		response.NotFound(c, 15002, "time slot not found")
	case errors.Is(err, service.ErrAssignmentEnded):
		response.Conflict(c, 15003, "assignment has ended")
	case errors.Is(err, service.ErrWorkerNotFound):
		response.NotFound(c, 13001, "worker not found")
	case errors.Is(err, service.ErrClientNotFound):
		response.NotFound(c, 13002, "client not found")
	default:
		response.InternalError(c)
	}
}

// Create
// POST /api/v1/assignments
func (h *AssignmentHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}

	result, err := h.assignmentSvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Created(c, result)
}

// GetByID
// GET /api/v1/assignments/:id
func (h *AssignmentHandler) GetByID(c *gin.Context) {
	result, err := h.assignmentSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, result)
}

// List
// GET /api/v1/assignments?worker_id=&client_id=&status=
func (h *AssignmentHandler) List(c *gin.Context) {
	var req dto.AssignmentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}
	req.Normalize()

	list, total, err := h.assignmentSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, req.Page, req.PageSize)
}

// Update
// PUT /api/v1/assignments/:id
func (h *AssignmentHandler) Update(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}

	result, err := h.assignmentSvc.Update(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, result)
}

// Activate
// PUT /api/v1/assignments/:id/activate
func (h *AssignmentHandler) Activate(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.assignmentSvc.Activate(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, result)
}

// End
// PUT /api/v1/assignments/:id/end
func (h *AssignmentHandler) End(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.EndAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}

	result, err := h.assignmentSvc.End(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, result)
}

// ── time slots ──

// AddTimeSlot
// POST /api/v1/assignments/:id/time-slots
func (h *AssignmentHandler) AddTimeSlot(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}

	result, err := h.assignmentSvc.AddTimeSlot(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Created(c, result)
}

// ListTimeSlots
// GET /api/v1/assignments/:id/time-slots
func (h *AssignmentHandler) ListTimeSlots(c *gin.Context) {
	result, err := h.assignmentSvc.ListTimeSlots(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, result)
}

// UpdateTimeSlot
// PUT /api/v1/assignments/:id/time-slots/:slotId
func (h *AssignmentHandler) UpdateTimeSlot(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}

	result, err := h.assignmentSvc.UpdateTimeSlot(c.Request.Context(), c.Param("id"), c.Param("slotId"), &req, userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, result)
}

// DeactivateTimeSlot
// DELETE /api/v1/assignments/:id/time-slots/:slotId
func (h *AssignmentHandler) DeactivateTimeSlot(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.assignmentSvc.DeactivateTimeSlot(c.Request.Context(), c.Param("id"), c.Param("slotId"), userID); err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, nil)
}
