package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Gusi-ui/sadmini-sub001/internal/dto"
	"github.com/Gusi-ui/sadmini-sub001/internal/service"
	"github.com/Gusi-ui/sadmini-sub001/pkg/response"
)

// WorkerHandler serves the care worker endpoints.
type WorkerHandler struct {
	workerSvc service.WorkerService
}

// NewWorkerHandler creates a WorkerHandler.
func NewWorkerHandler(workerSvc service.WorkerService) *WorkerHandler {
	return &WorkerHandler{workerSvc: workerSvc}
}

// Create
// POST /api/v1/workers
func (h *WorkerHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}

	result, err := h.workerSvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// GetByID
// GET /api/v1/workers/:id
func (h *WorkerHandler) GetByID(c *gin.Context) {
	result, err := h.workerSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrWorkerNotFound) {
			response.NotFound(c, 13001, "worker not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// List
// GET /api/v1/workers
func (h *WorkerHandler) List(c *gin.Context) {
	var req dto.WorkerListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}
	req.Normalize()

	list, total, err := h.workerSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, req.Page, req.PageSize)
}

// Update
// PUT /api/v1/workers/:id
func (h *WorkerHandler) Update(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}

	result, err := h.workerSvc.Update(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		if errors.Is(err, service.ErrWorkerNotFound) {
			response.NotFound(c, 13001, "worker not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Delete
// DELETE /api/v1/workers/:id
func (h *WorkerHandler) Delete(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.workerSvc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		if errors.Is(err, service.ErrWorkerNotFound) {
			response.NotFound(c, 13001, "worker not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
