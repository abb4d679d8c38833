package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Gusi-ui/sadmini-sub001/internal/dto"
	"github.com/Gusi-ui/sadmini-sub001/internal/service"
	"github.com/Gusi-ui/sadmini-sub001/pkg/response"
)

// ClientHandler serves the care recipient endpoints.
type ClientHandler struct {
	clientSvc service.ClientService
}

// NewClientHandler creates a ClientHandler.
func NewClientHandler(clientSvc service.ClientService) *ClientHandler {
	return &ClientHandler{clientSvc: clientSvc}
}

// Create
// POST /api/v1/clients
func (h *ClientHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}

	result, err := h.clientSvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// GetByID
// GET /api/v1/clients/:id
func (h *ClientHandler) GetByID(c *gin.Context) {
	result, err := h.clientSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			response.NotFound(c, 13002, "client not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// List
// GET /api/v1/clients
func (h *ClientHandler) List(c *gin.Context) {
	var req dto.ClientListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}
	req.Normalize()

	list, total, err := h.clientSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, req.Page, req.PageSize)
}

// Update
// PUT /api/v1/clients/:id
func (h *ClientHandler) Update(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}

	result, err := h.clientSvc.Update(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			response.NotFound(c, 13002, "client not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Delete
// DELETE /api/v1/clients/:id
func (h *ClientHandler) Delete(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.clientSvc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			response.NotFound(c, 13002, "client not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
