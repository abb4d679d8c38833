package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Gusi-ui/sadmini-sub001/internal/dto"
	"github.com/Gusi-ui/sadmini-sub001/internal/service"
	"github.com/Gusi-ui/sadmini-sub001/pkg/response"
)

// HolidayHandler serves the holiday calendar endpoints.
type HolidayHandler struct {
	holidaySvc service.HolidayService
}

// NewHolidayHandler creates a HolidayHandler.
func NewHolidayHandler(holidaySvc service.HolidayService) *HolidayHandler {
	return &HolidayHandler{holidaySvc: holidaySvc}
}

// Create
// POST /api/v1/holidays
func (h *HolidayHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}

	result, err := h.holidaySvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		if writeScheduleError(c, err) {
			return
		}
		if errors.Is(err, service.ErrHolidayExists) {
			response.Conflict(c, 14001, "an active holiday already exists on that date")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// GetByID
// GET /api/v1/holidays/:id
func (h *HolidayHandler) GetByID(c *gin.Context) {
	result, err := h.holidaySvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrHolidayNotFound) {
			response.NotFound(c, 14002, "holiday not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// List
// GET /api/v1/holidays?municipality=&year=
func (h *HolidayHandler) List(c *gin.Context) {
	var req dto.HolidayListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}

	result, err := h.holidaySvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Update
// PUT /api/v1/holidays/:id
func (h *HolidayHandler) Update(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}

	result, err := h.holidaySvc.Update(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrHolidayNotFound):
			response.NotFound(c, 14002, "holiday not found")
		case errors.Is(err, service.ErrHolidayExists):
			response.Conflict(c, 14001, "an active holiday already exists on that date")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Deactivate
// DELETE /api/v1/holidays/:id
func (h *HolidayHandler) Deactivate(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.holidaySvc.Deactivate(c.Request.Context(), c.Param("id"), userID); err != nil {
		if errors.Is(err, service.ErrHolidayNotFound) {
			response.NotFound(c, 14002, "holiday not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// Seed
// POST /api/v1/holidays/seed
func (h *HolidayHandler) Seed(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SeedHolidaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}

	result, err := h.holidaySvc.SeedNationalHolidays(c.Request.Context(), req.Year, userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
