package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Gusi-ui/sadmini-sub001/internal/dto"
	"github.com/Gusi-ui/sadmini-sub001/internal/service"
	"github.com/Gusi-ui/sadmini-sub001/pkg/response"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar; charset=utf-8"
)

// ExportHandler serves the schedule download endpoints.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

func (h *ExportHandler) writeError(c *gin.Context, err error) {
	if writeScheduleError(c, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrWorkerNotFound):
		response.NotFound(c, 13001, "worker not found")
	case errors.Is(err, service.ErrExportNoVisits):
		response.NotFound(c, 16001, "no visits in the requested range")
	default:
		response.InternalError(c)
	}
}

// WorkerXLSX
// GET /api/v1/export/schedule/workers/:id.xlsx?from=&to=
func (h *ExportHandler) WorkerXLSX(c *gin.Context) {
	var req dto.ResolveRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "from and to are required")
		return
	}

	buf, filename, err := h.exportSvc.ExportWorkerXLSX(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	setDownloadHeaders(c, filename, contentTypeXLSX)
	c.Writer.Write(buf.Bytes())
}

// WorkerICS
// GET /api/v1/export/schedule/workers/:id.ics?from=&to=
func (h *ExportHandler) WorkerICS(c *gin.Context) {
	var req dto.ResolveRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "from and to are required")
		return
	}

	buf, filename, err := h.exportSvc.ExportWorkerICS(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	setDownloadHeaders(c, filename, contentTypeICS)
	c.Writer.Write(buf.Bytes())
}
