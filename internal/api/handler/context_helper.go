package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gusi-ui/sadmini-sub001/internal/schedule"
	"github.com/Gusi-ui/sadmini-sub001/pkg/response"
)

// MustGetUserID extracts user_id from the gin context. When the JWT
// middleware did not inject it, a 401 is written and ok is false; the
// caller should return immediately.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// MustGetRole extracts role from the gin context.
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// writeScheduleError maps the typed resolution-engine errors onto HTTP
// statuses: invalid input and oversized ranges are 400, pair conflicts 409,
// slot overlaps 422. Returns false when err was not one of them.
func writeScheduleError(c *gin.Context, err error) bool {
	var invalidErr *schedule.InvalidDateError
	if errors.As(err, &invalidErr) {
		response.BadRequest(c, 12001, invalidErr.Error())
		return true
	}
	var rangeErr *schedule.RangeTooLargeError
	if errors.As(err, &rangeErr) {
		response.BadRequest(c, 12002, rangeErr.Error())
		return true
	}
	var conflictErr *schedule.ConflictError
	if errors.As(err, &conflictErr) {
		response.Conflict(c, 12003, conflictErr.Error())
		return true
	}
	var overlapErr *schedule.OverlapError
	if errors.As(err, &overlapErr) {
		response.UnprocessableEntity(c, 12004, overlapErr.Error())
		return true
	}
	return false
}

// setDownloadHeaders prepares a file download response.
func setDownloadHeaders(c *gin.Context, filename, contentType string) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
}
