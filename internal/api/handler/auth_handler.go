package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Gusi-ui/sadmini-sub001/internal/dto"
	"github.com/Gusi-ui/sadmini-sub001/internal/service"
	"github.com/Gusi-ui/sadmini-sub001/pkg/response"
)

// AuthHandler serves the authentication endpoints.
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, 11001, "wrong email or password")
		case errors.Is(err, service.ErrUserInactive):
			response.Forbidden(c, 11002, "account is deactivated")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Refresh
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}

	result, err := h.authSvc.Refresh(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) || errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrUserInactive) {
			response.Unauthorized(c, 11003, "refresh token rejected")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Logout
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		response.Unauthorized(c, 10002, "malformed authorization header")
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), parts[1]); err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			response.Unauthorized(c, 11003, "token rejected")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// Me
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.authSvc.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 11004, "user not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// ChangePassword
// PUT /api/v1/auth/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}

	if err := h.authSvc.ChangePassword(c.Request.Context(), userID, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, 11001, "wrong password")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 11004, "user not found")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil)
}
