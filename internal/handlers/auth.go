package handlers

import (
	"errors"

	"github.com/antoniuk-oleksandr/blogs-app/internal/config"
	"github.com/antoniuk-oleksandr/blogs-app/internal/middleware"
	"github.com/antoniuk-oleksandr/blogs-app/internal/services"
	"github.com/antoniuk-oleksandr/blogs-app/pkg/logger"
	"github.com/antoniuk-oleksandr/blogs-app/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: services.NewAuthService(db, &cfg.JWT),
	}
}

// AuthService exposes the underlying service for route wiring (middleware
// needs its signer).
func (h *AuthHandler) AuthService() *services.AuthService {
	return h.authService
}

// Register creates a new account and returns a token pair
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	pair, err := h.authService.Register(&req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Created(c, pair)
}

// Login authenticates by username or email and returns a token pair
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	pair, err := h.authService.Login(&req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, pair)
}

// Refresh exchanges a refresh token for a new access token
// POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req services.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	accessToken, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, services.AccessTokenResponse{AccessToken: accessToken})
}

// Logout revokes a refresh token
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req services.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if _, err := h.authService.Logout(req.RefreshToken); err != nil {
		h.writeError(c, err)
		return
	}

	response.NoContent(c)
}

// Me returns the identity claims of the presented access token
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	response.Success(c, gin.H{
		"id":                  middleware.GetUserID(c),
		"username":            middleware.GetUsername(c),
		"email":               middleware.GetEmail(c),
		"profile_picture_url": c.GetString(middleware.ContextPictureURL),
	})
}

// writeError maps domain errors onto the response taxonomy. Token rejections
// stay deliberately vague; registration conflicts are specific. Storage
// failures are logged and reported as a generic server error.
func (h *AuthHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		response.Unauthorized(c, "unauthorized")
	case errors.Is(err, services.ErrInvalidCredentials):
		response.Unauthorized(c, "invalid username or password")
	case errors.Is(err, services.ErrTokenAlreadyRevoked):
		response.Conflict(c, "token already revoked")
	case errors.Is(err, services.ErrUsernameTaken):
		response.Conflict(c, "username already taken")
	case errors.Is(err, services.ErrEmailTaken):
		response.Conflict(c, "email already taken")
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("auth request failed")
		response.ServerError(c, "internal server error")
	}
}
