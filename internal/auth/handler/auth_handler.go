package handler

import (
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/auth/service"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"github.com/gin-gonic/gin"
)

// AuthHandler login and token endpoints
type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login credential login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid login payload: "+err.Error())
		return
	}

	user, pair, err := h.svc.Login(c.Request.Context(), &req)
	if err != nil {
		httputil.Fail(c, err, "login")
		return
	}

	httputil.Success(c, gin.H{
		"user":   user,
		"tokens": pair,
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Refresh exchanges a refresh token for a new pair
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid refresh payload: "+err.Error())
		return
	}

	pair, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		httputil.Fail(c, err, "refresh token")
		return
	}

	httputil.Success(c, pair)
}

// Logout revokes a refresh token
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid logout payload: "+err.Error())
		return
	}

	if err := h.svc.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		httputil.Fail(c, err, "logout")
		return
	}

	httputil.Success(c, gin.H{"message": "logged out"})
}

// Me the account behind the presented access token
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := httputil.GetUserID(c)
	if userID == "" {
		httputil.Forbidden(c, "not authenticated")
		return
	}

	user, err := h.svc.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		httputil.Fail(c, err, "current user")
		return
	}

	httputil.Success(c, user)
}
