package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/zatca-bridge/invoicing-api/internal/application/service"
	"github.com/zatca-bridge/invoicing-api/internal/presentation/http/dto/request"
	"github.com/zatca-bridge/invoicing-api/internal/presentation/http/dto/response"
)

// AuthHandler handles the token endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Token handles POST /api/v1/auth/token
func (h *AuthHandler) Token(c *gin.Context) {
	var req request.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "api_key and api_secret are required")
		return
	}

	pair, err := h.authService.IssueToken(c.Request.Context(), req.APIKey, req.APISecret)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Token issued successfully", pair)
}

// Refresh handles POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "refresh_token is required")
		return
	}

	pair, err := h.authService.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Token refreshed successfully", pair)
}
