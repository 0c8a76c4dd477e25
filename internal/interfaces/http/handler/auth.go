package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	identityapp "github.com/folio/backend/internal/application/identity"
	"github.com/folio/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *identityapp.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignIn godoc
// @Summary      Sign in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body identityapp.SignInRequest true "Credentials"
// @Success      200 {object} dto.Response{data=identityapp.SignInResponse}
// @Failure      401 {object} dto.Response
// @Router       /auth/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req identityapp.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.authService.SignIn(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// SignOut godoc
// @Summary      Revoke the presented access token
// @Tags         auth
// @Produce      json
// @Success      200 {object} dto.Response
// @Failure      401 {object} dto.Response
// @Security     BearerAuth
// @Router       /auth/signout [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader(middleware.AuthHeaderKey), middleware.BearerPrefix)
	if token == "" {
		h.Unauthorized(c, "Unauthorized")
		return
	}

	if err := h.authService.SignOut(c.Request.Context(), token); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"signed_out": true})
}

// Refresh godoc
// @Summary      Exchange a refresh token for a fresh pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body identityapp.RefreshRequest true "Refresh token"
// @Success      200 {object} dto.Response{data=identityapp.SignInResponse}
// @Failure      401 {object} dto.Response
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req identityapp.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.authService.Refresh(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Me godoc
// @Summary      Return the signed-in account
// @Tags         auth
// @Produce      json
// @Success      200 {object} dto.Response{data=identityapp.UserResponse}
// @Failure      401 {object} dto.Response
// @Security     BearerAuth
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Unauthorized")
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), claims)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, user)
}
