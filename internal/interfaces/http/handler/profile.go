package handler

import (
	"github.com/gin-gonic/gin"

	profileapp "github.com/folio/backend/internal/application/profile"
)

// ProfileHandler handles the flat profile singleton endpoints
type ProfileHandler struct {
	BaseHandler
	profileService *profileapp.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService *profileapp.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get godoc
// @Summary      Get the profile record
// @Tags         profile
// @Produce      json
// @Success      200 {object} dto.Response{data=profileapp.ProfileResponse}
// @Router       /profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.profileService.Get(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, p)
}

// Update godoc
// @Summary      Update profile fields
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request body profileapp.UpdateProfileRequest true "Fields to update"
// @Success      200 {object} dto.Response{data=profileapp.ProfileResponse}
// @Security     BearerAuth
// @Router       /profile [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	var req profileapp.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	p, err := h.profileService.Update(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, p)
}
