package handler

import (
	"github.com/gin-gonic/gin"

	profileapp "github.com/folio/backend/internal/application/profile"
)

// AboutHandler handles the about-page singleton endpoints
type AboutHandler struct {
	BaseHandler
	aboutService *profileapp.AboutService
}

// NewAboutHandler creates a new AboutHandler
func NewAboutHandler(aboutService *profileapp.AboutService) *AboutHandler {
	return &AboutHandler{aboutService: aboutService}
}

// Get godoc
// @Summary      Get the about-page document
// @Tags         about
// @Produce      json
// @Success      200 {object} dto.Response{data=profileapp.AboutResponse}
// @Router       /about [get]
func (h *AboutHandler) Get(c *gin.Context) {
	about, err := h.aboutService.Get(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, about)
}

// Update godoc
// @Summary      Replace about-page sections
// @Tags         about
// @Accept       json
// @Produce      json
// @Param        request body profileapp.UpdateAboutRequest true "Sections to replace"
// @Success      200 {object} dto.Response{data=profileapp.AboutResponse}
// @Security     BearerAuth
// @Router       /about [put]
func (h *AboutHandler) Update(c *gin.Context) {
	var req profileapp.UpdateAboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	about, err := h.aboutService.Update(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, about)
}
