package handler

import (
	"github.com/gin-gonic/gin"

	contentapp "github.com/folio/backend/internal/application/content"
	"github.com/folio/backend/internal/interfaces/http/dto"
)

// CertificationHandler handles certification API endpoints
type CertificationHandler struct {
	BaseHandler
	certService *contentapp.CertificationService
}

// NewCertificationHandler creates a new CertificationHandler
func NewCertificationHandler(certService *contentapp.CertificationService) *CertificationHandler {
	return &CertificationHandler{certService: certService}
}

// List godoc
// @Summary      List certifications
// @Tags         certifications
// @Produce      json
// @Param        search query string false "Search in title and issuer"
// @Param        status query string false "Filter by status"
// @Param        issuer query string false "Filter by issuer"
// @Success      200 {object} dto.Response{data=[]contentapp.CertificationResponse}
// @Router       /certifications [get]
func (h *CertificationHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c, "status", "issuer")
	if err != nil {
		h.BindingError(c, err)
		return
	}

	certs, total, err := h.certService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, certs, total, filter.Page, filter.PageSize)
}

// GetBySlug godoc
// @Summary      Get a certification by slug
// @Tags         certifications
// @Produce      json
// @Param        slug path string true "Certification slug"
// @Success      200 {object} dto.Response{data=contentapp.CertificationResponse}
// @Failure      404 {object} dto.Response
// @Router       /certifications/{slug} [get]
func (h *CertificationHandler) GetBySlug(c *gin.Context) {
	var req dto.SlugRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	cert, err := h.certService.GetBySlug(c.Request.Context(), req.Slug)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, cert)
}

// Create godoc
// @Summary      Create a certification
// @Tags         certifications
// @Accept       json
// @Produce      json
// @Param        request body contentapp.CreateCertificationRequest true "Certification"
// @Success      201 {object} dto.Response{data=contentapp.CertificationResponse}
// @Security     BearerAuth
// @Router       /certifications [post]
func (h *CertificationHandler) Create(c *gin.Context) {
	var req contentapp.CreateCertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	cert, err := h.certService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, cert)
}

// Update godoc
// @Summary      Update a certification
// @Tags         certifications
// @Accept       json
// @Produce      json
// @Param        id path string true "Certification ID"
// @Param        request body contentapp.UpdateCertificationRequest true "Fields to update"
// @Success      200 {object} dto.Response{data=contentapp.CertificationResponse}
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /certifications/{id} [put]
func (h *CertificationHandler) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid ID format")
		return
	}

	var req contentapp.UpdateCertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	cert, err := h.certService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, cert)
}

// Delete godoc
// @Summary      Delete a certification
// @Tags         certifications
// @Produce      json
// @Param        id path string true "Certification ID"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /certifications/{id} [delete]
func (h *CertificationHandler) Delete(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid ID format")
		return
	}

	if err := h.certService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"deleted": true})
}
