package handler

import (
	"github.com/gin-gonic/gin"

	contentapp "github.com/folio/backend/internal/application/content"
	"github.com/folio/backend/internal/interfaces/http/dto"
)

// ServiceHandler handles service-offering API endpoints
type ServiceHandler struct {
	BaseHandler
	serviceService *contentapp.ServiceService
}

// NewServiceHandler creates a new ServiceHandler
func NewServiceHandler(serviceService *contentapp.ServiceService) *ServiceHandler {
	return &ServiceHandler{serviceService: serviceService}
}

// List godoc
// @Summary      List service offerings
// @Tags         services
// @Produce      json
// @Param        status query string false "Filter by status"
// @Param        featured query bool false "Filter by featured flag"
// @Success      200 {object} dto.Response{data=[]contentapp.ServiceResponse}
// @Router       /services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c, "status", "featured")
	if err != nil {
		h.BindingError(c, err)
		return
	}

	services, total, err := h.serviceService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, services, total, filter.Page, filter.PageSize)
}

// Featured godoc
// @Summary      List featured service offerings
// @Tags         services
// @Produce      json
// @Success      200 {object} dto.Response{data=[]contentapp.ServiceResponse}
// @Router       /services/featured [get]
func (h *ServiceHandler) Featured(c *gin.Context) {
	services, err := h.serviceService.GetFeatured(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, services)
}

// GetBySlug godoc
// @Summary      Get a service offering by slug
// @Tags         services
// @Produce      json
// @Param        slug path string true "Service slug"
// @Success      200 {object} dto.Response{data=contentapp.ServiceResponse}
// @Failure      404 {object} dto.Response
// @Router       /services/{slug} [get]
func (h *ServiceHandler) GetBySlug(c *gin.Context) {
	var req dto.SlugRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	service, err := h.serviceService.GetBySlug(c.Request.Context(), req.Slug)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, service)
}

// Create godoc
// @Summary      Create a service offering
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        request body contentapp.CreateServiceRequest true "Service"
// @Success      201 {object} dto.Response{data=contentapp.ServiceResponse}
// @Security     BearerAuth
// @Router       /services [post]
func (h *ServiceHandler) Create(c *gin.Context) {
	var req contentapp.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	service, err := h.serviceService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, service)
}

// Update godoc
// @Summary      Update a service offering
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        id path string true "Service ID"
// @Param        request body contentapp.UpdateServiceRequest true "Fields to update"
// @Success      200 {object} dto.Response{data=contentapp.ServiceResponse}
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /services/{id} [put]
func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid ID format")
		return
	}

	var req contentapp.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	service, err := h.serviceService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, service)
}

// Delete godoc
// @Summary      Delete a service offering
// @Tags         services
// @Produce      json
// @Param        id path string true "Service ID"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /services/{id} [delete]
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid ID format")
		return
	}

	if err := h.serviceService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"deleted": true})
}
