package handler

import (
	"github.com/gin-gonic/gin"

	contentapp "github.com/folio/backend/internal/application/content"
	"github.com/folio/backend/internal/interfaces/http/dto"
)

// ProjectHandler handles project API endpoints
type ProjectHandler struct {
	BaseHandler
	projectService *contentapp.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService *contentapp.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List godoc
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        search query string false "Search in title and description"
// @Param        status query string false "Filter by status"
// @Param        category query string false "Filter by category"
// @Param        featured query bool false "Filter by featured flag"
// @Success      200 {object} dto.Response{data=[]contentapp.ProjectResponse}
// @Router       /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c, "status", "category", "featured")
	if err != nil {
		h.BindingError(c, err)
		return
	}

	projects, total, err := h.projectService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, projects, total, filter.Page, filter.PageSize)
}

// Featured godoc
// @Summary      List featured projects
// @Tags         projects
// @Produce      json
// @Success      200 {object} dto.Response{data=[]contentapp.ProjectResponse}
// @Router       /projects/featured [get]
func (h *ProjectHandler) Featured(c *gin.Context) {
	projects, err := h.projectService.GetFeatured(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, projects)
}

// GetBySlug godoc
// @Summary      Get a project by slug
// @Tags         projects
// @Produce      json
// @Param        slug path string true "Project slug"
// @Success      200 {object} dto.Response{data=contentapp.ProjectResponse}
// @Failure      404 {object} dto.Response
// @Router       /projects/{slug} [get]
func (h *ProjectHandler) GetBySlug(c *gin.Context) {
	var req dto.SlugRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	project, err := h.projectService.GetBySlug(c.Request.Context(), req.Slug)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, project)
}

// Create godoc
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        request body contentapp.CreateProjectRequest true "Project"
// @Success      201 {object} dto.Response{data=contentapp.ProjectResponse}
// @Failure      400 {object} dto.Response
// @Security     BearerAuth
// @Router       /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req contentapp.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, project)
}

// Update godoc
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id path string true "Project ID"
// @Param        request body contentapp.UpdateProjectRequest true "Fields to update"
// @Success      200 {object} dto.Response{data=contentapp.ProjectResponse}
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /projects/{id} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid ID format")
		return
	}

	var req contentapp.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, project)
}

// Delete godoc
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Param        id path string true "Project ID"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid ID format")
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"deleted": true})
}
