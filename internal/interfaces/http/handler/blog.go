package handler

import (
	"github.com/gin-gonic/gin"

	contentapp "github.com/folio/backend/internal/application/content"
	"github.com/folio/backend/internal/interfaces/http/dto"
)

// BlogHandler handles blog post API endpoints. Public reads see published
// posts only; the admin listing sees everything.
type BlogHandler struct {
	BaseHandler
	blogService *contentapp.BlogService
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(blogService *contentapp.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// List godoc
// @Summary      List published blog posts
// @Tags         blog
// @Produce      json
// @Param        search query string false "Search in title and excerpt"
// @Param        category query string false "Filter by category"
// @Success      200 {object} dto.Response{data=[]contentapp.BlogPostResponse}
// @Router       /blog-posts [get]
func (h *BlogHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c, "category")
	if err != nil {
		h.BindingError(c, err)
		return
	}

	posts, total, err := h.blogService.ListPublished(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, posts, total, filter.Page, filter.PageSize)
}

// ListAll godoc
// @Summary      List all blog posts including drafts
// @Tags         blog
// @Produce      json
// @Param        published query bool false "Filter by publication state"
// @Param        category query string false "Filter by category"
// @Success      200 {object} dto.Response{data=[]contentapp.BlogPostResponse}
// @Security     BearerAuth
// @Router       /admin/blog-posts [get]
func (h *BlogHandler) ListAll(c *gin.Context) {
	filter, err := bindListFilter(c, "published", "category")
	if err != nil {
		h.BindingError(c, err)
		return
	}

	posts, total, err := h.blogService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, posts, total, filter.Page, filter.PageSize)
}

// GetBySlug godoc
// @Summary      Get a published blog post by slug, counting the view
// @Tags         blog
// @Produce      json
// @Param        slug path string true "Post slug"
// @Success      200 {object} dto.Response{data=contentapp.BlogPostResponse}
// @Failure      404 {object} dto.Response
// @Router       /blog-posts/{slug} [get]
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	var req dto.SlugRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	post, err := h.blogService.GetPublishedBySlug(c.Request.Context(), req.Slug)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, post)
}

// Create godoc
// @Summary      Create a blog post
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        request body contentapp.CreateBlogPostRequest true "Post"
// @Success      201 {object} dto.Response{data=contentapp.BlogPostResponse}
// @Security     BearerAuth
// @Router       /blog-posts [post]
func (h *BlogHandler) Create(c *gin.Context) {
	var req contentapp.CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	post, err := h.blogService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, post)
}

// Update godoc
// @Summary      Update a blog post
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        id path string true "Post ID"
// @Param        request body contentapp.UpdateBlogPostRequest true "Fields to update"
// @Success      200 {object} dto.Response{data=contentapp.BlogPostResponse}
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /blog-posts/{id} [put]
func (h *BlogHandler) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid ID format")
		return
	}

	var req contentapp.UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	post, err := h.blogService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, post)
}

// Delete godoc
// @Summary      Delete a blog post
// @Tags         blog
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /blog-posts/{id} [delete]
func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid ID format")
		return
	}

	if err := h.blogService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"deleted": true})
}
