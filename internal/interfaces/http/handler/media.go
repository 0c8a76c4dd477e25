package handler

import (
	"github.com/gin-gonic/gin"

	contentapp "github.com/folio/backend/internal/application/content"
)

// MediaHandler handles media upload endpoints
type MediaHandler struct {
	BaseHandler
	mediaService *contentapp.MediaService
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(mediaService *contentapp.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// RequestUpload godoc
// @Summary      Request a presigned upload URL
// @Tags         media
// @Accept       json
// @Produce      json
// @Param        request body contentapp.RequestUploadRequest true "Upload intent"
// @Success      201 {object} dto.Response{data=contentapp.UploadTicketResponse}
// @Failure      400 {object} dto.Response
// @Security     BearerAuth
// @Router       /media/uploads [post]
func (h *MediaHandler) RequestUpload(c *gin.Context) {
	var req contentapp.RequestUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	ticket, err := h.mediaService.RequestUpload(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, ticket)
}

// Download godoc
// @Summary      Get a presigned download URL for an object
// @Tags         media
// @Produce      json
// @Param        key query string true "Object key"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /media/download [get]
func (h *MediaHandler) Download(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		h.BadRequest(c, "key is required")
		return
	}

	url, err := h.mediaService.GetDownloadURL(c.Request.Context(), key)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"url": url})
}

// Delete godoc
// @Summary      Delete a stored object
// @Tags         media
// @Produce      json
// @Param        key query string true "Object key"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /media [delete]
func (h *MediaHandler) Delete(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		h.BadRequest(c, "key is required")
		return
	}

	if err := h.mediaService.Delete(c.Request.Context(), key); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"deleted": true})
}
