package content

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/folio/backend/internal/domain/shared"
)

// MediaStorage abstracts the object store backing media uploads
type MediaStorage interface {
	EnsureBucket(ctx context.Context) error
	GenerateUploadURL(ctx context.Context, key, contentType string) (string, error)
	GenerateDownloadURL(ctx context.Context, key string) (string, error)
	Upload(ctx context.Context, key, contentType string, body io.Reader) error
	DeleteObject(ctx context.Context, key string) error
	ObjectExists(ctx context.Context, key string) (bool, error)
	PublicURL(key string) string
}

// allowedMediaTypes are the content types accepted for upload
var allowedMediaTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"image/svg+xml":   ".svg",
	"application/pdf": ".pdf",
}

// RequestUploadRequest is the input for requesting a presigned upload
type RequestUploadRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
}

// UploadTicketResponse carries a presigned upload URL and the final public URL
type UploadTicketResponse struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
	PublicURL string `json:"public_url"`
}

// MediaService issues presigned upload tickets and manages stored objects
type MediaService struct {
	storage MediaStorage
	logger  *zap.Logger
}

// NewMediaService creates a new media service
func NewMediaService(storage MediaStorage, logger *zap.Logger) *MediaService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MediaService{storage: storage, logger: logger}
}

// RequestUpload validates the content type and issues a presigned PUT URL.
// Keys are namespaced by a fresh UUID so uploads never collide.
func (s *MediaService) RequestUpload(ctx context.Context, req RequestUploadRequest) (*UploadTicketResponse, error) {
	ext, ok := allowedMediaTypes[strings.ToLower(req.ContentType)]
	if !ok {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unsupported content type")
	}

	base := strings.TrimSuffix(path.Base(req.Filename), path.Ext(req.Filename))
	if base == "" || base == "." {
		base = "upload"
	}
	key := fmt.Sprintf("media/%s/%s%s", uuid.NewString(), base, ext)

	uploadURL, err := s.storage.GenerateUploadURL(ctx, key, req.ContentType)
	if err != nil {
		return nil, err
	}

	return &UploadTicketResponse{
		Key:       key,
		UploadURL: uploadURL,
		PublicURL: s.storage.PublicURL(key),
	}, nil
}

// GetDownloadURL returns a presigned GET URL for an existing object
func (s *MediaService) GetDownloadURL(ctx context.Context, key string) (string, error) {
	exists, err := s.storage.ObjectExists(ctx, key)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", shared.ErrNotFound
	}
	return s.storage.GenerateDownloadURL(ctx, key)
}

// Delete removes an object from storage
func (s *MediaService) Delete(ctx context.Context, key string) error {
	exists, err := s.storage.ObjectExists(ctx, key)
	if err != nil {
		return err
	}
	if !exists {
		return shared.ErrNotFound
	}
	return s.storage.DeleteObject(ctx, key)
}
