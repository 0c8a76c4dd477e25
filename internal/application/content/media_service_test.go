package content

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio/backend/internal/domain/shared"
	"github.com/folio/backend/internal/infrastructure/storage"
)

func TestMediaService_RequestUpload(t *testing.T) {
	svc := NewMediaService(storage.NewStubMediaStorage(), nil)

	ticket, err := svc.RequestUpload(context.Background(), RequestUploadRequest{
		Filename:    "avatar.jpeg",
		ContentType: "image/png",
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ticket.Key, "media/"))
	assert.True(t, strings.HasSuffix(ticket.Key, "avatar.png"))
	assert.NotEmpty(t, ticket.UploadURL)
	assert.NotEmpty(t, ticket.PublicURL)
}

func TestMediaService_RequestUpload_UnsupportedType(t *testing.T) {
	svc := NewMediaService(storage.NewStubMediaStorage(), nil)

	_, err := svc.RequestUpload(context.Background(), RequestUploadRequest{
		Filename:    "payload.exe",
		ContentType: "application/octet-stream",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
}

func TestMediaService_GetDownloadURL_Missing(t *testing.T) {
	svc := NewMediaService(storage.NewStubMediaStorage(), nil)

	_, err := svc.GetDownloadURL(context.Background(), "media/none/missing.png")

	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestMediaService_UploadThenDownloadAndDelete(t *testing.T) {
	store := storage.NewStubMediaStorage()
	svc := NewMediaService(store, nil)
	ctx := context.Background()

	require.NoError(t, store.Upload(ctx, "media/x/pic.png", "image/png", strings.NewReader("pixels")))

	url, err := svc.GetDownloadURL(ctx, "media/x/pic.png")
	require.NoError(t, err)
	assert.NotEmpty(t, url)

	require.NoError(t, svc.Delete(ctx, "media/x/pic.png"))
	assert.ErrorIs(t, svc.Delete(ctx, "media/x/pic.png"), shared.ErrNotFound)
}
