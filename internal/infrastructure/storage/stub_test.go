package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubMediaStorage(t *testing.T) {
	s := NewStubMediaStorage()
	ctx := context.Background()

	exists, err := s.ObjectExists(ctx, "projects/shot.png")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, s.Upload(ctx, "projects/shot.png", "image/png", strings.NewReader("bytes")))

	exists, err = s.ObjectExists(ctx, "projects/shot.png")
	require.NoError(t, err)
	assert.True(t, exists)

	url, err := s.GenerateDownloadURL(ctx, "projects/shot.png")
	require.NoError(t, err)
	assert.Contains(t, url, "projects/shot.png")

	require.NoError(t, s.DeleteObject(ctx, "projects/shot.png"))

	_, err = s.GenerateDownloadURL(ctx, "projects/shot.png")
	assert.Error(t, err)
}

func TestStubMediaStoragePublicURL(t *testing.T) {
	s := NewStubMediaStorage()
	assert.Equal(t, "/media/blog/cover.jpg", s.PublicURL("blog/cover.jpg"))
}
