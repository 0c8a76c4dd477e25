package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogPostPublishStampsOnce(t *testing.T) {
	post, err := NewBlogPost("Shipping a Side Project")
	require.NoError(t, err)
	require.False(t, post.Published)
	require.Nil(t, post.PublishedAt)

	post.Publish()
	require.True(t, post.Published)
	require.NotNil(t, post.PublishedAt)
	first := *post.PublishedAt

	// Re-publishing an already published post must not move the date
	post.Publish()
	assert.Equal(t, first, *post.PublishedAt)
}

func TestBlogPostUnpublishKeepsPublishedAt(t *testing.T) {
	post, err := NewBlogPost("Draft Again")
	require.NoError(t, err)

	post.Publish()
	require.NotNil(t, post.PublishedAt)

	post.Unpublish()
	assert.False(t, post.Published)
	assert.NotNil(t, post.PublishedAt)
}

func TestBlogPostRenameRederivesSlug(t *testing.T) {
	post, err := NewBlogPost("Go Concurrency Patterns")
	require.NoError(t, err)
	assert.Equal(t, "go-concurrency-patterns", post.Slug)

	require.NoError(t, post.Rename("Go Concurrency Patterns, Revisited"))
	assert.Equal(t, "go-concurrency-patterns-revisited", post.Slug)
}
