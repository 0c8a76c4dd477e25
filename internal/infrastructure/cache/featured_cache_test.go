package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryFeaturedCache_RoundTrip(t *testing.T) {
	c := NewInMemoryFeaturedCache()
	ctx := context.Background()

	type item struct {
		Title string `json:"title"`
	}

	err := c.Get(ctx, "projects", &[]item{})
	assert.ErrorIs(t, err, ErrCacheMiss)

	want := []item{{Title: "One"}, {Title: "Two"}}
	require.NoError(t, c.Set(ctx, "projects", want, time.Minute))

	var got []item
	require.NoError(t, c.Get(ctx, "projects", &got))
	assert.Equal(t, want, got)
}

func TestInMemoryFeaturedCache_Invalidate(t *testing.T) {
	c := NewInMemoryFeaturedCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "services", []string{"a"}, time.Minute))
	require.NoError(t, c.Invalidate(ctx, "services"))

	var got []string
	assert.ErrorIs(t, c.Get(ctx, "services", &got), ErrCacheMiss)
}

func TestInMemoryFeaturedCache_Expiry(t *testing.T) {
	c := NewInMemoryFeaturedCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "projects", []string{"a"}, -time.Second))

	var got []string
	assert.ErrorIs(t, c.Get(ctx, "projects", &got), ErrCacheMiss)
}
