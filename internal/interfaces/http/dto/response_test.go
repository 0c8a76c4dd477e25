package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSuccessResponseWithMeta(t *testing.T) {
	resp := NewSuccessResponseWithMeta([]string{"a", "b"}, 5, 2, 2)
	require.NotNil(t, resp.Meta)
	assert.True(t, resp.Success)
	assert.Equal(t, int64(5), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 2, resp.Meta.PageSize)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}

func TestNewSuccessResponseWithMetaZeroPageSize(t *testing.T) {
	// binding rejects page_size < 1 upstream, but the constructor must not
	// divide by zero if called directly
	resp := NewSuccessResponseWithMeta(nil, 10, 1, 0)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 0, resp.Meta.TotalPages)
}

func TestNewSuccessResponseWithMetaExactMultiple(t *testing.T) {
	resp := NewSuccessResponseWithMeta(nil, 40, 1, 20)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 2, resp.Meta.TotalPages)
}
