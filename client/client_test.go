package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientParsesSuccessEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"title":"Hello"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	var out struct {
		Title string `json:"title"`
	}
	err := c.Get(context.Background(), "/projects/hello", nil, &out)

	require.NoError(t, err)
	assert.Equal(t, "Hello", out.Title)
}

func TestClientParsesStringErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"error":"Project not found","code":"NOT_FOUND"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.Get(context.Background(), "/projects/missing", nil, nil)

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
	assert.Equal(t, "Project not found", apiErr.Message)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsUnauthorized(err))
}

func TestClientUnauthorizedEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"error":"Unauthorized"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.Post(context.Background(), "/projects", map[string]string{"title": "x"}, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Unauthorized", apiErr.Message)
	assert.True(t, IsUnauthorized(err))
}

func TestClientNonJSONBodyFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.Get(context.Background(), "/projects", nil, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithToken("abc123"))
	require.NoError(t, c.Get(context.Background(), "/projects", nil, nil))
	assert.Equal(t, "Bearer abc123", gotAuth)

	c.SetToken("")
	require.NoError(t, c.Get(context.Background(), "/projects", nil, nil))
	assert.Empty(t, gotAuth)
}

func TestClientTransportFailureIsNotAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL)
	err := c.Get(context.Background(), "/projects", nil, nil)

	require.Error(t, err)
	assert.True(t, isRemoteDown(err))
	assert.False(t, IsNotFound(err))
}
