package dto

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, GetHTTPStatus(ErrCodeNotFound))
	assert.Equal(t, http.StatusUnauthorized, GetHTTPStatus(ErrCodeUnauthorized))
	assert.Equal(t, http.StatusForbidden, GetHTTPStatus(ErrCodeForbidden))
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(ErrCodeInvalidInput))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("ERR_SOMETHING_NEW"))
}

func TestNormalizeErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode("NOT_FOUND"))
	assert.Equal(t, ErrCodeUnauthorized, NormalizeErrorCode("INVALID_CREDENTIALS"))
	assert.Equal(t, ErrCodeForbidden, NormalizeErrorCode(ErrCodeForbidden))
	assert.Equal(t, "CUSTOM_CODE", NormalizeErrorCode("CUSTOM_CODE"))
}

func TestErrorResponseShape(t *testing.T) {
	resp := NewErrorResponse(ErrCodeNotFound, "Project not found")
	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, false, decoded["success"])
	assert.Equal(t, "Project not found", decoded["error"])
	assert.Equal(t, "ERR_NOT_FOUND", decoded["code"])
	assert.NotContains(t, decoded, "data")
}

func TestSuccessResponseShape(t *testing.T) {
	resp := NewSuccessResponse(map[string]string{"title": "Hello"})
	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, true, decoded["success"])
	assert.NotContains(t, decoded, "error")
	assert.NotContains(t, decoded, "code")
}
