package middleware

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupValidator(t *testing.T) {
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	assert.True(t, ok)
	assert.NotNil(t, v)
}

func TestValidationMessageUsesJSONFieldNames(t *testing.T) {
	type input struct {
		Email string `json:"email" binding:"required,email"`
		Title string `json:"title" binding:"required,max=5"`
	}

	SetupValidator()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	err := v.Struct(input{Email: "not-an-email", Title: "much too long"})
	require.Error(t, err)

	msg := ValidationMessage(err)
	assert.Contains(t, msg, "email: invalid email format")
	assert.Contains(t, msg, "title: must be at most 5 characters")
}

func TestValidationMessageRequired(t *testing.T) {
	type input struct {
		Title string `json:"title" binding:"required"`
	}

	SetupValidator()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	err := v.Struct(input{})
	require.Error(t, err)
	assert.Equal(t, "title: this field is required", ValidationMessage(err))
}

func TestValidationMessageForNonValidatorError(t *testing.T) {
	assert.Equal(t, "Invalid request body", ValidationMessage(assert.AnError))
}
