package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("Admin@Example.com", "admin123456", RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, "admin@example.com", user.Email, "email is normalized to lower case")
	assert.True(t, user.Active)
	assert.True(t, user.IsAdmin())
	assert.NotEqual(t, "admin123456", user.PasswordHash)
}

func TestNewUserValidation(t *testing.T) {
	_, err := NewUser("not-an-email", "admin123456", RoleViewer)
	assert.Error(t, err)

	_, err = NewUser("a@b.co", "short", RoleViewer)
	assert.Error(t, err)
}

func TestVerifyPassword(t *testing.T) {
	user, err := NewUser("admin@example.com", "correct-horse", RoleAdmin)
	require.NoError(t, err)

	assert.True(t, user.VerifyPassword("correct-horse"))
	assert.False(t, user.VerifyPassword("battery-staple"))
}

func TestSetPassword(t *testing.T) {
	user, err := NewUser("admin@example.com", "first-password", RoleAdmin)
	require.NoError(t, err)

	require.NoError(t, user.SetPassword("second-password"))
	assert.False(t, user.VerifyPassword("first-password"))
	assert.True(t, user.VerifyPassword("second-password"))
}
