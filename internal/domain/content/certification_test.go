package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCertificationRenameRegeneratesSlug(t *testing.T) {
	cert, err := NewCertification("AWS Solutions Architect", "Amazon Web Services")
	require.NoError(t, err)

	id := cert.ID
	created := cert.CreatedAt
	require.Equal(t, "aws-solutions-architect", cert.Slug)

	require.NoError(t, cert.Rename("AWS Solutions Architect Professional"))
	assert.Equal(t, "aws-solutions-architect-professional", cert.Slug)
	assert.Equal(t, id, cert.ID)
	assert.Equal(t, created, cert.CreatedAt)
}

func TestCertificationIsExpired(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	cert, err := NewCertification("CKA", "CNCF")
	require.NoError(t, err)
	assert.False(t, cert.IsExpired(now), "no expiry date means never expired")

	past := "2025-01-31"
	cert.ExpiryDate = &past
	assert.True(t, cert.IsExpired(now))

	future := "2027-01-31"
	cert.ExpiryDate = &future
	assert.False(t, cert.IsExpired(now))

	garbage := "sometime next year"
	cert.ExpiryDate = &garbage
	assert.False(t, cert.IsExpired(now), "unparseable dates are treated as not expired")
}
