package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProject(t *testing.T) {
	project, err := NewProject("My New Project!")
	require.NoError(t, err)

	assert.NotEqual(t, "", project.ID.String())
	assert.Equal(t, "My New Project!", project.Title)
	assert.Equal(t, "my-new-project", project.Slug)
	assert.Equal(t, string(ProjectStatusDraft), project.Status)
	assert.False(t, project.Featured)
	assert.NotNil(t, project.TechStack)
}

func TestNewProjectEmptyTitle(t *testing.T) {
	_, err := NewProject("")
	assert.Error(t, err)
}

func TestProjectRename(t *testing.T) {
	project, err := NewProject("Old Title")
	require.NoError(t, err)

	created := project.CreatedAt
	id := project.ID

	err = project.Rename("Brand New Title")
	require.NoError(t, err)

	assert.Equal(t, "brand-new-title", project.Slug)
	assert.Equal(t, id, project.ID, "rename must not change identity")
	assert.Equal(t, created, project.CreatedAt, "rename must not change created_at")
}

func TestProjectRenameSameTitleKeepsSlug(t *testing.T) {
	project, err := NewProject("Stable Title")
	require.NoError(t, err)

	updated := project.UpdatedAt
	time.Sleep(time.Millisecond)

	require.NoError(t, project.Rename("Stable Title"))
	assert.Equal(t, "stable-title", project.Slug)
	assert.Equal(t, updated, project.UpdatedAt, "no-op rename must not touch the record")
}
