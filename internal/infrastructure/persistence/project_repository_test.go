package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/folio/backend/internal/domain/content"
	"github.com/folio/backend/internal/domain/shared"
)

func setupProjectTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE projects (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			slug TEXT NOT NULL,
			description TEXT,
			long_description TEXT,
			image_url TEXT,
			demo_url TEXT,
			github_url TEXT,
			tech_stack TEXT,
			category TEXT,
			status TEXT,
			featured INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)
	`).Error
	require.NoError(t, err)

	return db
}

func TestGormProjectRepository_SaveAndFind(t *testing.T) {
	db := setupProjectTestDB(t)
	repo := NewGormProjectRepository(db)
	ctx := context.Background()

	project, err := content.NewProject("My New Project!")
	require.NoError(t, err)
	project.Description = "A test project"
	project.TechStack = shared.StringList{"Go", "PostgreSQL"}

	require.NoError(t, repo.Save(ctx, project))

	byID, err := repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "My New Project!", byID.Title)
	assert.Equal(t, shared.StringList{"Go", "PostgreSQL"}, byID.TechStack)

	bySlug, err := repo.FindBySlug(ctx, "my-new-project")
	require.NoError(t, err)
	assert.Equal(t, project.ID, bySlug.ID)
}

func TestGormProjectRepository_FindByIDNotFound(t *testing.T) {
	db := setupProjectTestDB(t)
	repo := NewGormProjectRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormProjectRepository_FindBySlugNotFound(t *testing.T) {
	db := setupProjectTestDB(t)
	repo := NewGormProjectRepository(db)

	_, err := repo.FindBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormProjectRepository_FindAllOrdering(t *testing.T) {
	db := setupProjectTestDB(t)
	repo := NewGormProjectRepository(db)
	ctx := context.Background()

	older, err := content.NewProject("Older")
	require.NoError(t, err)
	older.CreatedAt = time.Now().Add(-time.Hour)
	older.UpdatedAt = older.CreatedAt
	require.NoError(t, repo.Save(ctx, older))

	newer, err := content.NewProject("Newer")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, newer))

	projects, err := repo.FindAll(ctx, shared.DefaultFilter())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Newer", projects[0].Title)
	assert.Equal(t, "Older", projects[1].Title)
}

func TestGormProjectRepository_FindFeatured(t *testing.T) {
	db := setupProjectTestDB(t)
	repo := NewGormProjectRepository(db)
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		p, err := content.NewProject(uuid.NewString())
		require.NoError(t, err)
		p.Featured = true
		p.CreatedAt = time.Now().Add(time.Duration(-i) * time.Minute)
		require.NoError(t, repo.Save(ctx, p))
	}

	unfeatured, err := content.NewProject("Plain")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, unfeatured))

	featured, err := repo.FindFeatured(ctx, content.FeaturedProjectLimit)
	require.NoError(t, err)
	assert.Len(t, featured, content.FeaturedProjectLimit)
	for _, p := range featured {
		assert.True(t, p.Featured)
	}
}

func TestGormProjectRepository_Delete(t *testing.T) {
	db := setupProjectTestDB(t)
	repo := NewGormProjectRepository(db)
	ctx := context.Background()

	project, err := content.NewProject("Doomed")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, project))

	require.NoError(t, repo.Delete(ctx, project.ID))

	_, err = repo.FindByID(ctx, project.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, project.ID), shared.ErrNotFound)
}

func TestGormProjectRepository_SaveUpdates(t *testing.T) {
	db := setupProjectTestDB(t)
	repo := NewGormProjectRepository(db)
	ctx := context.Background()

	project, err := content.NewProject("Original Title")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, project))

	require.NoError(t, project.Rename("Renamed Title"))
	require.NoError(t, repo.Save(ctx, project))

	var count int64
	require.NoError(t, db.Model(&content.Project{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	updated, err := repo.FindBySlug(ctx, "renamed-title")
	require.NoError(t, err)
	assert.Equal(t, project.ID, updated.ID)
}
