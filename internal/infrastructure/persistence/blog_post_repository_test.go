package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/folio/backend/internal/domain/content"
	"github.com/folio/backend/internal/domain/shared"
)

func setupBlogPostTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE blog_posts (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			slug TEXT NOT NULL,
			excerpt TEXT,
			content TEXT,
			featured_image TEXT,
			category TEXT,
			published INTEGER NOT NULL DEFAULT 0,
			published_at DATETIME,
			tags TEXT,
			views INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)
	`).Error
	require.NoError(t, err)

	return db
}

func TestGormBlogPostRepository_SaveAndFindBySlug(t *testing.T) {
	db := setupBlogPostTestDB(t)
	repo := NewGormBlogPostRepository(db)
	ctx := context.Background()

	post, err := content.NewBlogPost("Getting Started with Go")
	require.NoError(t, err)
	post.Excerpt = "An introduction"
	post.Tags = shared.StringList{"go", "tutorial"}
	require.NoError(t, repo.Save(ctx, post))

	found, err := repo.FindBySlug(ctx, "getting-started-with-go")
	require.NoError(t, err)
	assert.Equal(t, post.ID, found.ID)
	assert.Equal(t, int64(0), found.Views)
	assert.Equal(t, shared.StringList{"go", "tutorial"}, found.Tags)
}

func TestGormBlogPostRepository_IncrementViews(t *testing.T) {
	db := setupBlogPostTestDB(t)
	repo := NewGormBlogPostRepository(db)
	ctx := context.Background()

	post, err := content.NewBlogPost("Popular Post")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, post))

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.IncrementViews(ctx, post.ID))
	}

	found, err := repo.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), found.Views)
}

// An admin edit holds a copy of the row loaded before detail reads landed.
// Update must not write the stale counter back.
func TestGormBlogPostRepository_UpdateKeepsViewCounter(t *testing.T) {
	db := setupBlogPostTestDB(t)
	repo := NewGormBlogPostRepository(db)
	ctx := context.Background()

	post, err := content.NewBlogPost("Edited While Read")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, post))

	stale, err := repo.FindByID(ctx, post.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), stale.Views)

	// reads land between the load and the save
	require.NoError(t, repo.IncrementViews(ctx, post.ID))
	require.NoError(t, repo.IncrementViews(ctx, post.ID))

	require.NoError(t, stale.Rename("Edited After Reads"))
	require.NoError(t, repo.Update(ctx, stale))

	found, err := repo.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited-after-reads", found.Slug)
	assert.Equal(t, int64(2), found.Views)
}

func TestGormBlogPostRepository_UpdateNotFound(t *testing.T) {
	db := setupBlogPostTestDB(t)
	repo := NewGormBlogPostRepository(db)

	missing, err := content.NewBlogPost("Never Saved")
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Update(context.Background(), missing), shared.ErrNotFound)
}

func TestGormBlogPostRepository_IncrementViewsNotFound(t *testing.T) {
	db := setupBlogPostTestDB(t)
	repo := NewGormBlogPostRepository(db)

	err := repo.IncrementViews(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

// IncrementViews must perform the addition inside the UPDATE statement so
// concurrent requests cannot clobber each other's counts.
func TestGormBlogPostRepository_IncrementViewsSQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	repo := NewGormBlogPostRepository(db)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "blog_posts" SET "views"=views \+ \$1 WHERE id = \$2`).
		WithArgs(1, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.IncrementViews(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormBlogPostRepository_FilterPublished(t *testing.T) {
	db := setupBlogPostTestDB(t)
	repo := NewGormBlogPostRepository(db)
	ctx := context.Background()

	published, err := content.NewBlogPost("Published Post")
	require.NoError(t, err)
	published.Publish()
	require.NoError(t, repo.Save(ctx, published))

	draft, err := content.NewBlogPost("Draft Post")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, draft))

	filter := shared.DefaultFilter()
	filter.Filters = map[string]any{"published": true}

	posts, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Published Post", posts[0].Title)

	count, err := repo.Count(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
