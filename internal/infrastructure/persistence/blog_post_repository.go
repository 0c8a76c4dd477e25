package persistence

import (
	"context"
	"errors"

	"github.com/folio/backend/internal/domain/content"
	"github.com/folio/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBlogPostRepository implements BlogPostRepository using GORM
type GormBlogPostRepository struct {
	db *gorm.DB
}

// NewGormBlogPostRepository creates a new GormBlogPostRepository
func NewGormBlogPostRepository(db *gorm.DB) *GormBlogPostRepository {
	return &GormBlogPostRepository{db: db}
}

// FindByID finds a blog post by its ID
func (r *GormBlogPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.BlogPost, error) {
	var post content.BlogPost
	if err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// FindBySlug finds a blog post by its slug
func (r *GormBlogPostRepository) FindBySlug(ctx context.Context, slug string) (*content.BlogPost, error) {
	var post content.BlogPost
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// FindAll finds all blog posts matching the filter
func (r *GormBlogPostRepository) FindAll(ctx context.Context, filter shared.Filter) ([]content.BlogPost, error) {
	var posts []content.BlogPost
	query := applyFilter(r.applySearch(r.db.WithContext(ctx).Model(&content.BlogPost{}), filter), filter)

	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Count counts blog posts matching the filter
func (r *GormBlogPostRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applySearch(r.db.WithContext(ctx).Model(&content.BlogPost{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a blog post
func (r *GormBlogPostRepository) Save(ctx context.Context, post *content.BlogPost) error {
	return r.db.WithContext(ctx).Save(post).Error
}

// Update overwrites all post columns except views. The counter is written
// only by IncrementViews, so an admin edit carrying a stale in-memory count
// cannot roll back reads that landed since the post was loaded.
func (r *GormBlogPostRepository) Update(ctx context.Context, post *content.BlogPost) error {
	result := r.db.WithContext(ctx).Model(post).Select("*").Omit("views").Updates(post)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a blog post
func (r *GormBlogPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&content.BlogPost{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// IncrementViews atomically increments the view counter at the SQL level.
// Concurrent increments never lose updates because the addition happens
// inside the UPDATE statement, not in application code.
func (r *GormBlogPostRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&content.BlogPost{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormBlogPostRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR excerpt ILIKE ?", pattern, pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "published":
			query = query.Where("published = ?", value)
		case "category":
			query = query.Where("category = ?", value)
		}
	}

	return query
}

var _ content.BlogPostRepository = (*GormBlogPostRepository)(nil)
