package persistence

import (
	"context"
	"errors"

	"github.com/folio/backend/internal/domain/content"
	"github.com/folio/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProjectRepository implements ProjectRepository using GORM
type GormProjectRepository struct {
	db *gorm.DB
}

// NewGormProjectRepository creates a new GormProjectRepository
func NewGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{db: db}
}

// FindByID finds a project by its ID
func (r *GormProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.Project, error) {
	var project content.Project
	if err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

// FindBySlug finds a project by its slug
func (r *GormProjectRepository) FindBySlug(ctx context.Context, slug string) (*content.Project, error) {
	var project content.Project
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

// FindAll finds all projects matching the filter
func (r *GormProjectRepository) FindAll(ctx context.Context, filter shared.Filter) ([]content.Project, error) {
	var projects []content.Project
	query := applyFilter(r.applySearch(r.db.WithContext(ctx).Model(&content.Project{}), filter), filter)

	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindFeatured finds featured projects, newest first, up to limit
func (r *GormProjectRepository) FindFeatured(ctx context.Context, limit int) ([]content.Project, error) {
	var projects []content.Project
	if err := r.db.WithContext(ctx).
		Where("featured = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Count counts projects matching the filter
func (r *GormProjectRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applySearch(r.db.WithContext(ctx).Model(&content.Project{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a project
func (r *GormProjectRepository) Save(ctx context.Context, project *content.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// Delete deletes a project
func (r *GormProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&content.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormProjectRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "category":
			query = query.Where("category = ?", value)
		case "featured":
			query = query.Where("featured = ?", value)
		}
	}

	return query
}

var _ content.ProjectRepository = (*GormProjectRepository)(nil)
