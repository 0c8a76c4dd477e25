package persistence

import (
	"context"
	"errors"

	"github.com/folio/backend/internal/domain/content"
	"github.com/folio/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormServiceRepository implements ServiceRepository using GORM
type GormServiceRepository struct {
	db *gorm.DB
}

// NewGormServiceRepository creates a new GormServiceRepository
func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

// FindByID finds a service by its ID
func (r *GormServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.Service, error) {
	var svc content.Service
	if err := r.db.WithContext(ctx).First(&svc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &svc, nil
}

// FindBySlug finds a service by its slug
func (r *GormServiceRepository) FindBySlug(ctx context.Context, slug string) (*content.Service, error) {
	var svc content.Service
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&svc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &svc, nil
}

// FindAll finds all services matching the filter
func (r *GormServiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]content.Service, error) {
	var services []content.Service
	query := applyFilter(r.applySearch(r.db.WithContext(ctx).Model(&content.Service{}), filter), filter)

	if err := query.Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// FindFeatured finds featured services, newest first, up to limit
func (r *GormServiceRepository) FindFeatured(ctx context.Context, limit int) ([]content.Service, error) {
	var services []content.Service
	if err := r.db.WithContext(ctx).
		Where("featured = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// Count counts services matching the filter
func (r *GormServiceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applySearch(r.db.WithContext(ctx).Model(&content.Service{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a service
func (r *GormServiceRepository) Save(ctx context.Context, svc *content.Service) error {
	return r.db.WithContext(ctx).Save(svc).Error
}

// Delete deletes a service
func (r *GormServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&content.Service{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormServiceRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "featured":
			query = query.Where("featured = ?", value)
		}
	}

	return query
}

var _ content.ServiceRepository = (*GormServiceRepository)(nil)
