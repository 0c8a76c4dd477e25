package persistence

import (
	"context"
	"errors"

	"github.com/folio/backend/internal/domain/content"
	"github.com/folio/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCertificationRepository implements CertificationRepository using GORM
type GormCertificationRepository struct {
	db *gorm.DB
}

// NewGormCertificationRepository creates a new GormCertificationRepository
func NewGormCertificationRepository(db *gorm.DB) *GormCertificationRepository {
	return &GormCertificationRepository{db: db}
}

// FindByID finds a certification by its ID
func (r *GormCertificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.Certification, error) {
	var cert content.Certification
	if err := r.db.WithContext(ctx).First(&cert, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &cert, nil
}

// FindBySlug finds a certification by its slug
func (r *GormCertificationRepository) FindBySlug(ctx context.Context, slug string) (*content.Certification, error) {
	var cert content.Certification
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&cert).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &cert, nil
}

// FindAll finds all certifications matching the filter
func (r *GormCertificationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]content.Certification, error) {
	var certs []content.Certification
	query := applyFilter(r.applySearch(r.db.WithContext(ctx).Model(&content.Certification{}), filter), filter)

	if err := query.Find(&certs).Error; err != nil {
		return nil, err
	}
	return certs, nil
}

// Count counts certifications matching the filter
func (r *GormCertificationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applySearch(r.db.WithContext(ctx).Model(&content.Certification{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a certification
func (r *GormCertificationRepository) Save(ctx context.Context, cert *content.Certification) error {
	return r.db.WithContext(ctx).Save(cert).Error
}

// Delete deletes a certification
func (r *GormCertificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&content.Certification{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormCertificationRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR issuer ILIKE ?", pattern, pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "issuer":
			query = query.Where("issuer = ?", value)
		}
	}

	return query
}

var _ content.CertificationRepository = (*GormCertificationRepository)(nil)
