package persistence

import (
	"context"
	"errors"

	"github.com/folio/backend/internal/domain/profile"
	"github.com/folio/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormAboutRepository implements AboutRepository using GORM.
// The about table holds at most one row.
type GormAboutRepository struct {
	db *gorm.DB
}

// NewGormAboutRepository creates a new GormAboutRepository
func NewGormAboutRepository(db *gorm.DB) *GormAboutRepository {
	return &GormAboutRepository{db: db}
}

// Get returns the about document, or shared.ErrNotFound when none exists yet
func (r *GormAboutRepository) Get(ctx context.Context) (*profile.About, error) {
	var about profile.About
	if err := r.db.WithContext(ctx).Order("created_at ASC").First(&about).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &about, nil
}

// Save creates or updates the about document
func (r *GormAboutRepository) Save(ctx context.Context, about *profile.About) error {
	return r.db.WithContext(ctx).Save(about).Error
}

var _ profile.AboutRepository = (*GormAboutRepository)(nil)

// GormProfileRepository implements ProfileRepository using GORM.
// The profiles table holds at most one row.
type GormProfileRepository struct {
	db *gorm.DB
}

// NewGormProfileRepository creates a new GormProfileRepository
func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

// Get returns the profile, or shared.ErrNotFound when none exists yet
func (r *GormProfileRepository) Get(ctx context.Context) (*profile.Profile, error) {
	var p profile.Profile
	if err := r.db.WithContext(ctx).Order("created_at ASC").First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Save creates or updates the profile
func (r *GormProfileRepository) Save(ctx context.Context, p *profile.Profile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

var _ profile.ProfileRepository = (*GormProfileRepository)(nil)
