package profile

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/folio/backend/internal/domain/profile"
	"github.com/folio/backend/internal/domain/shared"
)

// ProfileService handles the flat profile singleton
type ProfileService struct {
	repo   profile.ProfileRepository
	logger *zap.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(repo profile.ProfileRepository, logger *zap.Logger) *ProfileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileService{repo: repo, logger: logger}
}

// Get returns the profile record, or an empty one before first save
func (s *ProfileService) Get(ctx context.Context) (*ProfileResponse, error) {
	p, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return &ProfileResponse{}, nil
		}
		return nil, err
	}
	return ToProfileResponse(p), nil
}

// Update upserts the profile record, replacing only the submitted fields
func (s *ProfileService) Update(ctx context.Context, req UpdateProfileRequest) (*ProfileResponse, error) {
	p, err := s.repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		p = &profile.Profile{BaseEntity: shared.NewBaseEntity()}
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Bio != nil {
		p.Bio = *req.Bio
	}
	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.Phone != nil {
		p.Phone = *req.Phone
	}
	if req.Location != nil {
		p.Location = *req.Location
	}
	if req.Website != nil {
		p.Website = *req.Website
	}
	if req.Github != nil {
		p.Github = *req.Github
	}
	if req.Linkedin != nil {
		p.Linkedin = *req.Linkedin
	}
	if req.Avatar != nil {
		p.Avatar = *req.Avatar
	}
	p.Touch()

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return ToProfileResponse(p), nil
}
