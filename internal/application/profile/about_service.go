package profile

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/folio/backend/internal/domain/profile"
	"github.com/folio/backend/internal/domain/shared"
)

// AboutService handles the about-page singleton
type AboutService struct {
	repo   profile.AboutRepository
	logger *zap.Logger
}

// NewAboutService creates a new about service
func NewAboutService(repo profile.AboutRepository, logger *zap.Logger) *AboutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AboutService{repo: repo, logger: logger}
}

// Get returns the about document. A deployment that has never saved one gets
// an empty document rather than an error, so fresh installs render a blank
// about page instead of a 404.
func (s *AboutService) Get(ctx context.Context) (*AboutResponse, error) {
	about, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return &AboutResponse{}, nil
		}
		return nil, err
	}
	return ToAboutResponse(about), nil
}

// Update upserts the about document, replacing only the submitted sections
func (s *AboutService) Update(ctx context.Context, req UpdateAboutRequest) (*AboutResponse, error) {
	about, err := s.repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		about = &profile.About{BaseEntity: shared.NewBaseEntity()}
	}

	if req.PersonalInfo != nil {
		about.PersonalInfo = req.PersonalInfo
	}
	if req.Skills != nil {
		about.Skills = req.Skills
	}
	if req.Experience != nil {
		about.Experience = req.Experience
	}
	if req.Education != nil {
		about.Education = req.Education
	}
	about.Touch()

	if err := s.repo.Save(ctx, about); err != nil {
		return nil, err
	}
	return ToAboutResponse(about), nil
}
