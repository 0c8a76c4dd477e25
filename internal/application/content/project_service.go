package content

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/folio/backend/internal/domain/content"
	"github.com/folio/backend/internal/infrastructure/cache"
	"github.com/folio/backend/internal/infrastructure/telemetry"
)

// featuredCacheTTL bounds how stale the featured lists may get after an
// admin write that bypassed invalidation (e.g. a direct DB edit).
const featuredCacheTTL = 5 * time.Minute

// ProjectService handles project use cases
type ProjectService struct {
	repo    content.ProjectRepository
	cache   cache.FeaturedCache
	metrics *telemetry.ContentMetrics
	logger  *zap.Logger
}

// NewProjectService creates a new project service. cache may be nil when no
// cache backend is configured.
func NewProjectService(repo content.ProjectRepository, featuredCache cache.FeaturedCache, metrics *telemetry.ContentMetrics, logger *zap.Logger) *ProjectService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectService{
		repo:    repo,
		cache:   featuredCache,
		metrics: metrics,
		logger:  logger,
	}
}

// Create creates a new project
func (s *ProjectService) Create(ctx context.Context, req CreateProjectRequest) (*ProjectResponse, error) {
	project, err := content.NewProject(req.Title)
	if err != nil {
		return nil, err
	}

	project.Description = req.Description
	project.LongDescription = req.LongDescription
	project.ImageURL = req.ImageURL
	project.DemoURL = req.DemoURL
	project.GithubURL = req.GithubURL
	if req.TechStack != nil {
		project.TechStack = req.TechStack
	}
	project.Category = req.Category
	if req.Status != "" {
		project.Status = req.Status
	}
	project.Featured = req.Featured

	if err := s.repo.Save(ctx, project); err != nil {
		return nil, err
	}

	s.metrics.RecordWrite(ctx, "project", "create")
	s.invalidateFeatured(ctx)
	return ToProjectResponse(project), nil
}

// GetByID returns a project by ID
func (s *ProjectService) GetByID(ctx context.Context, id uuid.UUID) (*ProjectResponse, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordRead(ctx, "project")
	return ToProjectResponse(project), nil
}

// GetBySlug returns a project by slug
func (s *ProjectService) GetBySlug(ctx context.Context, slug string) (*ProjectResponse, error) {
	project, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordRead(ctx, "project")
	return ToProjectResponse(project), nil
}

// List returns projects matching the filter with the total count
func (s *ProjectService) List(ctx context.Context, filter ListFilter) ([]ProjectResponse, int64, error) {
	domainFilter := filter.toDomainFilter()

	projects, err := s.repo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	s.metrics.RecordRead(ctx, "project")
	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = *ToProjectResponse(&projects[i])
	}
	return responses, total, nil
}

// GetFeatured returns the featured projects, served from cache when warm
func (s *ProjectService) GetFeatured(ctx context.Context) ([]ProjectResponse, error) {
	if s.cache != nil {
		var cached []ProjectResponse
		err := s.cache.Get(ctx, "projects", &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("featured cache read failed", zap.Error(err))
		}
	}

	projects, err := s.repo.FindFeatured(ctx, content.FeaturedProjectLimit)
	if err != nil {
		return nil, err
	}

	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = *ToProjectResponse(&projects[i])
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, "projects", responses, featuredCacheTTL); err != nil {
			s.logger.Warn("featured cache write failed", zap.Error(err))
		}
	}
	s.metrics.RecordRead(ctx, "project")
	return responses, nil
}

// Update applies a partial update to a project
func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, req UpdateProjectRequest) (*ProjectResponse, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if err := project.Rename(*req.Title); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.LongDescription != nil {
		project.LongDescription = *req.LongDescription
	}
	if req.ImageURL != nil {
		project.ImageURL = *req.ImageURL
	}
	if req.DemoURL != nil {
		project.DemoURL = *req.DemoURL
	}
	if req.GithubURL != nil {
		project.GithubURL = *req.GithubURL
	}
	if req.TechStack != nil {
		project.TechStack = *req.TechStack
	}
	if req.Category != nil {
		project.Category = *req.Category
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.Featured != nil {
		project.Featured = *req.Featured
	}
	project.Touch()

	if err := s.repo.Save(ctx, project); err != nil {
		return nil, err
	}

	s.metrics.RecordWrite(ctx, "project", "update")
	s.invalidateFeatured(ctx)
	return ToProjectResponse(project), nil
}

// Delete removes a project
func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.metrics.RecordWrite(ctx, "project", "delete")
	s.invalidateFeatured(ctx)
	return nil
}

func (s *ProjectService) invalidateFeatured(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, "projects"); err != nil {
		s.logger.Warn("featured cache invalidation failed", zap.Error(err))
	}
}
