package content

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/folio/backend/internal/domain/content"
	"github.com/folio/backend/internal/domain/shared"
	"github.com/folio/backend/internal/infrastructure/cache"
	"github.com/folio/backend/internal/infrastructure/telemetry"
)

// ServiceService handles service-offering use cases
type ServiceService struct {
	repo    content.ServiceRepository
	cache   cache.FeaturedCache
	metrics *telemetry.ContentMetrics
	logger  *zap.Logger
}

// NewServiceService creates a new service-offering service. cache may be nil.
func NewServiceService(repo content.ServiceRepository, featuredCache cache.FeaturedCache, metrics *telemetry.ContentMetrics, logger *zap.Logger) *ServiceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ServiceService{
		repo:    repo,
		cache:   featuredCache,
		metrics: metrics,
		logger:  logger,
	}
}

// Create creates a new service offering
func (s *ServiceService) Create(ctx context.Context, req CreateServiceRequest) (*ServiceResponse, error) {
	svc, err := content.NewService(req.Title)
	if err != nil {
		return nil, err
	}

	svc.Description = req.Description
	svc.LongDescription = req.LongDescription
	svc.ImageURL = req.ImageURL
	svc.Category = req.Category
	if req.Features != nil {
		svc.Features = req.Features
	}
	if req.Tools != nil {
		svc.Tools = req.Tools
	}
	svc.Duration = req.Duration
	svc.Availability = req.Availability
	if req.Status != "" {
		svc.Status = req.Status
	}
	svc.Featured = req.Featured
	if req.Price != "" {
		price, err := parsePrice(req.Price)
		if err != nil {
			return nil, err
		}
		if err := svc.SetPrice(price); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Save(ctx, svc); err != nil {
		return nil, err
	}

	s.metrics.RecordWrite(ctx, "service", "create")
	s.invalidateFeatured(ctx)
	return ToServiceResponse(svc), nil
}

// GetByID returns a service offering by ID
func (s *ServiceService) GetByID(ctx context.Context, id uuid.UUID) (*ServiceResponse, error) {
	svc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordRead(ctx, "service")
	return ToServiceResponse(svc), nil
}

// GetBySlug returns a service offering by slug
func (s *ServiceService) GetBySlug(ctx context.Context, slug string) (*ServiceResponse, error) {
	svc, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordRead(ctx, "service")
	return ToServiceResponse(svc), nil
}

// List returns service offerings matching the filter with the total count
func (s *ServiceService) List(ctx context.Context, filter ListFilter) ([]ServiceResponse, int64, error) {
	domainFilter := filter.toDomainFilter()

	services, err := s.repo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	s.metrics.RecordRead(ctx, "service")
	responses := make([]ServiceResponse, len(services))
	for i := range services {
		responses[i] = *ToServiceResponse(&services[i])
	}
	return responses, total, nil
}

// GetFeatured returns the featured service offerings, served from cache when warm
func (s *ServiceService) GetFeatured(ctx context.Context) ([]ServiceResponse, error) {
	if s.cache != nil {
		var cached []ServiceResponse
		err := s.cache.Get(ctx, "services", &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("featured cache read failed", zap.Error(err))
		}
	}

	services, err := s.repo.FindFeatured(ctx, content.FeaturedServiceLimit)
	if err != nil {
		return nil, err
	}

	responses := make([]ServiceResponse, len(services))
	for i := range services {
		responses[i] = *ToServiceResponse(&services[i])
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, "services", responses, featuredCacheTTL); err != nil {
			s.logger.Warn("featured cache write failed", zap.Error(err))
		}
	}
	s.metrics.RecordRead(ctx, "service")
	return responses, nil
}

// Update applies a partial update to a service offering
func (s *ServiceService) Update(ctx context.Context, id uuid.UUID, req UpdateServiceRequest) (*ServiceResponse, error) {
	svc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if err := svc.Rename(*req.Title); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.LongDescription != nil {
		svc.LongDescription = *req.LongDescription
	}
	if req.ImageURL != nil {
		svc.ImageURL = *req.ImageURL
	}
	if req.Category != nil {
		svc.Category = *req.Category
	}
	if req.Features != nil {
		svc.Features = *req.Features
	}
	if req.Tools != nil {
		svc.Tools = *req.Tools
	}
	if req.Duration != nil {
		svc.Duration = *req.Duration
	}
	if req.Availability != nil {
		svc.Availability = *req.Availability
	}
	if req.Status != nil {
		svc.Status = *req.Status
	}
	if req.Featured != nil {
		svc.Featured = *req.Featured
	}
	if req.Price != nil {
		price, err := parsePrice(*req.Price)
		if err != nil {
			return nil, err
		}
		if err := svc.SetPrice(price); err != nil {
			return nil, err
		}
	}
	svc.Touch()

	if err := s.repo.Save(ctx, svc); err != nil {
		return nil, err
	}

	s.metrics.RecordWrite(ctx, "service", "update")
	s.invalidateFeatured(ctx)
	return ToServiceResponse(svc), nil
}

// Delete removes a service offering
func (s *ServiceService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.metrics.RecordWrite(ctx, "service", "delete")
	s.invalidateFeatured(ctx)
	return nil
}

func (s *ServiceService) invalidateFeatured(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, "services"); err != nil {
		s.logger.Warn("featured cache invalidation failed", zap.Error(err))
	}
}

// parsePrice parses a decimal price submitted as a string
func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, shared.NewDomainError("INVALID_INPUT", "Price must be a decimal number")
	}
	return price, nil
}
