package content

import (
	"context"

	"github.com/folio/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProjectRepository defines persistence operations for projects
type ProjectRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)
	FindBySlug(ctx context.Context, slug string) (*Project, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Project, error)
	FindFeatured(ctx context.Context, limit int) ([]Project, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CertificationRepository defines persistence operations for certifications
type CertificationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Certification, error)
	FindBySlug(ctx context.Context, slug string) (*Certification, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Certification, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, certification *Certification) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ServiceRepository defines persistence operations for service offerings
type ServiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Service, error)
	FindBySlug(ctx context.Context, slug string) (*Service, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Service, error)
	FindFeatured(ctx context.Context, limit int) ([]Service, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, service *Service) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BlogPostRepository defines persistence operations for blog posts
type BlogPostRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*BlogPost, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]BlogPost, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, post *BlogPost) error
	// Update overwrites an existing post except the views column, which is
	// owned by IncrementViews.
	Update(ctx context.Context, post *BlogPost) error
	Delete(ctx context.Context, id uuid.UUID) error
	// IncrementViews bumps the view counter by exactly one at the SQL level
	// so concurrent detail reads never lose an increment.
	IncrementViews(ctx context.Context, id uuid.UUID) error
}
