package content

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/folio/backend/internal/domain/content"
	"github.com/folio/backend/internal/domain/shared"
	"github.com/folio/backend/internal/infrastructure/telemetry"
)

// BlogService handles blog post use cases
type BlogService struct {
	repo    content.BlogPostRepository
	metrics *telemetry.ContentMetrics
	logger  *zap.Logger
}

// NewBlogService creates a new blog service
func NewBlogService(repo content.BlogPostRepository, metrics *telemetry.ContentMetrics, logger *zap.Logger) *BlogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BlogService{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
}

// Create creates a new blog post
func (s *BlogService) Create(ctx context.Context, req CreateBlogPostRequest) (*BlogPostResponse, error) {
	post, err := content.NewBlogPost(req.Title)
	if err != nil {
		return nil, err
	}

	post.Excerpt = req.Excerpt
	post.Content = req.Content
	post.FeaturedImage = req.FeaturedImage
	post.Category = req.Category
	if req.Tags != nil {
		post.Tags = req.Tags
	}
	if req.Published {
		post.Publish()
	}

	if err := s.repo.Save(ctx, post); err != nil {
		return nil, err
	}

	s.metrics.RecordWrite(ctx, "blog_post", "create")
	return ToBlogPostResponse(post), nil
}

// GetByID returns a blog post by ID regardless of publication state
func (s *BlogService) GetByID(ctx context.Context, id uuid.UUID) (*BlogPostResponse, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordRead(ctx, "blog_post")
	return ToBlogPostResponse(post), nil
}

// GetPublishedBySlug returns a published post by slug and counts the view.
// Draft posts are indistinguishable from missing ones to public readers.
func (s *BlogService) GetPublishedBySlug(ctx context.Context, slug string) (*BlogPostResponse, error) {
	post, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !post.Published {
		return nil, shared.ErrNotFound
	}

	if err := s.repo.IncrementViews(ctx, post.ID); err != nil {
		s.logger.Warn("view increment failed", zap.String("slug", slug), zap.Error(err))
	} else {
		post.Views++
		s.metrics.RecordBlogView(ctx, slug)
	}

	s.metrics.RecordRead(ctx, "blog_post")
	return ToBlogPostResponse(post), nil
}

// List returns blog posts matching the filter with the total count
func (s *BlogService) List(ctx context.Context, filter ListFilter) ([]BlogPostResponse, int64, error) {
	return s.list(ctx, filter.toDomainFilter())
}

// ListPublished returns published posts only, for the public listing
func (s *BlogService) ListPublished(ctx context.Context, filter ListFilter) ([]BlogPostResponse, int64, error) {
	domainFilter := filter.toDomainFilter()
	domainFilter.Filters["published"] = true
	return s.list(ctx, domainFilter)
}

func (s *BlogService) list(ctx context.Context, filter shared.Filter) ([]BlogPostResponse, int64, error) {
	posts, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	s.metrics.RecordRead(ctx, "blog_post")
	responses := make([]BlogPostResponse, len(posts))
	for i := range posts {
		responses[i] = *ToBlogPostResponse(&posts[i])
	}
	return responses, total, nil
}

// Update applies a partial update to a blog post
func (s *BlogService) Update(ctx context.Context, id uuid.UUID, req UpdateBlogPostRequest) (*BlogPostResponse, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if err := post.Rename(*req.Title); err != nil {
			return nil, err
		}
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		post.Content = req.Content
	}
	if req.FeaturedImage != nil {
		post.FeaturedImage = *req.FeaturedImage
	}
	if req.Category != nil {
		post.Category = *req.Category
	}
	if req.Tags != nil {
		post.Tags = *req.Tags
	}
	if req.Published != nil {
		if *req.Published {
			post.Publish()
		} else {
			post.Unpublish()
		}
	}
	post.Touch()

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}

	s.metrics.RecordWrite(ctx, "blog_post", "update")
	return ToBlogPostResponse(post), nil
}

// Delete removes a blog post
func (s *BlogService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.metrics.RecordWrite(ctx, "blog_post", "delete")
	return nil
}
