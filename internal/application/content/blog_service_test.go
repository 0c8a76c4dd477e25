package content

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/folio/backend/internal/domain/content"
	"github.com/folio/backend/internal/domain/shared"
)

// MockBlogPostRepository is a mock implementation of BlogPostRepository
type MockBlogPostRepository struct {
	mock.Mock
}

func (m *MockBlogPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.BlogPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.BlogPost), args.Error(1)
}

func (m *MockBlogPostRepository) FindBySlug(ctx context.Context, slug string) (*content.BlogPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.BlogPost), args.Error(1)
}

func (m *MockBlogPostRepository) FindAll(ctx context.Context, filter shared.Filter) ([]content.BlogPost, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]content.BlogPost), args.Error(1)
}

func (m *MockBlogPostRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBlogPostRepository) Save(ctx context.Context, post *content.BlogPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockBlogPostRepository) Update(ctx context.Context, post *content.BlogPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockBlogPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBlogPostRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestBlogService_Create_PublishedStampsPublishedAt(t *testing.T) {
	repo := new(MockBlogPostRepository)
	svc := NewBlogService(repo, nil, nil)

	repo.On("Save", mock.Anything, mock.AnythingOfType("*content.BlogPost")).Return(nil)

	resp, err := svc.Create(context.Background(), CreateBlogPostRequest{
		Title:     "Hello World",
		Published: true,
		Tags:      []string{"go"},
	})

	require.NoError(t, err)
	assert.Equal(t, "hello-world", resp.Slug)
	assert.True(t, resp.Published)
	require.NotNil(t, resp.PublishedAt)
	repo.AssertExpectations(t)
}

func TestBlogService_Create_DraftHasNoPublishedAt(t *testing.T) {
	repo := new(MockBlogPostRepository)
	svc := NewBlogService(repo, nil, nil)

	repo.On("Save", mock.Anything, mock.AnythingOfType("*content.BlogPost")).Return(nil)

	resp, err := svc.Create(context.Background(), CreateBlogPostRequest{Title: "Draft Post"})

	require.NoError(t, err)
	assert.False(t, resp.Published)
	assert.Nil(t, resp.PublishedAt)
}

func TestBlogService_GetPublishedBySlug_IncrementsViews(t *testing.T) {
	repo := new(MockBlogPostRepository)
	svc := NewBlogService(repo, nil, nil)

	post, _ := content.NewBlogPost("Published Post")
	post.Publish()
	post.Views = 41

	repo.On("FindBySlug", mock.Anything, "published-post").Return(post, nil)
	repo.On("IncrementViews", mock.Anything, post.ID).Return(nil)

	resp, err := svc.GetPublishedBySlug(context.Background(), "published-post")

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.Views)
	repo.AssertExpectations(t)
}

func TestBlogService_GetPublishedBySlug_DraftLooksMissing(t *testing.T) {
	repo := new(MockBlogPostRepository)
	svc := NewBlogService(repo, nil, nil)

	post, _ := content.NewBlogPost("Secret Draft")
	repo.On("FindBySlug", mock.Anything, "secret-draft").Return(post, nil)

	_, err := svc.GetPublishedBySlug(context.Background(), "secret-draft")

	assert.ErrorIs(t, err, shared.ErrNotFound)
	repo.AssertNotCalled(t, "IncrementViews")
}

func TestBlogService_GetPublishedBySlug_IncrementFailureStillServes(t *testing.T) {
	repo := new(MockBlogPostRepository)
	svc := NewBlogService(repo, nil, nil)

	post, _ := content.NewBlogPost("Flaky Counter")
	post.Publish()
	post.Views = 7

	repo.On("FindBySlug", mock.Anything, "flaky-counter").Return(post, nil)
	repo.On("IncrementViews", mock.Anything, post.ID).Return(assert.AnError)

	resp, err := svc.GetPublishedBySlug(context.Background(), "flaky-counter")

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.Views)
}

func TestBlogService_ListPublished_ForcesPublishedFilter(t *testing.T) {
	repo := new(MockBlogPostRepository)
	svc := NewBlogService(repo, nil, nil)

	matchPublished := mock.MatchedBy(func(f shared.Filter) bool {
		v, ok := f.Filters["published"]
		return ok && v == true
	})
	repo.On("FindAll", mock.Anything, matchPublished).Return([]content.BlogPost{}, nil)
	repo.On("Count", mock.Anything, matchPublished).Return(int64(0), nil)

	_, total, err := svc.ListPublished(context.Background(), ListFilter{})

	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	repo.AssertExpectations(t)
}

func TestBlogService_Update_Unpublish(t *testing.T) {
	repo := new(MockBlogPostRepository)
	svc := NewBlogService(repo, nil, nil)

	post, _ := content.NewBlogPost("Live Post")
	post.Publish()
	originalPublishedAt := *post.PublishedAt

	repo.On("FindByID", mock.Anything, post.ID).Return(post, nil)
	repo.On("Update", mock.Anything, post).Return(nil)

	published := false
	resp, err := svc.Update(context.Background(), post.ID, UpdateBlogPostRequest{Published: &published})

	require.NoError(t, err)
	assert.False(t, resp.Published)
	// republishing later keeps the original publication date
	require.NotNil(t, resp.PublishedAt)
	assert.Equal(t, originalPublishedAt, *resp.PublishedAt)
}
