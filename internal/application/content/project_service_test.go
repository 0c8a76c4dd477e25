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
	"github.com/folio/backend/internal/infrastructure/cache"
)

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Project), args.Error(1)
}

func (m *MockProjectRepository) FindBySlug(ctx context.Context, slug string) (*content.Project, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Project), args.Error(1)
}

func (m *MockProjectRepository) FindAll(ctx context.Context, filter shared.Filter) ([]content.Project, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]content.Project), args.Error(1)
}

func (m *MockProjectRepository) FindFeatured(ctx context.Context, limit int) ([]content.Project, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]content.Project), args.Error(1)
}

func (m *MockProjectRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProjectRepository) Save(ctx context.Context, project *content.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestProjectService_Create(t *testing.T) {
	repo := new(MockProjectRepository)
	svc := NewProjectService(repo, nil, nil, nil)

	repo.On("Save", mock.Anything, mock.AnythingOfType("*content.Project")).Return(nil)

	resp, err := svc.Create(context.Background(), CreateProjectRequest{
		Title:       "Portfolio Site",
		Description: "Personal site",
		TechStack:   []string{"go", "react"},
		Featured:    true,
	})

	require.NoError(t, err)
	assert.Equal(t, "Portfolio Site", resp.Title)
	assert.Equal(t, "portfolio-site", resp.Slug)
	assert.Equal(t, []string{"go", "react"}, resp.TechStack)
	assert.True(t, resp.Featured)
	assert.Equal(t, string(content.ProjectStatusDraft), resp.Status)
	repo.AssertExpectations(t)
}

func TestProjectService_Create_EmptyTitle(t *testing.T) {
	repo := new(MockProjectRepository)
	svc := NewProjectService(repo, nil, nil, nil)

	_, err := svc.Create(context.Background(), CreateProjectRequest{Title: ""})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	repo.AssertNotCalled(t, "Save")
}

func TestProjectService_GetBySlug_NotFound(t *testing.T) {
	repo := new(MockProjectRepository)
	svc := NewProjectService(repo, nil, nil, nil)

	repo.On("FindBySlug", mock.Anything, "missing").Return(nil, shared.ErrNotFound)

	_, err := svc.GetBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestProjectService_List(t *testing.T) {
	repo := new(MockProjectRepository)
	svc := NewProjectService(repo, nil, nil, nil)

	p1, _ := content.NewProject("First")
	p2, _ := content.NewProject("Second")
	repo.On("FindAll", mock.Anything, mock.AnythingOfType("shared.Filter")).Return([]content.Project{*p1, *p2}, nil)
	repo.On("Count", mock.Anything, mock.AnythingOfType("shared.Filter")).Return(int64(2), nil)

	items, total, err := svc.List(context.Background(), ListFilter{Page: 1, PageSize: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	assert.Equal(t, "first", items[0].Slug)
	repo.AssertExpectations(t)
}

func TestProjectService_GetFeatured_CachesResult(t *testing.T) {
	repo := new(MockProjectRepository)
	featuredCache := cache.NewInMemoryFeaturedCache()
	svc := NewProjectService(repo, featuredCache, nil, nil)

	p, _ := content.NewProject("Showcase")
	p.Featured = true
	repo.On("FindFeatured", mock.Anything, content.FeaturedProjectLimit).Return([]content.Project{*p}, nil).Once()

	first, err := svc.GetFeatured(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	// second call must be served from cache; the mock allows one repo call only
	second, err := svc.GetFeatured(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	repo.AssertExpectations(t)
}

func TestProjectService_Update_RenameRederivesSlug(t *testing.T) {
	repo := new(MockProjectRepository)
	svc := NewProjectService(repo, nil, nil, nil)

	existing, _ := content.NewProject("Old Title")
	newTitle := "Brand New Title"
	featured := true

	repo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
	repo.On("Save", mock.Anything, existing).Return(nil)

	resp, err := svc.Update(context.Background(), existing.ID, UpdateProjectRequest{
		Title:    &newTitle,
		Featured: &featured,
	})

	require.NoError(t, err)
	assert.Equal(t, "Brand New Title", resp.Title)
	assert.Equal(t, "brand-new-title", resp.Slug)
	assert.True(t, resp.Featured)
	repo.AssertExpectations(t)
}

func TestProjectService_Update_InvalidatesFeaturedCache(t *testing.T) {
	repo := new(MockProjectRepository)
	featuredCache := cache.NewInMemoryFeaturedCache()
	svc := NewProjectService(repo, featuredCache, nil, nil)

	ctx := context.Background()
	p, _ := content.NewProject("Showcase")
	repo.On("FindFeatured", mock.Anything, content.FeaturedProjectLimit).Return([]content.Project{*p}, nil)
	_, err := svc.GetFeatured(ctx)
	require.NoError(t, err)

	repo.On("FindByID", mock.Anything, p.ID).Return(p, nil)
	repo.On("Save", mock.Anything, p).Return(nil)
	desc := "updated"
	_, err = svc.Update(ctx, p.ID, UpdateProjectRequest{Description: &desc})
	require.NoError(t, err)

	var cached []ProjectResponse
	err = featuredCache.Get(ctx, "projects", &cached)
	assert.ErrorIs(t, err, cache.ErrCacheMiss)
}

func TestProjectService_Delete(t *testing.T) {
	repo := new(MockProjectRepository)
	svc := NewProjectService(repo, nil, nil, nil)

	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), id))
	repo.AssertExpectations(t)
}
