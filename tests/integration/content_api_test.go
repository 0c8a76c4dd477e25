package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contentapp "github.com/folio/backend/internal/application/content"
	identityapp "github.com/folio/backend/internal/application/identity"
	profileapp "github.com/folio/backend/internal/application/profile"
	"github.com/folio/backend/internal/domain/identity"
	"github.com/folio/backend/internal/infrastructure/auth"
	"github.com/folio/backend/internal/infrastructure/cache"
	"github.com/folio/backend/internal/infrastructure/config"
	"github.com/folio/backend/internal/infrastructure/persistence"
	"github.com/folio/backend/internal/interfaces/http/handler"
	"github.com/folio/backend/internal/interfaces/http/middleware"
	"github.com/folio/backend/internal/interfaces/http/router"
)

const (
	testAdminEmail    = "owner@folio.dev"
	testAdminPassword = "s3cretpass"
)

// TestServer wraps the migrated database and the wired HTTP engine.
type TestServer struct {
	DB     *TestDB
	Engine *gin.Engine
}

// NewTestServer wires the full stack over a containerized database.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	gin.SetMode(gin.TestMode)
	testDB := NewTestDB(t)

	projectRepo := persistence.NewGormProjectRepository(testDB.DB)
	certRepo := persistence.NewGormCertificationRepository(testDB.DB)
	serviceRepo := persistence.NewGormServiceRepository(testDB.DB)
	blogRepo := persistence.NewGormBlogPostRepository(testDB.DB)
	aboutRepo := persistence.NewGormAboutRepository(testDB.DB)
	profileRepo := persistence.NewGormProfileRepository(testDB.DB)
	userRepo := persistence.NewGormUserRepository(testDB.DB)

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "integration-test-secret-not-for-prod",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "folio-test",
	})
	blacklist := auth.NewInMemoryTokenBlacklist()
	featuredCache := cache.NewInMemoryFeaturedCache()

	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, nil)
	require.NoError(t, authService.EnsureAdminAccount(context.Background(), testAdminEmail, testAdminPassword))

	routes := &router.APIRoutes{
		System:         handler.NewSystemHandler(testDB.SqlDB, "test"),
		Auth:           handler.NewAuthHandler(authService),
		Projects:       handler.NewProjectHandler(contentapp.NewProjectService(projectRepo, featuredCache, nil, nil)),
		Certifications: handler.NewCertificationHandler(contentapp.NewCertificationService(certRepo, nil, nil)),
		Services:       handler.NewServiceHandler(contentapp.NewServiceService(serviceRepo, featuredCache, nil, nil)),
		Blog:           handler.NewBlogHandler(contentapp.NewBlogService(blogRepo, nil, nil)),
		About:          handler.NewAboutHandler(profileapp.NewAboutService(aboutRepo, nil)),
		Profile:        handler.NewProfileHandler(profileapp.NewProfileService(profileRepo, nil)),
		AuthMiddleware: middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
			JWTService:     jwtService,
			TokenBlacklist: blacklist,
		}),
		AdminMiddleware: middleware.RequireAdmin(testAdminEmail),
	}

	engine := gin.New()
	router.NewRouter(engine, router.WithAPIVersion("v1")).Register(routes).Setup()

	return &TestServer{DB: testDB, Engine: engine}
}

// Request issues one HTTP request against the test server.
func (ts *TestServer) Request(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		raw, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.Engine.ServeHTTP(w, req)
	return w
}

// APIResponse mirrors the response envelope. Error is a string.
type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error,omitempty"`
	Code    string          `json:"code,omitempty"`
	Meta    *struct {
		Total    int64 `json:"total"`
		Page     int   `json:"page"`
		PageSize int   `json:"page_size"`
	} `json:"meta,omitempty"`
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// signInAdmin signs in with the bootstrapped admin and returns the token.
func (ts *TestServer) signInAdmin(t *testing.T) string {
	t.Helper()
	w := ts.Request(http.MethodPost, "/api/v1/auth/signin", "", map[string]string{
		"email":    testAdminEmail,
		"password": testAdminPassword,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	resp := decodeResponse(t, w)
	require.NoError(t, json.Unmarshal(resp.Data, &payload))
	require.NotEmpty(t, payload.AccessToken)
	return payload.AccessToken
}

func TestProjectAPI_AdminCRUD(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ts := NewTestServer(t)
	token := ts.signInAdmin(t)

	// Create derives the slug from the title.
	w := ts.Request(http.MethodPost, "/api/v1/projects", token, map[string]interface{}{
		"title":       "My New Project!",
		"description": "Integration test project",
		"tech_stack":  []string{"Go"},
		"featured":    true,
		"status":      "completed",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created contentapp.ProjectResponse
	resp := decodeResponse(t, w)
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	assert.Equal(t, "my-new-project", created.Slug)

	// Public read round-trips the same record.
	w = ts.Request(http.MethodGet, "/api/v1/projects/my-new-project", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched contentapp.ProjectResponse
	resp = decodeResponse(t, w)
	require.NoError(t, json.Unmarshal(resp.Data, &fetched))
	assert.Equal(t, created.ID, fetched.ID)

	// Rename re-derives the slug, id and created_at survive.
	w = ts.Request(http.MethodPut, "/api/v1/projects/"+created.ID, token, map[string]string{
		"title": "Renamed Project",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated contentapp.ProjectResponse
	resp = decodeResponse(t, w)
	require.NoError(t, json.Unmarshal(resp.Data, &updated))
	assert.Equal(t, "renamed-project", updated.Slug)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt.UTC(), updated.CreatedAt.UTC())

	// Featured listing includes the record and caps its size.
	w = ts.Request(http.MethodGet, "/api/v1/projects/featured", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var featured []contentapp.ProjectResponse
	resp = decodeResponse(t, w)
	require.NoError(t, json.Unmarshal(resp.Data, &featured))
	require.Len(t, featured, 1)
	assert.True(t, featured[0].Featured)

	// Delete removes it.
	w = ts.Request(http.MethodDelete, "/api/v1/projects/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = ts.Request(http.MethodGet, "/api/v1/projects/renamed-project", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBlogAPI_ViewsIncrementPerRead(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ts := NewTestServer(t)
	token := ts.signInAdmin(t)

	w := ts.Request(http.MethodPost, "/api/v1/blog-posts", token, map[string]interface{}{
		"title":     "Counting Views",
		"excerpt":   "Each read adds one.",
		"content":   []map[string]string{{"type": "paragraph", "text": "body"}},
		"published": true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	const reads = 5
	var last contentapp.BlogPostResponse
	for i := 0; i < reads; i++ {
		w = ts.Request(http.MethodGet, "/api/v1/blog-posts/counting-views", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		require.NoError(t, json.Unmarshal(resp.Data, &last))
	}
	assert.Equal(t, int64(reads), last.Views)

	// The counter is persisted, not just echoed.
	var stored int64
	require.NoError(t, ts.DB.DB.Raw("SELECT views FROM blog_posts WHERE slug = ?", "counting-views").Scan(&stored).Error)
	assert.Equal(t, int64(reads), stored)
}

func TestBlogAPI_DraftHiddenFromPublic(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ts := NewTestServer(t)
	token := ts.signInAdmin(t)

	w := ts.Request(http.MethodPost, "/api/v1/blog-posts", token, map[string]interface{}{
		"title":     "Unfinished Draft",
		"published": false,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = ts.Request(http.MethodGet, "/api/v1/blog-posts/unfinished-draft", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.Request(http.MethodGet, "/api/v1/blog-posts", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "unfinished-draft")

	w = ts.Request(http.MethodGet, "/api/v1/admin/blog-posts", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "unfinished-draft")
}

func TestWriteGating(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ts := NewTestServer(t)

	// No token: 401 with the exact error string.
	w := ts.Request(http.MethodPost, "/api/v1/projects", "", map[string]string{"title": "x"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "Unauthorized", resp.Error)

	// Authenticated viewer: 403.
	viewer, err := identity.NewUser("viewer@folio.dev", "viewerpass", identity.RoleViewer)
	require.NoError(t, err)
	require.NoError(t, persistence.NewGormUserRepository(ts.DB.DB).Save(context.Background(), viewer))

	w = ts.Request(http.MethodPost, "/api/v1/auth/signin", "", map[string]string{
		"email":    "viewer@folio.dev",
		"password": "viewerpass",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var payload struct {
		AccessToken string `json:"access_token"`
	}
	resp = decodeResponse(t, w)
	require.NoError(t, json.Unmarshal(resp.Data, &payload))

	w = ts.Request(http.MethodPost, "/api/v1/projects", payload.AccessToken, map[string]string{"title": "x"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAboutSingleton_Upsert(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ts := NewTestServer(t)
	token := ts.signInAdmin(t)

	// Empty document before first save.
	w := ts.Request(http.MethodGet, "/api/v1/about", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.Request(http.MethodPut, "/api/v1/about", token, map[string]interface{}{
		"skills": []map[string]interface{}{{"name": "Go", "level": 90, "category": "backend"}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = ts.Request(http.MethodGet, "/api/v1/about", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Go"`)

	// Second PUT replaces only the submitted section.
	w = ts.Request(http.MethodPut, "/api/v1/about", token, map[string]interface{}{
		"personal_info": map[string]string{"name": "Author"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.Request(http.MethodGet, "/api/v1/about", "", nil)
	body := w.Body.String()
	assert.Contains(t, body, `"name":"Go"`)
	assert.Contains(t, body, `"name":"Author"`)
}

func TestSearchAndFilters(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ts := NewTestServer(t)
	token := ts.signInAdmin(t)

	for i, seed := range []struct {
		title    string
		category string
		status   string
	}{
		{"Alpha Service Tool", "tooling", "completed"},
		{"Beta Web App", "web", "completed"},
		{"Gamma Web Experiment", "web", "draft"},
	} {
		w := ts.Request(http.MethodPost, "/api/v1/projects", token, map[string]interface{}{
			"title":    seed.title,
			"category": seed.category,
			"status":   seed.status,
		})
		require.Equal(t, http.StatusCreated, w.Code, "project %d: %s", i, w.Body.String())
	}

	// Category equality filter.
	w := ts.Request(http.MethodGet, "/api/v1/projects?category=web", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(2), resp.Meta.Total)

	// Combined with status.
	w = ts.Request(http.MethodGet, "/api/v1/projects?category=web&status=draft", "", nil)
	resp = decodeResponse(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(1), resp.Meta.Total)

	// ILIKE search needs a real postgres, which is the point of this suite.
	w = ts.Request(http.MethodGet, "/api/v1/projects?search=alpha", "", nil)
	resp = decodeResponse(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(1), resp.Meta.Total)
}
