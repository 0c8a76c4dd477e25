package router

import (
	"github.com/gin-gonic/gin"

	"github.com/folio/backend/internal/interfaces/http/handler"
)

// APIRoutes wires the portfolio endpoints. Public reads carry no auth;
// mutating routes sit behind the JWT and admin middleware. Auth holds the
// token middleware alone so signed-in non-admins can still inspect their
// own session.
type APIRoutes struct {
	System         *handler.SystemHandler
	Auth           *handler.AuthHandler
	Projects       *handler.ProjectHandler
	Certifications *handler.CertificationHandler
	Services       *handler.ServiceHandler
	Blog           *handler.BlogHandler
	About          *handler.AboutHandler
	Profile        *handler.ProfileHandler
	Media          *handler.MediaHandler

	AuthMiddleware  gin.HandlerFunc
	AdminMiddleware gin.HandlerFunc
}

// RegisterRoutes implements RouteRegistrar
func (r *APIRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", r.System.Health)
	rg.GET("/ready", r.System.Ready)

	auth := rg.Group("/auth")
	{
		auth.POST("/signin", r.Auth.SignIn)
		auth.POST("/refresh", r.Auth.Refresh)
		auth.POST("/signout", r.AuthMiddleware, r.Auth.SignOut)
		auth.GET("/me", r.AuthMiddleware, r.Auth.Me)
	}

	rg.GET("/projects", r.Projects.List)
	rg.GET("/projects/featured", r.Projects.Featured)
	rg.GET("/projects/:slug", r.Projects.GetBySlug)

	rg.GET("/certifications", r.Certifications.List)
	rg.GET("/certifications/:slug", r.Certifications.GetBySlug)

	rg.GET("/services", r.Services.List)
	rg.GET("/services/featured", r.Services.Featured)
	rg.GET("/services/:slug", r.Services.GetBySlug)

	rg.GET("/blog-posts", r.Blog.List)
	rg.GET("/blog-posts/:slug", r.Blog.GetBySlug)

	rg.GET("/about", r.About.Get)
	rg.GET("/profile", r.Profile.Get)

	admin := rg.Group("", r.AuthMiddleware, r.AdminMiddleware)
	{
		admin.POST("/projects", r.Projects.Create)
		admin.PUT("/projects/:id", r.Projects.Update)
		admin.DELETE("/projects/:id", r.Projects.Delete)

		admin.POST("/certifications", r.Certifications.Create)
		admin.PUT("/certifications/:id", r.Certifications.Update)
		admin.DELETE("/certifications/:id", r.Certifications.Delete)

		admin.POST("/services", r.Services.Create)
		admin.PUT("/services/:id", r.Services.Update)
		admin.DELETE("/services/:id", r.Services.Delete)

		admin.POST("/blog-posts", r.Blog.Create)
		admin.PUT("/blog-posts/:id", r.Blog.Update)
		admin.DELETE("/blog-posts/:id", r.Blog.Delete)
		admin.GET("/admin/blog-posts", r.Blog.ListAll)

		admin.PUT("/about", r.About.Update)
		admin.PUT("/profile", r.Profile.Update)

		if r.Media != nil {
			admin.POST("/media/uploads", r.Media.RequestUpload)
			admin.GET("/media/download", r.Media.Download)
			admin.DELETE("/media", r.Media.Delete)
		}
	}
}
