package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	contentapp "github.com/folio/backend/internal/application/content"
	identityapp "github.com/folio/backend/internal/application/identity"
	profileapp "github.com/folio/backend/internal/application/profile"
	"github.com/folio/backend/internal/infrastructure/auth"
	"github.com/folio/backend/internal/infrastructure/cache"
	"github.com/folio/backend/internal/infrastructure/config"
	"github.com/folio/backend/internal/infrastructure/logger"
	"github.com/folio/backend/internal/infrastructure/persistence"
	"github.com/folio/backend/internal/infrastructure/storage"
	"github.com/folio/backend/internal/infrastructure/telemetry"
	"github.com/folio/backend/internal/interfaces/http/handler"
	"github.com/folio/backend/internal/interfaces/http/middleware"
	"github.com/folio/backend/internal/interfaces/http/router"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting portfolio backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	ctx := context.Background()

	// Telemetry
	var tracerProvider *telemetry.TracerProvider
	var contentMetrics *telemetry.ContentMetrics
	if cfg.Telemetry.Enabled {
		tracerProvider, err = telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
		if err != nil {
			log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			if err := tracerProvider.Shutdown(context.Background()); err != nil {
				log.Error("Error shutting down tracer", zap.Error(err))
			}
		}()

		meterProvider, err := telemetry.NewMeterProvider(ctx, cfg.Telemetry, log)
		if err != nil {
			log.Fatal("Failed to initialize metrics", zap.Error(err))
		}
		defer func() {
			if err := meterProvider.Shutdown(context.Background()); err != nil {
				log.Error("Error shutting down meter", zap.Error(err))
			}
		}()

		contentMetrics, err = telemetry.NewContentMetrics(meterProvider.Meter("folio/content"))
		if err != nil {
			log.Fatal("Failed to create content metrics", zap.Error(err))
		}
	}

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	if cfg.Telemetry.Enabled {
		plugin := telemetry.NewDBTracingPlugin(telemetry.DefaultDBTracingConfig(), log)
		if err := plugin.RegisterOtelGorm(db.DB); err != nil {
			log.Warn("Failed to register database tracing", zap.Error(err))
		}
	}

	// Redis (token blacklist + featured cache); both degrade to in-memory
	var tokenBlacklist auth.TokenBlacklist
	var featuredCache cache.FeaturedCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer func() {
			_ = redisClient.Close()
		}()
		tokenBlacklist = auth.NewRedisTokenBlacklist(redisClient)
		featuredCache = cache.NewRedisFeaturedCache(redisClient)
		log.Info("Redis connected", zap.String("host", cfg.Redis.Host))
	} else {
		tokenBlacklist = auth.NewInMemoryTokenBlacklist()
		featuredCache = cache.NewInMemoryFeaturedCache()
	}

	// Media storage
	var mediaStorage contentapp.MediaStorage
	if cfg.Storage.Enabled {
		s3Storage, err := storage.NewS3MediaStorage(ctx, cfg.Storage)
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		if err := s3Storage.EnsureBucket(ctx); err != nil {
			log.Fatal("Failed to ensure storage bucket", zap.Error(err))
		}
		mediaStorage = s3Storage
		log.Info("Object storage ready", zap.String("bucket", cfg.Storage.Bucket))
	} else {
		mediaStorage = storage.NewStubMediaStorage()
	}

	// Repositories
	projectRepo := persistence.NewGormProjectRepository(db.DB)
	certRepo := persistence.NewGormCertificationRepository(db.DB)
	serviceRepo := persistence.NewGormServiceRepository(db.DB)
	blogRepo := persistence.NewGormBlogPostRepository(db.DB)
	aboutRepo := persistence.NewGormAboutRepository(db.DB)
	profileRepo := persistence.NewGormProfileRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, tokenBlacklist, log)
	projectService := contentapp.NewProjectService(projectRepo, featuredCache, contentMetrics, log)
	certService := contentapp.NewCertificationService(certRepo, contentMetrics, log)
	serviceService := contentapp.NewServiceService(serviceRepo, featuredCache, contentMetrics, log)
	blogService := contentapp.NewBlogService(blogRepo, contentMetrics, log)
	aboutService := profileapp.NewAboutService(aboutRepo, log)
	profileService := profileapp.NewProfileService(profileRepo, log)
	mediaService := contentapp.NewMediaService(mediaStorage, log)

	if err := authService.EnsureAdminAccount(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatal("Failed to bootstrap admin account", zap.Error(err))
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	if cfg.Telemetry.Enabled {
		engine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.MaxBodySize(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(limiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	routes := &router.APIRoutes{
		System:         handler.NewSystemHandler(db, version),
		Auth:           handler.NewAuthHandler(authService),
		Projects:       handler.NewProjectHandler(projectService),
		Certifications: handler.NewCertificationHandler(certService),
		Services:       handler.NewServiceHandler(serviceService),
		Blog:           handler.NewBlogHandler(blogService),
		About:          handler.NewAboutHandler(aboutService),
		Profile:        handler.NewProfileHandler(profileService),
		Media:          handler.NewMediaHandler(mediaService),
		AuthMiddleware: middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
			JWTService:     jwtService,
			TokenBlacklist: tokenBlacklist,
			Logger:         log,
		}),
		AdminMiddleware: middleware.RequireAdmin(cfg.Admin.Email),
	}
	router.NewRouter(engine, router.WithAPIVersion("v1")).Register(routes).Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited gracefully")
}
