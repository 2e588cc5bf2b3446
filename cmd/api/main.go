package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-api/config"
	"github.com/mentorhub/mentorhub-api/internal/directory"
	"github.com/mentorhub/mentorhub-api/internal/handlers"
	"github.com/mentorhub/mentorhub-api/internal/kvstore"
	"github.com/mentorhub/mentorhub-api/internal/middleware"
	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/repository"
	"github.com/mentorhub/mentorhub-api/internal/services"
	"github.com/mentorhub/mentorhub-api/pkg/db"
	"github.com/mentorhub/mentorhub-api/pkg/jwt"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
	"github.com/mentorhub/mentorhub-api/pkg/profiling"
	"github.com/mentorhub/mentorhub-api/pkg/tracing"
)

// repositories bundles the persistence layer for whichever backend is active
type repositories struct {
	mentors  repository.MentorRepository
	bookings repository.BookingRepository
	progress repository.ProgressRepository
	ready    func() error
}

// buildRepositories selects the persistence backend. Offline mode serves
// everything from the local key/value store; otherwise PostgreSQL.
func buildRepositories(cfg *config.Config, store *kvstore.Store) (*repositories, func(), error) {
	if cfg.Database.WorkOffline {
		logger.Info("Running in offline mode: using local key/value store",
			zap.String("snapshot_path", cfg.LocalStore.SnapshotPath))

		if cfg.Server.SeedDemoData {
			if err := repository.SeedLocalData(store); err != nil {
				return nil, nil, fmt.Errorf("failed to seed local store: %w", err)
			}
		}

		return &repositories{
			mentors:  repository.NewLocalMentorRepository(store),
			bookings: repository.NewLocalBookingRepository(store),
			progress: repository.NewLocalProgressRepository(store),
			ready:    func() error { return nil },
		}, func() {}, nil
	}

	pool, err := db.NewPool(context.Background(), db.PoolConfig{
		URL:      cfg.Database.URL,
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database connection pool: %w", err)
	}

	ready := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return pool.Ping(ctx)
	}

	return &repositories{
		mentors:  repository.NewPostgresMentorRepository(pool),
		bookings: repository.NewPostgresBookingRepository(pool),
		progress: repository.NewPostgresProgressRepository(pool),
		ready:    ready,
	}, pool.Close, nil
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting MentorHub API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
		zap.Bool("offline", cfg.Database.WorkOffline),
	)

	// Initialize distributed tracing (no-op when no endpoint is configured)
	tracerShutdown, err := tracing.InitTracer(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceVersion,
		cfg.Server.AppEnv,
		cfg.Observability.ExporterEndpoint,
	)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	// Continuous profiling, off by default
	stopProfiler, err := profiling.InitProfiler(profiling.Config{
		Enabled:               cfg.Profiling.Enabled,
		Endpoint:              cfg.Profiling.Endpoint,
		AppName:               cfg.Profiling.AppName,
		SampleTypes:           cfg.Profiling.SampleTypes,
		UploadIntervalSeconds: cfg.Profiling.UploadIntervalSeconds,
	}, cfg.Observability.ServiceName, cfg.Observability.ServiceVersion, cfg.Server.AppEnv)
	if err != nil {
		logger.Fatal("Failed to initialize profiler", zap.Error(err))
	}
	defer stopProfiler()

	// Start infrastructure metrics collection
	metrics.RecordInfrastructureMetrics()

	// The local store always exists: the offline variant keeps all records in
	// it, and both variants use it for the remembered session state.
	store := kvstore.New(cfg.LocalStore.SnapshotPath)

	repos, closeRepos, err := buildRepositories(cfg, store)
	if err != nil {
		logger.Fatal("Failed to initialize persistence", zap.Error(err))
	}
	defer closeRepos()

	// Demo account directory, reseeded on every start
	var users *directory.UserDirectory
	if cfg.Server.SeedDemoData {
		users = directory.NewSeeded()
	} else {
		users = directory.New()
	}
	logger.Info("User directory ready", zap.Int("accounts", users.Count()))

	tokenManager := jwt.NewTokenManager(cfg.Session.JWTSecret, cfg.Session.JWTIssuer, cfg.Session.SessionTTLHours)

	// Services
	mentorService := services.NewMentorService(repos.mentors)
	bookingService := services.NewBookingService(repos.bookings, repos.mentors)
	authService := services.NewAuthService(users, tokenManager, store)
	progressService := services.NewProgressService(repos.progress)

	// Handlers
	ttlSeconds := cfg.Session.SessionTTLHours * 3600
	mentorHandler := handlers.NewMentorHandler(mentorService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	authHandler := handlers.NewAuthHandler(authService, ttlSeconds, cfg.Session.CookieDomain, cfg.Session.CookieSecure)
	progressHandler := handlers.NewProgressHandler(progressService)
	healthHandler := handlers.NewHealthHandler(repos.ready)

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "traceparent", "tracestate"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true, // Required for the session cookie
		MaxAge:           12 * time.Hour,
	}))

	// Rate limiters: tighter on auth to slow credential guessing
	generalRateLimiter := middleware.NewRateLimiter(100, 200) // 100 req/sec, burst of 200
	authRateLimiter := middleware.NewRateLimiter(2, 5)        // 2 req/sec, burst of 5

	sessionRequired := middleware.UserSessionMiddleware(tokenManager, cfg.Session.CookieDomain, cfg.Session.CookieSecure)
	adminOnly := middleware.RequireRole(models.RoleAdmin)
	bodyLimit := middleware.BodySizeLimitMiddleware(100 * 1024)

	api := router.Group("/api")
	api.Use(generalRateLimiter.Middleware())

	// Operational endpoints
	api.GET("/healthcheck", healthHandler.Healthcheck)
	api.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Mentor registry: reads are public, mutations are admin only
	api.GET("/mentors", mentorHandler.List)
	api.GET("/mentors/:id", mentorHandler.GetByID)
	api.POST("/mentors", bodyLimit, sessionRequired, adminOnly, mentorHandler.Create)
	api.PUT("/mentors/:id", bodyLimit, sessionRequired, adminOnly, mentorHandler.Update)
	api.DELETE("/mentors/:id", sessionRequired, adminOnly, mentorHandler.Delete)

	// Booking ledger: role rules live in the service
	api.GET("/bookings", sessionRequired, bookingHandler.List)
	api.POST("/bookings", bodyLimit, sessionRequired, bookingHandler.Create)
	api.PATCH("/bookings/:id", bodyLimit, sessionRequired, bookingHandler.UpdateStatus)
	api.DELETE("/bookings/:id", sessionRequired, bookingHandler.Delete)

	// Progress notes
	api.GET("/progress", sessionRequired, progressHandler.List)
	api.POST("/progress", bodyLimit, sessionRequired, progressHandler.Append)

	// Auth
	auth := router.Group("/api/auth")
	auth.POST("/login", authRateLimiter.Middleware(), bodyLimit, authHandler.Login)
	auth.POST("/register", authRateLimiter.Middleware(), bodyLimit, authHandler.Register)
	auth.POST("/logout", authRateLimiter.Middleware(), authHandler.Logout)
	auth.GET("/session", generalRateLimiter.Middleware(), sessionRequired, authHandler.Session)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
