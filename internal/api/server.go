package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/dhima/auto-run-ac/docs" // registers the swagger document
	"github.com/dhima/auto-run-ac/internal/api/handlers"
	"github.com/dhima/auto-run-ac/internal/api/middleware"
	"github.com/dhima/auto-run-ac/internal/logging"
	"github.com/dhima/auto-run-ac/internal/snapshot"
	"github.com/dhima/auto-run-ac/internal/storage"
	"github.com/dhima/auto-run-ac/internal/triggers"
	"github.com/dhima/auto-run-ac/pkg/config"
	"github.com/dhima/auto-run-ac/pkg/idgen"
	platformEvents "github.com/dhima/auto-run-ac/platform/events"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Deps are the collaborators the router serves from.
type Deps struct {
	Logger      logging.Logger
	Triggers    *triggers.Service
	Cache       handlers.SnapshotCache
	Checks      map[string]handlers.Pinger
	CORSOrigins []string
}

// Server owns the HTTP listener and every resource the API opened.
type Server struct {
	config    config.App
	logger    logging.Logger
	router    *gin.Engine
	store     *storage.Client
	kv        snapshot.KV
	cache     *snapshot.Sync
	publisher platformEvents.Publisher
}

// NewServer wires the API dependencies together from cfg.
func NewServer(ctx context.Context, cfg config.App) (*Server, error) {
	logger, err := logging.NewLogger(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	store, err := storage.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open trigger store: %w", err)
	}

	checks := map[string]handlers.Pinger{"database": store}

	kv, err := OpenKV(cfg)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	if redisKV, ok := kv.(*snapshot.RedisKV); ok {
		checks["cache"] = redisKV
	}

	publisher := NewPublisher(cfg, logger)

	cache := snapshot.NewSync(kv, publisher, logger, snapshot.Options{WriteTimeout: cfg.CacheWriteTimeout})
	cache.Start()

	s := &Server{
		config:    cfg,
		logger:    logger,
		store:     store,
		kv:        kv,
		cache:     cache,
		publisher: publisher,
	}
	s.router = NewRouter(Deps{
		Logger:      logger,
		Triggers:    triggers.NewService(store, idgen.UUIDGenerator{}, publisher, logger),
		Cache:       cache,
		Checks:      checks,
		CORSOrigins: cfg.CORSOrigins,
	})
	return s, nil
}

// OpenKV builds the snapshot cache backend named by the config.
func OpenKV(cfg config.App) (snapshot.KV, error) {
	if cfg.CacheBackend == config.CacheMemory {
		return snapshot.NewMemoryKV(), nil
	}
	kv, err := snapshot.NewRedisKV(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("open redis cache: %w", err)
	}
	return kv, nil
}

// NewPublisher returns a Kafka publisher when brokers are configured and a no-op otherwise.
func NewPublisher(cfg config.App, logger logging.Logger) platformEvents.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Info("no kafka brokers configured, change events disabled")
		return platformEvents.NopPublisher{}
	}
	return platformEvents.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, logger.Zap())
}

// NewRouter configures the Gin router with middleware and routes.
func NewRouter(deps Deps) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = logging.NewNoOpLogger()
	}
	zapLogger := deps.Logger.Zap()

	router := gin.New()

	// Recovery first so panics in later middleware are caught.
	router.Use(ginzap.RecoveryWithZap(zapLogger, true))
	router.Use(middleware.RequestID())
	router.Use(ginzap.GinzapWithConfig(zapLogger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{"/health", "/metrics"},
		Context: func(c *gin.Context) []zap.Field {
			return []zap.Field{zap.String("request_id", c.GetString(middleware.RequestIDKey))}
		},
	}))
	router.Use(middleware.Metrics())

	origins := deps.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Location", "X-Request-ID"},
		AllowCredentials: !containsWildcard(origins),
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", handlers.NewHealthHandler(deps.Logger, deps.Checks).Health)
	router.GET("/metrics", handlers.Metrics())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		defaults := handlers.NewDefaultTriggerHandler(deps.Logger, deps.Triggers)
		group := v1.Group("/defaultTriggers")
		{
			group.GET("", defaults.List)
			group.POST("", defaults.Create)
			group.GET("/:id", defaults.Get)
			group.PUT("/:id/time", defaults.UpdateTime)
			group.PUT("/:id/temp", defaults.UpdateTemp)
			group.PUT("/:id/acMode", defaults.UpdateACMode)
			group.PUT("/:id/acTemp", defaults.UpdateACTemp)
			group.DELETE("/:id", defaults.Delete)
		}

		dates := handlers.NewDateTriggerHandler(deps.Logger, deps.Triggers)
		group = v1.Group("/dateTriggers")
		{
			group.GET("", dates.List)
			group.POST("", dates.Create)
			group.GET("/:id", dates.Get)
			group.PUT("/:id/dateTime", dates.UpdateDateTime)
			group.PUT("/:id/temp", dates.UpdateTemp)
			group.PUT("/:id/acMode", dates.UpdateACMode)
			group.PUT("/:id/acTemp", dates.UpdateACTemp)
			group.DELETE("/:id", dates.Delete)
		}

		snapshots := handlers.NewSnapshotHandler(deps.Logger, deps.Cache)
		v1.GET("/cache/defaultTriggers", snapshots.Get)
		v1.PUT("/cache/defaultTriggers", snapshots.Put)
	}

	return router
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Serve starts the HTTP server and blocks until SIGINT or SIGTERM, then shuts down.
func (s *Server) Serve() error {
	addr := ":" + s.config.APIPort
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("starting API server",
			zap.String("address", addr),
			zap.String("environment", s.config.Environment),
			zap.String("database_driver", s.config.DatabaseDriver),
			zap.String("cache_backend", s.config.CacheBackend),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err, ok := <-serveErr:
		if ok {
			s.logger.Error("server stopped unexpectedly", zap.Error(err))
			s.Close(context.Background())
			return err
		}
	case <-quit:
	}
	s.logger.Info("shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		s.logger.Error("server forced to shutdown", zap.Error(err))
		s.Close(ctx)
		return err
	}
	s.Close(ctx)

	s.logger.Info("server stopped")
	if err := s.logger.Sync(); err != nil && !isStdSyncError(err) {
		return err
	}
	return nil
}

// Close drains pending cache writes and releases the store, cache and publisher.
func (s *Server) Close(ctx context.Context) {
	if err := s.cache.Close(ctx); err != nil {
		s.logger.Warn("snapshot writer did not drain", zap.Error(err))
	}
	if closer, ok := s.kv.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			s.logger.Error("failed to close cache connection", zap.Error(err))
		}
	}
	if closer, ok := s.publisher.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			s.logger.Error("failed to close event publisher", zap.Error(err))
		}
	}
	if err := s.store.Close(); err != nil {
		s.logger.Error("failed to close database connection", zap.Error(err))
	}
}

// isStdSyncError ignores the error zap returns when syncing a terminal.
func isStdSyncError(err error) bool {
	msg := err.Error()
	return msg == "sync /dev/stdout: invalid argument" || msg == "sync /dev/stderr: invalid argument"
}
