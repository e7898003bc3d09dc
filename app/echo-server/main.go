package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appmetrics "idealPrice/app/echo-server/metrics"
	"idealPrice/app/echo-server/router"
	"idealPrice/business/pricing"
	_ "idealPrice/docs"
	"idealPrice/internal/middleware"
	fileRepo "idealPrice/internal/repository/file"
	psqlRepo "idealPrice/internal/repository/postgres"
	redisRepo "idealPrice/internal/repository/redis"
	sqliteRepo "idealPrice/internal/repository/sqlite"
	"idealPrice/internal/rest"
	"idealPrice/pkg/config"
	"idealPrice/pkg/database"
	redisdb "idealPrice/pkg/database/redis"
	"idealPrice/pkg/logger"
	"idealPrice/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitWithOptions(logger.Options{
		Environment: cfg.App.Environment,
		Level:       cfg.Log.Level,
		File:        cfg.Log.File,
	})
	logger.Info("Starting "+cfg.App.Name, "version", cfg.App.Version, "backend", cfg.Dataset.Backend)

	// Init repo
	var (
		datasetRepo pricing.DatasetRepository
		gormDB      *gorm.DB
		sqliteDB    *sql.DB
	)

	switch cfg.Dataset.Backend {
	case config.BackendPostgres:
		gormDB, err = database.InitPostgres(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to database", "error", err)
		}

		recordRepo := psqlRepo.NewProductRecordRepository(gormDB)
		if cfg.Dataset.AutoMigrate {
			if err := recordRepo.AutoMigrate(context.Background()); err != nil {
				logger.Fatal("Failed to migrate database", "error", err)
			}
		}
		datasetRepo = recordRepo
	case config.BackendSQLite:
		sqliteDB, err = database.OpenSQLite(cfg.Dataset.SQLitePath)
		if err != nil {
			logger.Fatal("Failed to open sqlite database", "error", err, "path", cfg.Dataset.SQLitePath)
		}
		datasetRepo = sqliteRepo.NewDatasetRepository(sqliteDB)
	default:
		datasetRepo = fileRepo.NewDatasetRepository(cfg.Dataset.Dir, cfg.Dataset.Format)
		logger.Info("Reading datasets from files", "dir", cfg.Dataset.Dir, "format", cfg.Dataset.Format)
	}

	var (
		redisClient  *redis.Client
		cacheControl rest.DatasetCacheInvalidator
	)
	if cfg.Redis.Enabled {
		redisClient, err = redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("Redis unavailable, serving datasets without cache", "error", err)
		} else {
			cache := redisRepo.NewDatasetCache(redisClient, datasetRepo, cfg.Redis.CacheTTL)
			datasetRepo = cache
			cacheControl = cache
			logger.Info("Dataset cache enabled", "ttl", cfg.Redis.CacheTTL)
		}
	}

	metrics.Init()
	appmetrics.Init(cfg.App.Version, cfg.App.Environment, cfg.Dataset.Backend, cacheControl != nil)

	// Init validate
	validate := validator.New()

	// Init service
	pricingService := pricing.NewPricingService(datasetRepo, pricing.Config{
		DisplayPrecision: cfg.Pricing.DisplayPrecision,
	})

	// Init handler
	pricingHandler := rest.NewPricingHandler(pricingService, validate, cfg.Server.RequestTimeout)
	datasetAdminHandler := rest.NewDatasetAdminHandler(pricingService, cacheControl, cfg.Server.RequestTimeout)
	healthHandler := rest.NewHealthHandler(cfg.App.Name, cfg.App.Version)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Metrics())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Setup routes
	router.SetupHealthRoutes(e, healthHandler)
	router.SetupPricingRoutes(e, pricingHandler)
	if !router.SetupDatasetAdminRoutes(e, datasetAdminHandler, cfg.JWT.SecretKey) {
		logger.Info("JWT_SECRET not set, admin dataset routes disabled")
	}

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if err := redisdb.CloseRedisClient(redisClient); err != nil {
		logger.Error("Redis close error", "error", err)
	}
	if err := database.ClosePostgres(gormDB); err != nil {
		logger.Error("Database close error", "error", err)
	}
	if sqliteDB != nil {
		if err := sqliteDB.Close(); err != nil {
			logger.Error("SQLite close error", "error", err)
		}
	}

	logger.Info("Server stopped")
}
