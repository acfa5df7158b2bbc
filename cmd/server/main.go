package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/malabartrails/tours-backend/config"
	"github.com/malabartrails/tours-backend/internal/app/controller"
	"github.com/malabartrails/tours-backend/internal/app/repository"
	"github.com/malabartrails/tours-backend/internal/app/service"
	"github.com/malabartrails/tours-backend/internal/content"
	"github.com/malabartrails/tours-backend/internal/db"
	"github.com/malabartrails/tours-backend/internal/middleware"
	"github.com/malabartrails/tours-backend/internal/router"
	"github.com/malabartrails/tours-backend/internal/scheduler"
	"github.com/malabartrails/tours-backend/internal/storage"
	"github.com/malabartrails/tours-backend/pkg/logger"
	"github.com/malabartrails/tours-backend/pkg/redis"
	"github.com/malabartrails/tours-backend/pkg/sanitize"
)

const (
	visitorCleanupInterval = time.Minute
	visitorTTL             = 10 * time.Minute
	shutdownTimeout        = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logger.Initialize(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		EnableColor: cfg.Server.Environment == "development",
	})

	logger.Info("Starting tours backend", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   cfg.Log.Level,
	})

	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Migrate also seeds demo content into empty tables
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Without Redis the inquiry form still works, just without throttling
	var inquiryLimiter service.Limiter
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Warn("Redis unavailable, inquiry rate limiting disabled", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		inquiryLimiter = redis.NewInquiryLimiter(redis.GetClient(), cfg.RateLimit.InquiryPerHour)
		defer redis.Close()
	}

	resolver := content.NewResolver(sanitize.New(sanitize.Options{
		AllowedHosts:        cfg.Media.AllowedHosts,
		AllowedPathPrefixes: cfg.Media.AllowedPathPrefixes,
		PlaceholderURL:      cfg.Media.PlaceholderURL,
	}))

	// Repositories
	tourRepo := repository.NewTourRepository(db.GetDB())
	categoryRepo := repository.NewCategoryRepository(db.GetDB())
	destinationRepo := repository.NewDestinationRepository(db.GetDB())
	inquiryRepo := repository.NewInquiryRepository(db.GetDB())
	settingsRepo := repository.NewSiteSettingsRepository(db.GetDB())

	// Services
	tourService := service.NewTourService(tourRepo, resolver)
	categoryService := service.NewCategoryService(categoryRepo, tourRepo, resolver)
	destinationService := service.NewDestinationService(destinationRepo, resolver)
	searchService := service.NewSearchService(tourRepo, destinationRepo, resolver)
	inquiryService := service.NewInquiryService(inquiryRepo, inquiryLimiter)
	siteService := service.NewSiteService(settingsRepo, tourRepo, resolver)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	searchLimiter := middleware.NewIPRateLimiter(cfg.RateLimit.SearchPerSecond, cfg.RateLimit.SearchBurst)
	go searchLimiter.RunCleanup(ctx, visitorCleanupInterval, visitorTTL)

	var manifestScheduler *scheduler.ManifestScheduler
	if cfg.S3.Bucket != "" {
		s3Storage := storage.NewS3Storage(
			cfg.S3.Region,
			cfg.S3.Bucket,
			cfg.S3.AccessKeyID,
			cfg.S3.SecretAccessKey,
			cfg.S3.BaseURL,
		)
		manifestScheduler = scheduler.NewManifestScheduler(cfg.Scheduler.ManifestCron, tourService, s3Storage)
		if err := manifestScheduler.Start(); err != nil {
			logger.Fatal("Failed to start manifest scheduler", err)
		}
	} else {
		logger.Info("AWS_S3_BUCKET not set, manifest export disabled", nil)
	}

	r := router.NewRouter(
		controller.NewTourController(tourService),
		controller.NewCategoryController(categoryService),
		controller.NewDestinationController(destinationService),
		controller.NewSearchController(searchService),
		controller.NewInquiryController(inquiryService),
		controller.NewSiteController(siteService),
		searchLimiter,
		cfg,
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r.Setup(),
	}

	go func() {
		logger.Info("Server started successfully", map[string]interface{}{
			"address": srv.Addr,
			"pid":     os.Getpid(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", err)
	}
	if manifestScheduler != nil {
		manifestScheduler.Stop()
	}

	logger.Info("Server stopped successfully")
}
