package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	_ "github.com/tendersaarthi/tendersaarthi-api/api/swagger"
	"github.com/tendersaarthi/tendersaarthi-api/internal/catalog"
	"github.com/tendersaarthi/tendersaarthi-api/internal/handler"
	"github.com/tendersaarthi/tendersaarthi-api/internal/repository"
	"github.com/tendersaarthi/tendersaarthi-api/internal/router"
	"github.com/tendersaarthi/tendersaarthi-api/internal/service"
	"github.com/tendersaarthi/tendersaarthi-api/pkg/cache"
	"github.com/tendersaarthi/tendersaarthi-api/pkg/config"
	"github.com/tendersaarthi/tendersaarthi-api/pkg/database"
	"github.com/tendersaarthi/tendersaarthi-api/pkg/logger"
	"github.com/tendersaarthi/tendersaarthi-api/pkg/messaging"
	"github.com/tendersaarthi/tendersaarthi-api/pkg/middleware/ratelimit"
)

// @title TenderSaarthi API
// @version 1.0.0
// @description Public tender listings, tender posting, bookmarks and alerts.
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if err := run(cfg, logr); err != nil {
		logr.Fatal("server failed", zap.Error(err))
	}
}

func run(cfg *config.Config, logr *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.Database.AutoMigrate {
		if err := migrateUp(cfg.Database, logr); err != nil {
			return err
		}
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	cat, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	validate := validator.New()
	metrics := service.NewMetricsService()

	users := repository.NewUserRepository(db)
	tenders := repository.NewTenderRepository(db)
	saved := repository.NewSavedTenderRepository(db)
	alerts := repository.NewAlertRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, "tendersaarthi", logr)

	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Listing.CacheTTL, logr, cfg.Listing.CacheEnabled && redisClient != nil)
	listingSvc := service.NewListingService(tenders, cacheSvc, metrics, cat, logr, service.ListingConfig{
		CacheTTL:        cfg.Listing.CacheTTL,
		DefaultMaxValue: cfg.Listing.DefaultMaxValue,
	})
	authSvc := service.NewAuthService(users, validate, logr, service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		AccessTokenExpiry:  cfg.JWT.Expiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		Issuer:             cfg.JWT.Issuer,
	})

	var notifier service.PublishNotifier
	if cfg.Alerts.Enabled {
		dispatcher, closePublisher, err := newDispatcher(cfg.Alerts, tenders, alerts, metrics, logr)
		if err != nil {
			return err
		}
		defer closePublisher()
		dispatcher.Start(ctx)
		defer dispatcher.Stop()
		notifier = dispatcher
	}

	tenderSvc := service.NewTenderService(tenders, users, listingSvc, notifier, cat, validate, logr)
	savedSvc := service.NewSavedTenderService(saved, tenders, logr)
	alertSvc := service.NewAlertService(alerts, cat, validate, logr)
	exportSvc := service.NewExportService(tenders, metrics, logr, service.ExportConfig{MaxRows: cfg.Exports.MaxRows})

	var limiter *ratelimit.KeyLimiter
	if cfg.RateLimit.Enabled {
		limiter = ratelimit.NewKeyLimiter(cfg.RateLimit.RequestsPerSec, cfg.RateLimit.Burst)
	}

	engine := router.New(router.Handlers{
		Auth:     handler.NewAuthHandler(authSvc),
		Listings: handler.NewListingHandler(listingSvc, exportSvc),
		Tenders:  handler.NewTenderHandler(tenderSvc),
		Saved:    handler.NewSavedTenderHandler(savedSvc),
		Alerts:   handler.NewAlertHandler(alertSvc),
		Metrics: handler.NewMetricsHandler(metrics, map[string]handler.Pinger{
			"database": db.PingContext,
			"redis":    cacheRepo.Ping,
		}),
	}, router.Options{
		APIPrefix:      cfg.APIPrefix,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		EnableDocs:     cfg.Env != config.EnvProduction,
		Tokens:         authSvc,
		Audit:          users,
		Metrics:        metrics,
		Limiter:        limiter,
		Logger:         logr,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func migrateUp(cfg config.DatabaseConfig, logr *zap.Logger) error {
	migrator, err := database.NewMigrator(cfg)
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	defer migrator.Close() //nolint:errcheck

	if err := migrator.Up(); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	version, dirty, err := migrator.Version()
	if err == nil {
		logr.Info("migrations applied", zap.Uint("version", version), zap.Bool("dirty", dirty))
	}
	return nil
}

// newDispatcher publishes alerts to AMQP when a broker is configured and only logs them otherwise.
func newDispatcher(cfg config.AlertsConfig, tenders *repository.TenderRepository, prefs *repository.AlertRepository, metrics *service.MetricsService, logr *zap.Logger) (*service.AlertDispatcher, func(), error) {
	var publisher messaging.Publisher = messaging.NewLogPublisher(logr)
	if cfg.AMQPURL != "" {
		amqpPublisher, err := messaging.NewAMQPPublisher(messaging.AMQPConfig{
			URL:      cfg.AMQPURL,
			Exchange: cfg.Exchange,
		}, logr)
		if err != nil {
			return nil, nil, fmt.Errorf("connect alert exchange: %w", err)
		}
		publisher = amqpPublisher
	}

	dispatcher := service.NewAlertDispatcher(tenders, prefs, publisher, metrics, logr, service.AlertDispatcherConfig{
		Workers:    cfg.Workers,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: 2 * time.Second,
	})
	closePublisher := func() {
		if err := publisher.Close(); err != nil {
			logr.Warn("failed to close alert publisher", zap.Error(err))
		}
	}
	return dispatcher, closePublisher, nil
}
