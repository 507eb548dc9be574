package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/newrelic"
	goredis "github.com/redis/go-redis/v9"

	"zipabout/internal/app"
	"zipabout/internal/clock"
	"zipabout/internal/config"
	"zipabout/internal/handler"
	"zipabout/internal/jobs"
	"zipabout/internal/redis"
	"zipabout/internal/repository"
	"zipabout/internal/repository/postgres"
	"zipabout/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before database so we can instrument DB).
	var nrApp *newrelic.Application
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			logger.Warn("failed to initialize New Relic", slog.String("error", err.Error()))
			nrApp = nil
		} else {
			logger.Info("New Relic enabled", slog.String("app", cfg.NewRelic.AppName))
		}
	}

	var db *sql.DB
	if cfg.Database.Enabled {
		db, err = app.NewDatabase(ctx, cfg.Database, nrApp)
		if err != nil {
			logger.Error("failed to connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer db.Close()
		logger.Info("connected to PostgreSQL rental archive")
	}

	var redisClient *goredis.Client
	if cfg.Redis.Enabled {
		redisClient, err = app.NewRedisClient(ctx, cfg.Redis, nrApp)
		if err != nil {
			logger.Error("failed to connect to redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisClient.Close()
		logger.Info("connected to Redis")
	}

	server, scheduler, err := wireServer(ctx, cfg, db, redisClient, nrApp, logger)
	if err != nil {
		logger.Error("failed to wire server", slog.String("error", err.Error()))
		os.Exit(1)
	}
	scheduler.Start()

	// Start server in goroutine.
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
		logger.Info("shutting down server")
	case err := <-errCh:
		logger.Error("server error", slog.String("error", err.Error()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", slog.String("error", err.Error()))
	}
	scheduler.Stop()
	if nrApp != nil {
		nrApp.Shutdown(5 * time.Second)
	}

	logger.Info("server exited")
}

// wireServer wires all dependencies and returns the HTTP server and the report scheduler.
func wireServer(
	ctx context.Context,
	cfg *config.Config,
	db *sql.DB,
	redisClient *goredis.Client,
	nrApp *newrelic.Application,
	logger *slog.Logger,
) (*http.Server, *jobs.Scheduler, error) {
	registry := service.NewRentalRegistry(clock.New(), logger)

	// Usage counts and maintenance signals live in Redis when it is available,
	// so they survive restarts and are shared across instances.
	var (
		usageCounter  service.UsageCounter = service.NewMemoryUsageCounter()
		scheduler     service.MaintenanceScheduler
		queue         handler.MaintenanceQueue
		responseCache redis.ResponseCache
	)
	if redisClient != nil {
		usageCounter = redis.NewUsageStore(redisClient)
		maintenanceQueue := redis.NewMaintenanceQueue(redisClient)
		scheduler = maintenanceQueue
		queue = maintenanceQueue
		responseCache = redis.NewResponseStore(redisClient)
	}

	var archive repository.RentalArchive
	if db != nil {
		archive = postgres.NewRentalArchive(db)
	}

	// Observers run in registration order.
	maintenance := service.NewMaintenanceObserver(usageCounter, scheduler, cfg.Rental.MaintenanceThreshold, logger)
	registry.AddObserver(maintenance)
	registry.AddObserver(service.NewNotificationObserver(service.NewLogNotifier(logger)))
	if archive != nil {
		registry.AddObserver(service.NewArchiveObserver(archive))
	}
	if nrApp != nil {
		registry.AddObserver(service.NewTelemetryObserver(nrApp))
	}

	if cfg.Rental.SeedVehicles {
		seeded, err := registry.SeedVehiclesIfEmpty(ctx)
		if err != nil {
			return nil, nil, err
		}
		if seeded {
			logger.Info("seeded starter fleet", slog.Int("vehicles", len(registry.Vehicles())))
		}
	}

	jobScheduler, err := jobs.NewScheduler(jobs.NewJobRunner(registry, maintenance, logger), cfg.Rental.UsageReportSchedule)
	if err != nil {
		return nil, nil, err
	}

	if strings.EqualFold(cfg.Log.Level, "debug") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := app.NewRouter(app.RouterDeps{
		UserHandler:        handler.NewUserHandler(registry),
		VehicleHandler:     handler.NewVehicleHandler(registry, archive),
		RentalHandler:      handler.NewRentalHandler(registry),
		MaintenanceHandler: handler.NewMaintenanceHandler(maintenance, queue),
		ResponseCache:      responseCache,
		NewRelicApp:        nrApp,
		CORS:               cfg.CORS,
		RequestTimeout:     cfg.Server.RequestTimeout,
		Logger:             logger,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	return server, jobScheduler, nil
}

func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
