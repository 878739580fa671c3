package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/bizdash/bizdash/internal/app"
	"github.com/bizdash/bizdash/internal/customers"
	"github.com/bizdash/bizdash/internal/dashboard"
	"github.com/bizdash/bizdash/internal/observability"
	"github.com/bizdash/bizdash/internal/platform/cache"
	"github.com/bizdash/bizdash/internal/platform/db"
	"github.com/bizdash/bizdash/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)
	metrics := observability.NewMetrics()
	redisOpts := cache.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB}

	var redisClient *redis.Client
	if client, err := cache.New(ctx, redisOpts); err != nil {
		logger.Warn("redis unavailable, caching and background jobs disabled", slog.Any("error", err))
	} else {
		redisClient = client
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}()
	}

	dashboardCache := dashboard.NewCache(redisClient, cfg.DashboardCacheTTL)

	params := app.RouterParams{
		Logger:     logger,
		Config:     cfg,
		Metrics:    metrics,
		JobHandler: jobs.NewHandler(nil, logger),
	}

	var customerRepo customers.Repository
	if cfg.UsesMemoryStorage() {
		logger.Info("using in-memory customer storage")
		customerRepo = customers.NewMemoryRepository()
	} else {
		pool, err := db.New(ctx, cfg.PGDSN)
		if err != nil {
			logger.Error("connect postgres", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()

		version, err := db.Migrate(ctx, cfg.PGDSN)
		if err != nil {
			logger.Error("apply migrations", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("schema ready", slog.Uint64("version", uint64(version)))

		customerRepo = customers.NewRepository(pool)
		params.Database = pool

		var enqueuer dashboard.Enqueuer
		if redisClient != nil {
			jobClient := jobs.NewClient(redisOpts.AsynqOpt())
			defer func() {
				if err := jobClient.Close(); err != nil {
					logger.Warn("asynq client close", slog.Any("error", err))
				}
			}()
			enqueuer = jobClient

			inspector := asynq.NewInspector(redisOpts.AsynqOpt())
			defer func() {
				if err := inspector.Close(); err != nil {
					logger.Warn("asynq inspector close", slog.Any("error", err))
				}
			}()
			params.JobHandler = jobs.NewHandler(inspector, logger)
		}

		dashboardService := dashboard.NewService(dashboard.NewRepository(pool), dashboardCache, logger)
		params.DashboardHandler = dashboard.NewHandler(logger, dashboardService, enqueuer)
	}

	customerService := customers.NewService(customerRepo, dashboardCache, logger)
	params.CustomersHandler = customers.NewHandler(logger, customerService)

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      app.NewRouter(params),
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr), slog.String("storage", cfg.AppStorage))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
