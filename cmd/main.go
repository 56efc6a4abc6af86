package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"jeju-ads/db/migrations"
	"jeju-ads/internal/adapter/cache"
	httpadapter "jeju-ads/internal/adapter/http"
	"jeju-ads/internal/adapter/imaging"
	"jeju-ads/internal/adapter/metrics"
	"jeju-ads/internal/adapter/postgres"
	"jeju-ads/internal/adapter/scheduler"
	"jeju-ads/internal/adapter/storage"
	"jeju-ads/internal/adapter/usecase"
	"jeju-ads/internal/config"
	"jeju-ads/internal/db"
)

// main is the entry point of the jeju-ads service. It loads configuration,
// optionally runs database migrations and seeding, wires the adapters into
// the ad use case, then serves HTTP until SIGINT or SIGTERM.
func main() {
	if err := run(); err != nil {
		slog.Error("jeju-ads stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := cfg.Log.NewSlog(os.Stdout)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.Psql.RunMigrations {
		from, err := db.Migrate(cfg.Psql.Addr.String())
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Uint64("from", uint64(from)), slog.Uint64("to", uint64(migrations.Version)))
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo advertisements seeded")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	opts := []usecase.Option{
		usecase.WithLogger(logger),
		usecase.WithMetrics(metrics.NewBilling(reg)),
		usecase.WithDefaultCPC(cfg.Billing.DefaultCPC),
	}

	if cfg.Redis.URL != "" {
		rdb, err := db.NewRedis(ctx, cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("redis connection: %w", err)
		}
		defer rdb.Close()
		opts = append(opts, usecase.WithCache(cache.NewRedisCache(rdb, "jeju-ads:"), cfg.Redis.CacheTTL))
		logger.Info("dashboard cache backed by redis")
	} else {
		opts = append(opts, usecase.WithCache(cache.NewMemoryCache(), cfg.Redis.CacheTTL))
		logger.Info("redis not configured, using in-memory dashboard cache")
	}

	if cfg.Storage.Enabled() {
		store, err := storage.NewS3Store(ctx, cfg.Storage)
		if err != nil {
			return fmt.Errorf("object storage: %w", err)
		}
		opts = append(opts,
			usecase.WithImageStore(store, cfg.Storage.MaxUploadBytes),
			usecase.WithImageProcessor(imaging.NewProcessor(cfg.Storage.MaxImageWidth, cfg.Storage.MaxImageHeight)),
		)
	} else {
		logger.Warn("S3 bucket not configured, image uploads disabled")
	}

	svc := usecase.NewAdUseCase(postgres.NewAdRepository(pool), opts...)

	sweep := scheduler.NewExhaustionSweep(svc, cfg.Billing.SweepSchedule, logger)
	if err = sweep.Start(ctx); err != nil {
		return err
	}
	defer sweep.Stop()

	handler := httpadapter.NewHandler(svc, httpadapter.NewAuthenticator(cfg.Auth), logger, httpadapter.Options{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		Metrics:        promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		MaxUploadBytes: cfg.Storage.MaxUploadBytes,
	})
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server gracefully stopped")
	return nil
}
