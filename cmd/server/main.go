// Command server runs the tennis betting recommendation HTTP API.
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

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ustadmustafa/TennisBetRecommender/internal/config"
	"github.com/ustadmustafa/TennisBetRecommender/internal/handlers"
	"github.com/ustadmustafa/TennisBetRecommender/internal/logic"
	"github.com/ustadmustafa/TennisBetRecommender/internal/provider"
	"github.com/ustadmustafa/TennisBetRecommender/internal/worker"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Optional payload cache
	var rdb *redis.Client
	var cache provider.Cache
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		rdb = redis.NewClient(opts)
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			sugar.Warnw("Redis unreachable at startup, cache lookups will fail open", "error", err)
		}
		cancel()
		cache = provider.NewRedisCache(rdb)
	}

	client := provider.NewClient(provider.Config{
		BaseURL:             cfg.TennisAPIBaseURL,
		APIKey:              cfg.TennisAPIKey,
		Timeout:             cfg.ProviderTimeout,
		RateLimit:           cfg.ProviderRateLimit,
		RateBurst:           cfg.ProviderRateBurst,
		CacheTTL:            cfg.ProviderCacheTTL,
		BreakerMaxRequests:  cfg.BreakerMaxRequests,
		BreakerTimeout:      cfg.BreakerTimeout,
		BreakerFailureRatio: cfg.BreakerFailureRatio,
		Cache:               cache,
		Logger:              logger,
	})

	analysis := logic.NewAnalysisService(logic.ServiceConfig{
		Source: client,
		Logger: logger,
	})

	pool := worker.NewPool(worker.PoolConfig{
		WorkerCount: cfg.WorkerCount,
		QueueSize:   cfg.QueueSize,
		JobTimeout:  cfg.RequestTimeout,
		Predictor:   analysis,
		Logger:      logger,
	})
	pool.Start(ctx)

	hcfg := handlers.Config{
		Analysis: analysis,
		Batch:    pool,
		Provider: client,
		Logger:   logger,
	}
	if rdb != nil {
		hcfg.Redis = rdb
	}
	h := handlers.New(hcfg)

	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Port),
		Handler: handlers.NewRouter(h, handlers.RouterConfig{
			AllowedOrigins: cfg.AllowedOrigins,
			RequestTimeout: cfg.RequestTimeout,
		}),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		sugar.Infow("HTTP server listening", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			pool.Stop()
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	sugar.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("HTTP server shutdown failed", "error", err)
	}
	pool.Stop()

	sugar.Info("Server stopped")
	return nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
