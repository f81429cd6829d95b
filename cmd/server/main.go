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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Sarvajith2007/FINBOT/internal/cache"
	"github.com/Sarvajith2007/FINBOT/internal/config"
	"github.com/Sarvajith2007/FINBOT/internal/handlers"
	"github.com/Sarvajith2007/FINBOT/internal/middleware"
	"github.com/Sarvajith2007/FINBOT/internal/session"
	"github.com/Sarvajith2007/FINBOT/pkg/logging"
)

func main() {
	logging.Setup()
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	resultCache := newCache(ctx, cfg)
	defer resultCache.Close()

	store := session.NewMemoryStore()
	defer store.Close()

	limiter := middleware.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitInterval)
	defer limiter.Stop()

	h := handlers.New(store, resultCache, cfg.CacheTTL)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logging)
	r.Use(middleware.Metrics)
	r.Use(middleware.RateLimit(limiter))
	r.Handle("/metrics", promhttp.Handler())
	h.Routes(r)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// newCache picks the Redis cache when an address is configured and falls
// back to the in-process cache otherwise, or when Redis is unreachable.
func newCache(ctx context.Context, cfg config.Config) cache.Cache {
	if cfg.RedisAddr == "" {
		return cache.NewMemoryCache()
	}

	redisCache, err := cache.NewRedisCache(ctx, cfg.RedisAddr)
	if err != nil {
		slog.Warn("redis unreachable, using in-memory cache", "addr", cfg.RedisAddr, "error", err)
		return cache.NewMemoryCache()
	}
	slog.Info("using redis cache", "addr", cfg.RedisAddr)
	return redisCache
}
