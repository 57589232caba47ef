package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campuspulse/internal/platform/config"
	"campuspulse/internal/platform/httpserver"
	"campuspulse/internal/platform/logger"
	"campuspulse/internal/platform/metrics"
	"campuspulse/internal/platform/postgres"
	platformredis "campuspulse/internal/platform/redis"
	"campuspulse/internal/review/handler"
	"campuspulse/internal/review/service"
	"campuspulse/internal/review/store"
	"campuspulse/internal/review/validate"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal/review packages.
func main() {
	cfg := config.Load()
	log := logger.New()
	ctx := context.Background()

	gateway, cleanup := buildGateway(ctx, cfg, log)
	defer cleanup()

	m := metrics.New()
	svc, err := service.New(gateway, validate.New(cfg.Review), cfg.Review,
		service.WithLogger(log),
		service.WithMetrics(m),
	)
	if err != nil {
		log.Error("service init failed", "error", err)
		os.Exit(1)
	}

	router := chi.NewRouter()
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	router.Handle("/metrics", promhttp.Handler())
	handler.New(svc, log).Register(router)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting campuspulse", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

// buildGateway assembles the storage stack: PostgreSQL when a DSN is
// configured (in-memory otherwise, so the API still serves), wrapped with the
// Redis read cache when available. Categories are seeded on every start.
func buildGateway(ctx context.Context, cfg config.Config, log *slog.Logger) (store.Gateway, func()) {
	cleanup := func() {}

	var gateway store.Gateway
	var seeder store.CategorySeeder

	if cfg.PostgresDSN != "" {
		db, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Error("postgres unavailable, falling back to in-memory store", "error", err)
		} else {
			pg := store.NewPostgres(db)
			if err := pg.EnsureSchema(ctx); err != nil {
				log.Error("schema setup failed", "error", err)
			}
			gateway, seeder = pg, pg
			cleanup = func() { _ = db.Close() }
		}
	}
	if gateway == nil {
		mem := store.NewInMemory()
		gateway, seeder = mem, mem
		log.Warn("running with in-memory storage, reviews will not survive restarts")
	}

	if err := store.SeedDefaultCategories(ctx, seeder); err != nil {
		log.Error("category seeding failed", "error", err)
	}

	if cfg.RedisURL != "" {
		client, err := platformredis.New(cfg.RedisURL)
		if err != nil {
			log.Warn("redis unavailable, serving uncached", "error", err)
		} else if client != nil {
			inner := cleanup
			cleanup = func() {
				_ = client.Close()
				inner()
			}
			gateway = store.NewCached(gateway, client.Client, cfg.CacheTTL, log)
			log.Info("redis read cache enabled", "ttl", cfg.CacheTTL)
		}
	}

	return gateway, cleanup
}
