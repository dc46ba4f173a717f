// Package main is the entrypoint for the ReviewLens API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/reviewlens/reviewlens/internal/api"
	"github.com/reviewlens/reviewlens/internal/api/handler"
	mw "github.com/reviewlens/reviewlens/internal/api/middleware"
	"github.com/reviewlens/reviewlens/internal/api/response"
	"github.com/reviewlens/reviewlens/internal/basket"
	"github.com/reviewlens/reviewlens/internal/cache"
	"github.com/reviewlens/reviewlens/internal/config"
	"github.com/reviewlens/reviewlens/internal/mining"
	"github.com/reviewlens/reviewlens/internal/recommend"
	"github.com/reviewlens/reviewlens/internal/sentiment"
	"github.com/reviewlens/reviewlens/internal/store"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Optional .env for local development; ignored when absent.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config — fail fast on invalid config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	slog.Info("config loaded",
		"env", cfg.Server.Env,
		"min_support", cfg.Analysis.MinSupport,
		"min_lift", cfg.Analysis.MinLift,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Connect to database
	pool, err := store.Connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()
	slog.Info("database connected")

	// 3. Run migrations
	if err := store.RunMigrations(cfg.Database.URL, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	slog.Info("database migrations applied")

	// 4. Create Redis cache
	redisCache, err := cache.NewRedisCache(cfg.Redis.URL)
	if err != nil {
		return fmt.Errorf("create redis cache: %w", err)
	}
	defer redisCache.Close()

	if err := redisCache.Ping(ctx); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	slog.Info("redis connected")

	// 5. Create store and analysis pipeline
	pgStore := store.NewPostgresStore(pool)

	analyzer := sentiment.NewAnalyzer()
	extractor := basket.NewExtractor(cfg.Analysis.Vocabulary)
	miner := mining.NewMiner(mining.Config{
		MinSupport: cfg.Analysis.MinSupport,
		MinLift:    cfg.Analysis.MinLift,
	})
	keywords := recommend.NewKeywordComposer(recommend.DefaultKeywordConfig(),
		rand.New(rand.NewSource(time.Now().UnixNano())))

	recoService := recommend.NewService(pgStore, redisCache, analyzer, extractor,
		miner, keywords, cfg.Analysis.CacheTTL)

	// 6. Build router with dependencies
	deps := api.Dependencies{
		RateLimit: mw.NewRateLimit(redisCache, cfg.Server.RateLimitPerMinute),

		HealthHandler:          healthHandler(pgStore, redisCache),
		CreateReviewHandler:    handler.NewCreateReviewHandler(pgStore, analyzer),
		ListReviewsHandler:     handler.NewListReviewsHandler(pgStore),
		GetReviewHandler:       handler.NewGetReviewHandler(pgStore),
		SeedHandler:            handler.NewSeedHandler(pgStore, analyzer),
		RecommendationsHandler: handler.NewRecommendationsHandler(recoService),
		SentimentSummary:       handler.NewSentimentSummaryHandler(recoService),
	}

	router := api.NewRouter(deps)

	// 7. Start HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for shutdown signal or server error
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		slog.Info("shutdown signal received, draining connections...")
	}

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

// healthHandler checks database and cache connectivity.
func healthHandler(s store.Store, c cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{
			"database": "ok",
			"cache":    "ok",
		}

		if err := s.Ping(r.Context()); err != nil {
			checks["database"] = "degraded"
		}
		if err := c.Ping(r.Context()); err != nil {
			checks["cache"] = "degraded"
		}

		degraded := checks["database"] != "ok" || checks["cache"] != "ok"
		if degraded {
			response.Error(w, http.StatusServiceUnavailable, "DEGRADED",
				"One or more services degraded", checks)
			return
		}

		response.JSON(w, map[string]any{
			"status":   "ok",
			"services": checks,
		})
	}
}
