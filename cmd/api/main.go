// Package main is the entry point for the travel assistant API server.
// Its sole responsibility is wiring dependencies together and running the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/pkordes/travel-assistant/backend/internal/config"
	"github.com/pkordes/travel-assistant/backend/internal/handler"
	"github.com/pkordes/travel-assistant/backend/internal/middleware"
	"github.com/pkordes/travel-assistant/backend/internal/repo"
	"github.com/pkordes/travel-assistant/backend/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; real environment variables always win.
	_ = godotenv.Load()

	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database ---------------------------------------------------------
	// New() does not open connections immediately; the ping below does.
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return err
	}
	logger.Info("database connection established")

	// --- Services ---------------------------------------------------------
	itinerary := service.NewItineraryService(repo.NewBookingRepo(pool), service.AnalysisOptions{
		MinFreeSlotMinutes: cfg.MinFreeSlotMinutes,
		Window:             cfg.Window(),
		FetchTimeout:       cfg.FetchTimeout,
	}, logger)

	// --- Router -----------------------------------------------------------
	// RequestID → RealIP → Logger → Recoverer → CORS → body limit → rate limit.
	// RealIP must run before the rate limiter so clients are keyed by their
	// own address behind a proxy.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Use(middleware.NewRateLimitHandler(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, middleware.DefaultIdleTTL), logger))

	handler.NewServer(itinerary, logger).Routes(r)

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting",
			"addr", srv.Addr,
			"timezone", cfg.Location.String(),
			"window", cfg.WindowPolicy,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		// In-flight requests get up to 15 seconds to complete.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
