package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/SscSPs/expense_tracker/internal/core/services"
	"github.com/SscSPs/expense_tracker/internal/handlers"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/SscSPs/expense_tracker/internal/platform/analytics"
	"github.com/SscSPs/expense_tracker/internal/platform/config"
	"github.com/SscSPs/expense_tracker/internal/repositories/database/docstore"
)

const shutdownTimeout = 10 * time.Second

// @title Expense Tracker API
// @version 1.0
// @description Income and expense tracking backed by a Firebase Realtime Database.

// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := newDocumentStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize document store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := docstore.NewRepositoryProvider(store)
	serviceContainer := services.NewServiceContainer(&repos)

	tracker, err := analytics.NewTracker(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	if err != nil {
		logger.Error("Failed to initialize analytics", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := tracker.Close(); err != nil {
			logger.Error("Failed to flush analytics", slog.String("error", err.Error()))
		}
	}()

	r, err := newRouter(cfg, logger, tracker)
	if err != nil {
		logger.Error("Failed to configure router", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store_driver", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shut down", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Server stopped")
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func newRouter(cfg *config.Config, logger *slog.Logger, tracker *analytics.Tracker) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))
	r.Use(middleware.AnalyticsMiddleware(tracker))

	if cfg.RateLimit != "" {
		lim, err := middleware.NewRateLimiter(cfg.RateLimit)
		if err != nil {
			return nil, err
		}
		r.Use(middleware.RateLimit(lim))
		logger.Info("Rate limiting enabled", slog.String("rate", cfg.RateLimit))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, err
	}
	return r, nil
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
