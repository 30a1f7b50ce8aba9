package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/mr1hm/go-crisis-finder/internal/api"
	"github.com/mr1hm/go-crisis-finder/internal/config"
	"github.com/mr1hm/go-crisis-finder/internal/distance"
	"github.com/mr1hm/go-crisis-finder/internal/finder"
	"github.com/mr1hm/go-crisis-finder/internal/gazetteer"
	"github.com/mr1hm/go-crisis-finder/internal/locator"
	"github.com/mr1hm/go-crisis-finder/internal/logging"
	"github.com/mr1hm/go-crisis-finder/internal/lookup"
	"github.com/mr1hm/go-crisis-finder/internal/repository"
	"github.com/mr1hm/go-crisis-finder/internal/travel"
)

var version = "1.0.0"

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("Server starting", "host", cfg.Server.Host, "port", cfg.Server.Port, "version", version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A broken gazetteer keeps the process up so it can answer 503.
	holder := gazetteer.NewHolder(cfg.Gazetteer.File)
	if err := holder.Reload(); err != nil {
		slog.Error("failed to load gazetteer, serving unavailable", "error", err)
	}

	if cfg.Gazetteer.Watch {
		stopWatch, err := holder.Watch(ctx)
		if err != nil {
			logging.Fatalf("Failed to watch gazetteer: %v", err)
		}
		defer stopWatch()
	}

	var provider travel.Provider
	if cfg.Maps.Enabled() {
		p, err := travel.NewGoogleProvider(cfg.Maps.APIKey, travel.WithLanguage(cfg.Maps.Language))
		if err != nil {
			slog.Error("maps provider unavailable, using straight-line distances", "error", err)
		} else {
			provider = p
			slog.Info("maps provider enabled", "timeout", cfg.Maps.Timeout, "transit", cfg.Maps.TransitEnabled)
		}
	} else {
		slog.Warn("GOOGLE_MAPS_API_KEY not set, using straight-line distances only")
	}

	resolver := distance.NewResolver(provider, distance.Options{
		Timeout: cfg.Maps.Timeout,
		Transit: cfg.Maps.TransitEnabled,
	})

	var (
		stats    repository.LookupRepository
		recorder *lookup.Recorder
	)
	if cfg.LookupLog.Enabled {
		if err := os.MkdirAll(filepath.Dir(cfg.DB.Path), 0o755); err != nil {
			logging.Fatalf("Failed to create database directory: %v", err)
		}
		db, err := repository.NewSQLiteDB(cfg.DB.Path)
		if err != nil {
			logging.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.Close()

		stats = db
		recorder = lookup.NewRecorder(cfg.Worker, db)
		recorder.Start(ctx)
	}

	var rec finder.Recorder
	if recorder != nil {
		rec = recorder
	}
	svc := finder.NewService(holder, resolver, locator.Options{FuzzyDistance: cfg.Locator.FuzzyDistance}, rec)

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(api.NewHandler(svc, stats, version), cfg.Server.RateLimitRPS)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownGrace)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	// Drain queued lookup records before the deferred db.Close runs.
	if recorder != nil {
		recorder.Stop()
	}
	cancel()

	slog.Info("shutdown complete")
}
