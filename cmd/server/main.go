package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/parceldesk/parceldesk/internal/ai"
	"github.com/parceldesk/parceldesk/internal/config"
	"github.com/parceldesk/parceldesk/internal/core"
	"github.com/parceldesk/parceldesk/internal/logging"
	"github.com/parceldesk/parceldesk/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"max_file_size", cfg.Upload.MaxFileSize,
		"session_ttl", cfg.Upload.SessionTTL,
		"rate_limit_enabled", cfg.Rate.Enabled,
		"ai_enabled", cfg.AI.APIKey != "",
	)

	// Wire the AI analyzer only when a key is configured; without one
	// the service serves the static fallback report.
	var analyzer core.Analyzer
	if cfg.AI.APIKey != "" {
		analyzer = ai.New(ai.Config{
			APIKey:  cfg.AI.APIKey,
			Model:   cfg.AI.Model,
			BaseURL: cfg.AI.BaseURL,
			Timeout: cfg.AI.Timeout,
		})
		slog.Info("ai analyzer configured", "model", cfg.AI.Model)
	}

	// Confirmed batches are logged; a queue or carrier API client can
	// replace this sink without touching the pipeline.
	sink := func(b core.Batch) {
		slog.Info("batch confirmed",
			"batch_id", b.ID,
			"records", b.Total,
			"valid", b.ValidCount,
		)
	}

	core.SessionTTL = cfg.Upload.SessionTTL
	service := core.NewService(analyzer, sink)

	// Create server with config
	server := web.NewServer(service, cfg)

	// Create cancellable context for background jobs
	jobCtx, cancelJobs := context.WithCancel(context.Background())

	// Sweep expired review sessions
	go service.StartJanitor(jobCtx)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		// Stop background jobs
		cancelJobs()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(cfg.Server.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
