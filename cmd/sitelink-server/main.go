// Command sitelink-server serves the learning resource directory over HTTP.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Tanay2920003/sitelink/internal/adapters/filesystem"
	"github.com/Tanay2920003/sitelink/internal/adapters/httpapi"
	"github.com/Tanay2920003/sitelink/internal/config"
	"github.com/Tanay2920003/sitelink/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("startup failure", slog.String("context", "load configuration"), slog.Any("error", err))
		os.Exit(1)
	}

	log, err := logger.Setup(os.Stderr, logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	must(slog.Default(), err, "initialize logger")
	log = log.With(slog.String("app", "sitelink"))

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.String("data_dir", cfg.DataDir),
		slog.String("addr", cfg.HTTPAddr),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := filesystem.NewRepository(cfg.DataDir, log)
	server := httpapi.NewServer(ctx, cfg, repo, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	log.Info("shutting down server", slog.Duration("timeout", cfg.ShutdownTimeout))
	if err := server.Shutdown(cfg.ShutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a startup failure and exits when err is non-nil
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
