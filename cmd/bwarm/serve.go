package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	"github.com/JonMunkholm/bwarm/internal/core"
	"github.com/JonMunkholm/bwarm/internal/web"
)

var serveCommand = cli.Command{
	Name:  "serve",
	Usage: "Serve the snapshot directory over HTTP",
	Description: `Starts the HTTP server. Snapshots can be listed, validated and their
	reports browsed. Listen address and limits come from SERVER_* variables.

	  bwarm -d /data/bwarm serve`,
	Action: serveAction,
}

func serveAction(c *cli.Context) error {
	cfg, err := setup()
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	if err := requireBaseDir(c, cfg); err != nil {
		return err
	}

	runner, err := newRunner(cfg)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	limiter := core.NewRunLimiter(cfg.Server.MaxConcurrentRuns, cfg.Server.RunWaitTime)
	server := web.NewServer(runner, limiter, cfg)

	slog.Info("configuration loaded", "config", cfg.String())

	// Graceful shutdown
	done := make(chan struct{})
	go func() {
		defer close(done)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		// Stop accepting requests, then wait for runs already started.
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
		if status := limiter.Status(); status.Active > 0 {
			slog.Info("waiting for validation runs to complete", "active", status.Active)
			if err := limiter.WaitForDrain(shutdownCtx); err != nil {
				slog.Warn("validation runs did not complete in time", "error", err)
			} else {
				slog.Info("all validation runs completed")
			}
		}
	}()

	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return cli.NewExitError(err.Error(), 1)
	}
	<-done
	slog.Info("server stopped")
	return nil
}
