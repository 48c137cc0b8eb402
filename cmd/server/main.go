// Package main implements the entry point for the Scry cards server, which
// keeps a flashcard collection in memory and schedules reviews with an SM-2
// style spaced repetition algorithm.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/scry-cards/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := newCLIApp(runServer, os.Stdout)
	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// runServer sets up logging, builds the application and serves until ctx is
// canceled.
func runServer(ctx context.Context, cfg *config.Config) error {
	l, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	l.Info("Server configuration loaded",
		"version", Version,
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"shutdown_timeout", cfg.Server.ShutdownTimeout.String(),
		"review_history_limit", cfg.Review.HistoryLimit)

	app, err := newApplication(cfg, l)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
