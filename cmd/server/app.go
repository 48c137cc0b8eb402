package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/scry-cards/internal/config"
	"github.com/phrazzld/scry-cards/internal/domain/srs"
	"github.com/phrazzld/scry-cards/internal/events"
	"github.com/phrazzld/scry-cards/internal/platform/memory"
	"github.com/phrazzld/scry-cards/internal/service"
	"github.com/phrazzld/scry-cards/internal/service/card_review"
	"github.com/phrazzld/scry-cards/internal/store"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	srsService srs.Service
	cardStore  store.CardStore

	eventEmitter *events.InMemoryEventEmitter
	reviewLog    *card_review.ReviewLog

	cardService       service.CardService
	progressService   service.ProgressService
	cardReviewService card_review.CardReviewService
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger, opts ...memory.Option) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config:     cfg,
		logger:     logger,
		srsService: srs.NewDefaultService(),
	}

	app.cardStore = memory.NewCardStore(app.srsService, logger, opts...)

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.reviewLog = card_review.NewReviewLog(cfg.Review.HistoryLimit, logger)
	app.eventEmitter.RegisterHandler(app.reviewLog)

	var err error
	app.cardService, err = service.NewCardService(app.cardStore, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create card service: %w", err)
	}

	app.progressService, err = service.NewProgressService(app.cardStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create progress service: %w", err)
	}

	app.cardReviewService = card_review.NewCardReviewService(
		app.cardStore,
		app.eventEmitter,
		app.reviewLog,
		logger,
	)

	logger.Info("Application initialized successfully",
		"review_history_limit", cfg.Review.HistoryLimit)
	return app, nil
}

// Run serves the API until ctx is canceled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup runs after the HTTP server has stopped.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed",
		"cards_in_memory", app.cardStore.Len())
}
