package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/scry-cards/internal/domain"
	"github.com/phrazzld/scry-cards/internal/platform/logger"
	"github.com/phrazzld/scry-cards/internal/store"
)

// ProgressService reports learning progress across all cards.
type ProgressService interface {
	// Report computes a progress report from one snapshot of the store,
	// archived cards included.
	Report(ctx context.Context) domain.ProgressReport
}

type progressServiceImpl struct {
	cardStore store.CardStore
	logger    *slog.Logger
	now       func() time.Time
}

// NewProgressService creates a new ProgressService.
// It returns an error if cardStore is nil.
func NewProgressService(
	cardStore store.CardStore,
	logger *slog.Logger,
	opts ...Option,
) (ProgressService, error) {
	if cardStore == nil {
		return nil, domain.NewValidationError("cardStore", "cannot be nil", domain.ErrInvalidArgument)
	}
	if logger == nil {
		logger = slog.Default()
	}

	o := buildOptions(opts)
	return &progressServiceImpl{
		cardStore: cardStore,
		logger:    logger.With(slog.String("component", "progress_service")),
		now:       o.now,
	}, nil
}

// Report implements ProgressService.Report
func (s *progressServiceImpl) Report(ctx context.Context) domain.ProgressReport {
	log := logger.FromContextOrDefault(ctx, s.logger)

	report := domain.NewProgressReport(s.cardStore.List(true), s.now())
	log.Debug("generated progress report",
		slog.Int("card_count", report.CardCount),
		slog.Float64("mastery_percentage", report.MasteryPercentage))
	return report
}
