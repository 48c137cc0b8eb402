package card_review

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-cards/internal/domain"
	"github.com/phrazzld/scry-cards/internal/events"
	"github.com/phrazzld/scry-cards/internal/platform/logger"
	"github.com/phrazzld/scry-cards/internal/store"
)

// HistoryReader provides the recorded reviews of a card.
type HistoryReader interface {
	Entries(cardID uuid.UUID) []domain.ReviewLogEntry
}

// Option configures the card review service.
type Option func(*cardReviewServiceImpl)

// WithClock replaces the wall clock used to decide which cards are due.
func WithClock(now func() time.Time) Option {
	return func(s *cardReviewServiceImpl) {
		if now != nil {
			s.now = now
		}
	}
}

// Verify interface compliance at compile time
var _ CardReviewService = (*cardReviewServiceImpl)(nil)

// cardReviewServiceImpl implements the CardReviewService interface.
type cardReviewServiceImpl struct {
	cardStore store.CardStore
	emitter   events.EventEmitter
	history   HistoryReader
	logger    *slog.Logger
	now       func() time.Time
}

// NewCardReviewService creates a new CardReviewService implementation.
func NewCardReviewService(
	cardStore store.CardStore,
	emitter events.EventEmitter,
	history HistoryReader,
	logger *slog.Logger,
	opts ...Option,
) CardReviewService {
	// Validate inputs
	if cardStore == nil {
		panic("cardStore cannot be nil")
	}
	if emitter == nil {
		panic("emitter cannot be nil")
	}
	if history == nil {
		panic("history cannot be nil")
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	s := &cardReviewServiceImpl{
		cardStore: cardStore,
		emitter:   emitter,
		history:   history,
		logger:    logger.With(slog.String("component", "card_review_service")),
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetNextCard implements CardReviewService.GetNextCard.
func (s *cardReviewServiceImpl) GetNextCard(ctx context.Context) (domain.Card, error) {
	// Get logger from context or use default
	log := logger.FromContextOrDefault(ctx, s.logger)

	card, ok := s.cardStore.NextDue(s.now())
	if !ok {
		log.Debug("no cards due for review")
		return domain.Card{}, ErrNoCardsDue
	}

	log.Debug("retrieved next review card", slog.String("card_id", card.ID.String()))
	return card, nil
}

// SubmitAnswer implements CardReviewService.SubmitAnswer.
func (s *cardReviewServiceImpl) SubmitAnswer(
	ctx context.Context,
	cardID uuid.UUID,
	answer ReviewAnswer,
) (domain.Card, error) {
	// Get logger from context or use default
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("processing review answer",
		slog.String("card_id", cardID.String()),
		slog.Bool("correct", answer.Correct))

	result := s.cardStore.RecordReview(cardID, answer.Correct)
	if !result.Success {
		if errors.Is(result.Err, store.ErrCardNotFound) {
			log.Warn("card not found for review", slog.String("card_id", cardID.String()))
			return domain.Card{}, ErrCardNotFound
		}

		log.Error("failed to record review",
			slog.String("card_id", cardID.String()),
			slog.String("reason", result.Message))
		return domain.Card{}, NewSubmitAnswerError("failed to record review", result.Err)
	}

	card := *result.Card
	entry := domain.NewReviewLogEntry(card)

	event, err := events.NewCardReviewedEvent(entry)
	if err == nil {
		err = s.emitter.EmitEvent(ctx, event)
	}
	if err != nil {
		log.Warn("failed to emit card reviewed event",
			slog.String("card_id", cardID.String()),
			slog.String("error", err.Error()))
	}

	log.Info("review recorded",
		slog.String("card_id", cardID.String()),
		slog.Bool("correct", answer.Correct),
		slog.Int("interval_days", card.Interval),
		slog.Float64("easiness_factor", card.EasinessFactor),
		slog.Time("next_due_at", card.NextDueAt))
	return card, nil
}

// History implements CardReviewService.History.
func (s *cardReviewServiceImpl) History(ctx context.Context, cardID uuid.UUID) ([]domain.ReviewLogEntry, error) {
	if _, ok := s.cardStore.Get(cardID); !ok {
		logger.FromContextOrDefault(ctx, s.logger).
			Debug("card not found for history", slog.String("card_id", cardID.String()))
		return nil, ErrCardNotFound
	}
	return s.history.Entries(cardID), nil
}
