package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-cards/internal/domain"
	"github.com/phrazzld/scry-cards/internal/events"
	"github.com/phrazzld/scry-cards/internal/platform/logger"
	"github.com/phrazzld/scry-cards/internal/store"
)

// CardService provides card management operations
type CardService interface {
	// CreateCard validates and stores a new card built from draft.
	CreateCard(ctx context.Context, draft domain.CardDraft) (domain.Card, error)

	// GetCard retrieves a card by its ID.
	// Returns store.ErrCardNotFound if the card does not exist.
	GetCard(ctx context.Context, cardID uuid.UUID) (domain.Card, error)

	// ListCards returns cards newest first.
	ListCards(ctx context.Context, includeArchived bool) []domain.Card

	// SearchCards finds active cards containing text.
	SearchCards(ctx context.Context, text string, includeAnswers bool) []domain.Card

	// DeleteCard removes a card and announces the removal with an
	// events.CardRemoved event.
	DeleteCard(ctx context.Context, cardID uuid.UUID) error

	// SetArchived archives or restores a card.
	SetArchived(ctx context.Context, cardID uuid.UUID, archived bool) (domain.Card, error)

	// AddTag adds a tag to a card.
	AddTag(ctx context.Context, cardID uuid.UUID, tag string) (domain.Card, error)

	// RemoveTag removes a tag from a card.
	RemoveTag(ctx context.Context, cardID uuid.UUID, tag string) (domain.Card, error)

	// Stats computes aggregate statistics as of now.
	Stats(ctx context.Context) domain.AggregateStats

	// Count returns the number of stored cards.
	Count(ctx context.Context) int
}

// cardServiceImpl implements the CardService interface
type cardServiceImpl struct {
	cardStore store.CardStore
	emitter   events.EventEmitter
	logger    *slog.Logger
	now       func() time.Time
}

// Verify interface compliance at compile time
var _ CardService = (*cardServiceImpl)(nil)

// NewCardService creates a new CardService
// It returns an error if any of the required dependencies are nil.
func NewCardService(
	cardStore store.CardStore,
	emitter events.EventEmitter,
	logger *slog.Logger,
	opts ...Option,
) (CardService, error) {
	// Validate dependencies
	if cardStore == nil {
		return nil, domain.NewValidationError("cardStore", "cannot be nil", domain.ErrInvalidArgument)
	}
	if emitter == nil {
		return nil, domain.NewValidationError("emitter", "cannot be nil", domain.ErrInvalidArgument)
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	o := buildOptions(opts)
	return &cardServiceImpl{
		cardStore: cardStore,
		emitter:   emitter,
		logger:    logger.With(slog.String("component", "card_service")),
		now:       o.now,
	}, nil
}

// CreateCard implements CardService.CreateCard
func (s *cardServiceImpl) CreateCard(ctx context.Context, draft domain.CardDraft) (domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result := s.cardStore.Insert(&draft)
	if !result.Success {
		log.Debug("card creation rejected", slog.String("reason", result.Message))
		return domain.Card{}, resultError("create_card", result)
	}

	log.Info("card created", slog.String("card_id", result.EntityID.String()))
	return *result.Card, nil
}

// GetCard implements CardService.GetCard
func (s *cardServiceImpl) GetCard(ctx context.Context, cardID uuid.UUID) (domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	card, ok := s.cardStore.Get(cardID)
	if !ok {
		log.Debug("card not found", slog.String("card_id", cardID.String()))
		return domain.Card{}, store.ErrCardNotFound
	}
	return card, nil
}

// ListCards implements CardService.ListCards
func (s *cardServiceImpl) ListCards(ctx context.Context, includeArchived bool) []domain.Card {
	return s.cardStore.List(includeArchived)
}

// SearchCards implements CardService.SearchCards
func (s *cardServiceImpl) SearchCards(ctx context.Context, text string, includeAnswers bool) []domain.Card {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cards := s.cardStore.Search(text, includeAnswers)
	log.Debug("searched cards",
		slog.Bool("include_answers", includeAnswers),
		slog.Int("result_count", len(cards)))
	return cards
}

// DeleteCard implements CardService.DeleteCard
func (s *cardServiceImpl) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result := s.cardStore.Remove(cardID)
	if !result.Success {
		log.Debug("card deletion rejected",
			slog.String("card_id", cardID.String()),
			slog.String("reason", result.Message))
		return resultError("delete_card", result)
	}

	event, err := events.NewCardRemovedEvent(cardID)
	if err == nil {
		err = s.emitter.EmitEvent(ctx, event)
	}
	if err != nil {
		// The removal stands even if subscribers miss it.
		log.Warn("failed to emit card removed event",
			slog.String("card_id", cardID.String()),
			slog.String("error", err.Error()))
	}

	log.Info("card deleted", slog.String("card_id", cardID.String()))
	return nil
}

// SetArchived implements CardService.SetArchived
func (s *cardServiceImpl) SetArchived(
	ctx context.Context,
	cardID uuid.UUID,
	archived bool,
) (domain.Card, error) {
	return s.mutate(ctx, "set_archived", cardID, s.cardStore.SetArchived(cardID, archived))
}

// AddTag implements CardService.AddTag
func (s *cardServiceImpl) AddTag(ctx context.Context, cardID uuid.UUID, tag string) (domain.Card, error) {
	return s.mutate(ctx, "add_tag", cardID, s.cardStore.AddTag(cardID, tag))
}

// RemoveTag implements CardService.RemoveTag
func (s *cardServiceImpl) RemoveTag(ctx context.Context, cardID uuid.UUID, tag string) (domain.Card, error) {
	return s.mutate(ctx, "remove_tag", cardID, s.cardStore.RemoveTag(cardID, tag))
}

// Stats implements CardService.Stats
func (s *cardServiceImpl) Stats(ctx context.Context) domain.AggregateStats {
	return s.cardStore.Stats(s.now())
}

// Count implements CardService.Count
func (s *cardServiceImpl) Count(ctx context.Context) int {
	return s.cardStore.Len()
}

// mutate logs the outcome of a single-card store mutation and converts it.
func (s *cardServiceImpl) mutate(
	ctx context.Context,
	operation string,
	cardID uuid.UUID,
	result domain.OperationResult,
) (domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !result.Success {
		log.Debug("card update rejected",
			slog.String("operation", operation),
			slog.String("card_id", cardID.String()),
			slog.String("reason", result.Message))
		return domain.Card{}, resultError(operation, result)
	}

	log.Debug("card updated",
		slog.String("operation", operation),
		slog.String("card_id", cardID.String()))
	return *result.Card, nil
}
