package card_review

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-cards/internal/domain"
	"github.com/phrazzld/scry-cards/internal/events"
)

// DefaultHistoryLimit is the number of entries kept per card when no limit is configured.
const DefaultHistoryLimit = 50

// ReviewLog keeps the most recent reviews of every card in memory.
// It is fed by CardReviewed events and forgets a card on CardRemoved.
type ReviewLog struct {
	mu      sync.RWMutex
	limit   int
	entries map[uuid.UUID][]domain.ReviewLogEntry
	logger  *slog.Logger
}

// Ensure ReviewLog implements the interfaces it is used through
var (
	_ events.EventHandler = (*ReviewLog)(nil)
	_ HistoryReader       = (*ReviewLog)(nil)
)

// NewReviewLog creates a review log keeping at most limit entries per card.
// A non-positive limit uses DefaultHistoryLimit.
func NewReviewLog(limit int, logger *slog.Logger) *ReviewLog {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ReviewLog{
		limit:   limit,
		entries: make(map[uuid.UUID][]domain.ReviewLogEntry),
		logger:  logger.With(slog.String("component", "review_log")),
	}
}

// HandleEvent implements events.EventHandler.
func (l *ReviewLog) HandleEvent(ctx context.Context, event *events.Event) error {
	switch event.Type {
	case events.CardReviewed:
		entry, err := event.ReviewEntry()
		if err != nil {
			return err
		}
		l.Append(entry)
	case events.CardRemoved:
		cardID, err := event.RemovedCardID()
		if err != nil {
			return err
		}
		l.Forget(cardID)
	}
	return nil
}

// Append records an entry, dropping the oldest entries of that card beyond the limit.
func (l *ReviewLog) Append(entry domain.ReviewLogEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	list := append(l.entries[entry.CardID], entry)
	if overflow := len(list) - l.limit; overflow > 0 {
		list = slices.Delete(list, 0, overflow)
	}
	l.entries[entry.CardID] = list

	l.logger.Debug("review logged",
		slog.String("card_id", entry.CardID.String()),
		slog.Int("entry_count", len(list)))
}

// Forget drops all entries of a card.
func (l *ReviewLog) Forget(cardID uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, cardID)
}

// Entries returns a copy of a card's entries, oldest first.
func (l *ReviewLog) Entries(cardID uuid.UUID) []domain.ReviewLogEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := slices.Clone(l.entries[cardID])
	if out == nil {
		out = []domain.ReviewLogEntry{}
	}
	return out
}
