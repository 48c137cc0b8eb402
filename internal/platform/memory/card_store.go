package memory

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-cards/internal/domain"
	"github.com/phrazzld/scry-cards/internal/domain/srs"
	"github.com/phrazzld/scry-cards/internal/store"
)

// Option configures a CardStore.
type Option func(*CardStore)

// WithClock replaces the wall clock used for timestamps written by the store.
func WithClock(now func() time.Time) Option {
	return func(s *CardStore) {
		if now != nil {
			s.now = now
		}
	}
}

// entry is a stored card together with the lock guarding its fields.
// seq records insertion order and never changes.
type entry struct {
	mu   sync.RWMutex
	card domain.Card
	seq  uint64
}

// snapshot is a copy of an entry's card taken under its read lock.
type snapshot struct {
	card domain.Card
	seq  uint64
}

// CardStore implements store.CardStore in memory.
type CardStore struct {
	mu      sync.RWMutex
	cards   map[uuid.UUID]*entry
	nextSeq uint64

	scheduler srs.Service
	logger    *slog.Logger
	now       func() time.Time
}

// NewCardStore creates an empty in-memory card store.
// If logger is nil, a default logger will be used.
func NewCardStore(scheduler srs.Service, logger *slog.Logger, opts ...Option) *CardStore {
	if scheduler == nil {
		panic("scheduler cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	s := &CardStore{
		cards:     make(map[uuid.UUID]*entry),
		scheduler: scheduler,
		logger:    logger.With(slog.String("component", "card_store")),
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure CardStore implements store.CardStore interface
var _ store.CardStore = (*CardStore)(nil)

// Insert implements store.CardStore.Insert
func (s *CardStore) Insert(draft *domain.CardDraft) domain.OperationResult {
	if draft == nil {
		return domain.Failed(fmt.Errorf("%w: card draft is nil", domain.ErrInvalidArgument))
	}

	card, err := domain.NewCardFromDraft(*draft, s.now())
	if err != nil {
		return domain.Failed(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.cards[card.ID]; exists {
		s.logger.Debug("rejected insert of duplicate card id",
			slog.String("card_id", card.ID.String()))
		return domain.Failed(fmt.Errorf("%w: %s", store.ErrDuplicateID, card.ID))
	}

	s.nextSeq++
	s.cards[card.ID] = &entry{card: card, seq: s.nextSeq}

	return domain.Succeeded(card, "card inserted")
}

// NextDue implements store.CardStore.NextDue
func (s *CardStore) NextDue(now time.Time) (domain.Card, bool) {
	var (
		best  snapshot
		found bool
	)
	for _, snap := range s.snapshot() {
		if !snap.card.IsDue(now) {
			continue
		}
		if !found ||
			snap.card.NextDueAt.Before(best.card.NextDueAt) ||
			(snap.card.NextDueAt.Equal(best.card.NextDueAt) && snap.seq < best.seq) {
			best = snap
			found = true
		}
	}
	return best.card, found
}

// RecordReview implements store.CardStore.RecordReview
func (s *CardStore) RecordReview(id uuid.UUID, wasCorrect bool) domain.OperationResult {
	return s.update(id, "review", func(card *domain.Card) error {
		schedule, err := s.scheduler.Schedule(card.Repetitions, card.EasinessFactor, wasCorrect)
		if err != nil {
			return store.NewStoreError("card", "review", "scheduler rejected card state",
				fmt.Errorf("%w: %w", store.ErrScheduleFailed, err))
		}
		card.ApplyReview(schedule.Interval, schedule.EasinessFactor, wasCorrect, s.now())
		return nil
	})
}

// List implements store.CardStore.List
func (s *CardStore) List(includeArchived bool) []domain.Card {
	snaps := s.snapshot()
	if !includeArchived {
		snaps = slices.DeleteFunc(snaps, func(snap snapshot) bool {
			return snap.card.Archived
		})
	}

	slices.SortFunc(snaps, func(a, b snapshot) int {
		if c := b.card.CreatedAt.Compare(a.card.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.seq, a.seq)
	})
	return cardsOf(snaps)
}

// Get implements store.CardStore.Get
func (s *CardStore) Get(id uuid.UUID) (domain.Card, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.cards[id]
	if !ok {
		return domain.Card{}, false
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.card.Clone(), true
}

// Remove implements store.CardStore.Remove
func (s *CardStore) Remove(id uuid.UUID) domain.OperationResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cards[id]; !ok {
		return domain.Failed(fmt.Errorf("%w: %s", store.ErrCardNotFound, id))
	}
	delete(s.cards, id)

	return domain.SucceededID(id, "card removed")
}

// SetArchived implements store.CardStore.SetArchived
func (s *CardStore) SetArchived(id uuid.UUID, archived bool) domain.OperationResult {
	return s.update(id, "archive", func(card *domain.Card) error {
		card.Archived = archived
		card.Touch(s.now())
		return nil
	})
}

// Stats implements store.CardStore.Stats
func (s *CardStore) Stats(now time.Time) domain.AggregateStats {
	return domain.NewAggregateStats(cardsOf(s.snapshot()), now)
}

// Search implements store.CardStore.Search
func (s *CardStore) Search(text string, includeAnswers bool) []domain.Card {
	text = strings.TrimSpace(text)
	if text == "" {
		return []domain.Card{}
	}
	query := domain.FoldKey(text)

	snaps := slices.DeleteFunc(s.snapshot(), func(snap snapshot) bool {
		if snap.card.Archived {
			return true
		}
		if strings.Contains(domain.FoldKey(snap.card.Question), query) {
			return false
		}
		return !includeAnswers || !strings.Contains(domain.FoldKey(snap.card.Answer), query)
	})

	slices.SortFunc(snaps, func(a, b snapshot) int {
		if c := b.card.LastModifiedAt.Compare(a.card.LastModifiedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.seq, a.seq)
	})
	return cardsOf(snaps)
}

// AddTag implements store.CardStore.AddTag
func (s *CardStore) AddTag(id uuid.UUID, tag string) domain.OperationResult {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return domain.Failed(domain.NewValidationError("tag", "cannot be empty", domain.ErrEmptyTag))
	}

	return s.update(id, "add tag", func(card *domain.Card) error {
		if card.TagIndex(tag) >= 0 {
			return fmt.Errorf("%w: %q", store.ErrDuplicateTag, tag)
		}
		card.Tags = append(card.Tags, tag)
		card.Touch(s.now())
		return nil
	})
}

// RemoveTag implements store.CardStore.RemoveTag
func (s *CardStore) RemoveTag(id uuid.UUID, tag string) domain.OperationResult {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return domain.Failed(domain.NewValidationError("tag", "cannot be empty", domain.ErrEmptyTag))
	}

	return s.update(id, "remove tag", func(card *domain.Card) error {
		idx := card.TagIndex(tag)
		if idx < 0 {
			return fmt.Errorf("%w: %q", store.ErrTagNotFound, tag)
		}
		card.Tags = slices.Delete(card.Tags, idx, idx+1)
		card.Touch(s.now())
		return nil
	})
}

// Len implements store.CardStore.Len
func (s *CardStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cards)
}

// update runs fn against a working copy of the card under the card's write
// lock while holding the map's read lock. The copy replaces the stored card
// only when fn succeeds, so a failed check never leaves partial changes.
func (s *CardStore) update(
	id uuid.UUID,
	operation string,
	fn func(card *domain.Card) error,
) domain.OperationResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.cards[id]
	if !ok {
		return domain.Failed(fmt.Errorf("%w: %s", store.ErrCardNotFound, id))
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	working := e.card.Clone()
	if err := fn(&working); err != nil {
		s.logger.Debug("card update rejected",
			slog.String("operation", operation),
			slog.String("card_id", id.String()),
			slog.String("error", err.Error()))
		return domain.Failed(err)
	}
	e.card = working

	return domain.Succeeded(working, operation+" applied")
}

// snapshot copies every stored card under its read lock.
func (s *CardStore) snapshot() []snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]snapshot, 0, len(s.cards))
	for _, e := range s.cards {
		e.mu.RLock()
		out = append(out, snapshot{card: e.card.Clone(), seq: e.seq})
		e.mu.RUnlock()
	}
	return out
}

func cardsOf(snaps []snapshot) []domain.Card {
	out := make([]domain.Card, len(snaps))
	for i, snap := range snaps {
		out[i] = snap.card
	}
	return out
}
