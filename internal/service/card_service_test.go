package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/scry-cards/internal/domain"
	"github.com/phrazzld/scry-cards/internal/domain/srs"
	"github.com/phrazzld/scry-cards/internal/events"
	"github.com/phrazzld/scry-cards/internal/platform/memory"
	"github.com/phrazzld/scry-cards/internal/store"
)

var fixedNow = time.Date(2025, 5, 20, 8, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// recordingHandler captures events for assertions.
type recordingHandler struct {
	mu     sync.Mutex
	events []*events.Event
}

func (h *recordingHandler) HandleEvent(ctx context.Context, event *events.Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event)
	return nil
}

// failingEmitter always fails to emit.
type failingEmitter struct{}

func (failingEmitter) EmitEvent(context.Context, *events.Event) error {
	return errors.New("emitter down")
}

// brokenStore reports failures without a sentinel for the unexpected-error path.
type brokenStore struct {
	store.CardStore
}

func (brokenStore) SetArchived(uuid.UUID, bool) domain.OperationResult {
	return domain.OperationResult{Success: false, Message: "disk on fire"}
}

func newTestCardService(t *testing.T) (CardService, *recordingHandler) {
	t.Helper()

	cardStore := memory.NewCardStore(srs.NewDefaultService(), nil, memory.WithClock(fixedClock))
	emitter := events.NewInMemoryEventEmitter(nil)
	handler := &recordingHandler{}
	emitter.RegisterHandler(handler)

	svc, err := NewCardService(cardStore, emitter, nil, WithClock(fixedClock))
	require.NoError(t, err)
	return svc, handler
}

// Test NewCardService constructor validation
func TestNewCardService(t *testing.T) {
	cardStore := memory.NewCardStore(srs.NewDefaultService(), nil)
	emitter := events.NewInMemoryEventEmitter(nil)

	tests := []struct {
		name        string
		cardStore   store.CardStore
		emitter     events.EventEmitter
		expectError bool
		errorMsg    string
	}{
		{
			name:        "nil cardStore",
			cardStore:   nil,
			emitter:     emitter,
			expectError: true,
			errorMsg:    "cardStore",
		},
		{
			name:        "nil emitter",
			cardStore:   cardStore,
			emitter:     nil,
			expectError: true,
			errorMsg:    "emitter",
		},
		{
			name:        "all dependencies provided",
			cardStore:   cardStore,
			emitter:     emitter,
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewCardService(tt.cardStore, tt.emitter, nil)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.ErrorIs(t, err, domain.ErrInvalidArgument)
				assert.Nil(t, svc)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, svc)
		})
	}
}

func TestCardServiceCreateAndGet(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCardService(t)

	card, err := svc.CreateCard(ctx, domain.CardDraft{Question: " What is 2+2? ", Answer: "4"})
	require.NoError(t, err)
	assert.Equal(t, "What is 2+2?", card.Question)
	assert.Equal(t, fixedNow, card.CreatedAt)

	got, err := svc.GetCard(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, card, got)

	_, err = svc.GetCard(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrCardNotFound)

	assert.Equal(t, 1, svc.Count(ctx))
}

func TestCardServiceCreateFailures(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCardService(t)

	_, err := svc.CreateCard(ctx, domain.CardDraft{Question: "", Answer: "4"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	var cardErr *CardServiceError
	assert.False(t, errors.As(err, &cardErr), "expected failures are not wrapped")

	id := uuid.New()
	_, err = svc.CreateCard(ctx, domain.CardDraft{ID: &id, Question: "Q", Answer: "A"})
	require.NoError(t, err)
	_, err = svc.CreateCard(ctx, domain.CardDraft{ID: &id, Question: "Q", Answer: "A"})
	assert.ErrorIs(t, err, store.ErrDuplicateID)
}

func TestCardServiceListAndSearch(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCardService(t)

	italy, err := svc.CreateCard(ctx, domain.CardDraft{Question: "Capital of Italy?", Answer: "Rome"})
	require.NoError(t, err)
	_, err = svc.CreateCard(ctx, domain.CardDraft{Question: "Largest ocean?", Answer: "Pacific", Archived: true})
	require.NoError(t, err)

	assert.Len(t, svc.ListCards(ctx, false), 1)
	assert.Len(t, svc.ListCards(ctx, true), 2)

	found := svc.SearchCards(ctx, "CAPITAL", false)
	require.Len(t, found, 1)
	assert.Equal(t, italy.ID, found[0].ID)

	assert.Empty(t, svc.SearchCards(ctx, "rome", false))
	assert.Len(t, svc.SearchCards(ctx, "rome", true), 1)
	assert.Empty(t, svc.SearchCards(ctx, "pacific", true), "archived cards are not searched")
}

func TestCardServiceMutations(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCardService(t)

	card, err := svc.CreateCard(ctx, domain.CardDraft{Question: "Q", Answer: "A"})
	require.NoError(t, err)

	archived, err := svc.SetArchived(ctx, card.ID, true)
	require.NoError(t, err)
	assert.True(t, archived.Archived)

	tagged, err := svc.AddTag(ctx, card.ID, "Math")
	require.NoError(t, err)
	assert.Equal(t, []string{"Math"}, tagged.Tags)

	_, err = svc.AddTag(ctx, card.ID, "math")
	assert.ErrorIs(t, err, store.ErrDuplicateTag)

	untagged, err := svc.RemoveTag(ctx, card.ID, "MATH")
	require.NoError(t, err)
	assert.Empty(t, untagged.Tags)

	_, err = svc.RemoveTag(ctx, card.ID, "math")
	assert.ErrorIs(t, err, store.ErrTagNotFound)

	_, err = svc.SetArchived(ctx, uuid.New(), true)
	assert.ErrorIs(t, err, store.ErrCardNotFound)
}

func TestCardServiceUnexpectedFailureIsWrapped(t *testing.T) {
	emitter := events.NewInMemoryEventEmitter(nil)
	svc, err := NewCardService(brokenStore{}, emitter, nil)
	require.NoError(t, err)

	_, err = svc.SetArchived(context.Background(), uuid.New(), true)
	require.Error(t, err)

	var cardErr *CardServiceError
	require.ErrorAs(t, err, &cardErr)
	assert.Equal(t, "set_archived", cardErr.Operation)
	assert.ErrorIs(t, err, ErrOperationFailed)
}

func TestCardServiceDeleteEmitsEvent(t *testing.T) {
	ctx := context.Background()
	svc, handler := newTestCardService(t)

	card, err := svc.CreateCard(ctx, domain.CardDraft{Question: "Q", Answer: "A"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCard(ctx, card.ID))
	assert.Equal(t, 0, svc.Count(ctx))

	require.Len(t, handler.events, 1)
	assert.Equal(t, events.CardRemoved, handler.events[0].Type)

	removedID, err := handler.events[0].RemovedCardID()
	require.NoError(t, err)
	assert.Equal(t, card.ID, removedID)

	err = svc.DeleteCard(ctx, card.ID)
	assert.ErrorIs(t, err, store.ErrCardNotFound)
	assert.Len(t, handler.events, 1, "failed deletes emit nothing")
}

func TestCardServiceDeleteSurvivesEmitterFailure(t *testing.T) {
	ctx := context.Background()
	cardStore := memory.NewCardStore(srs.NewDefaultService(), nil)
	svc, err := NewCardService(cardStore, failingEmitter{}, nil)
	require.NoError(t, err)

	card, err := svc.CreateCard(ctx, domain.CardDraft{Question: "Q", Answer: "A"})
	require.NoError(t, err)

	assert.NoError(t, svc.DeleteCard(ctx, card.ID))
	assert.Equal(t, 0, svc.Count(ctx))
}

func TestCardServiceStats(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCardService(t)

	_, err := svc.CreateCard(ctx, domain.CardDraft{Question: "Q1", Answer: "A", Tags: []string{"go"}})
	require.NoError(t, err)
	_, err = svc.CreateCard(ctx, domain.CardDraft{
		Question:  "Q2",
		Answer:    "A",
		NextDueAt: func() *time.Time { t := fixedNow.Add(time.Hour); return &t }(),
	})
	require.NoError(t, err)

	stats := svc.Stats(ctx)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Due)
	assert.Equal(t, map[string]int{"go": 1}, stats.TagFrequency)
	assert.Equal(t, fixedNow, stats.ComputedAt)
}
