package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-cards/internal/domain"
)

// Card lifecycle event types.
const (
	// CardReviewed is emitted after a review has been applied to a card.
	// Its payload is the domain.ReviewLogEntry describing the review.
	CardReviewed = "card.reviewed"

	// CardRemoved is emitted after a card has been deleted from the store.
	// Its payload is a CardRemovedPayload.
	CardRemoved = "card.removed"
)

// ErrUnexpectedType is returned when a payload accessor is used on an event
// of a different type.
var ErrUnexpectedType = errors.New("unexpected event type")

// Event is a notification about a card. The payload is kept as raw JSON so
// handlers decode only the events they care about.
type Event struct {
	ID        uuid.UUID       `json:"id"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// CardRemovedPayload identifies the card a CardRemoved event is about.
type CardRemovedPayload struct {
	CardID uuid.UUID `json:"card_id"`
}

// NewEvent creates an event of the given type with payload serialized as JSON.
func NewEvent(eventType string, payload any) (*Event, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s payload: %w", eventType, err)
	}

	return &Event{
		ID:        uuid.New(),
		Type:      eventType,
		Payload:   payloadBytes,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// NewCardReviewedEvent announces an applied review.
func NewCardReviewedEvent(entry domain.ReviewLogEntry) (*Event, error) {
	return NewEvent(CardReviewed, entry)
}

// NewCardRemovedEvent announces the deletion of a card.
func NewCardRemovedEvent(cardID uuid.UUID) (*Event, error) {
	return NewEvent(CardRemoved, CardRemovedPayload{CardID: cardID})
}

// UnmarshalPayload decodes the event payload into v.
func (e *Event) UnmarshalPayload(v any) error {
	return json.Unmarshal(e.Payload, v)
}

// ReviewEntry decodes the review carried by a CardReviewed event.
func (e *Event) ReviewEntry() (domain.ReviewLogEntry, error) {
	var entry domain.ReviewLogEntry
	if e.Type != CardReviewed {
		return entry, fmt.Errorf("%w: want %s, got %s", ErrUnexpectedType, CardReviewed, e.Type)
	}
	if err := e.UnmarshalPayload(&entry); err != nil {
		return entry, fmt.Errorf("failed to decode review log entry: %w", err)
	}
	return entry, nil
}

// RemovedCardID decodes the card ID carried by a CardRemoved event.
func (e *Event) RemovedCardID() (uuid.UUID, error) {
	if e.Type != CardRemoved {
		return uuid.Nil, fmt.Errorf("%w: want %s, got %s", ErrUnexpectedType, CardRemoved, e.Type)
	}
	var payload CardRemovedPayload
	if err := e.UnmarshalPayload(&payload); err != nil {
		return uuid.Nil, fmt.Errorf("failed to decode removed card: %w", err)
	}
	return payload.CardID, nil
}

// EventHandler reacts to card events. Handlers ignore types they do not know.
type EventHandler interface {
	HandleEvent(ctx context.Context, event *Event) error
}

// HandlerFunc adapts a function to EventHandler.
type HandlerFunc func(ctx context.Context, event *Event) error

// HandleEvent calls f(ctx, event).
func (f HandlerFunc) HandleEvent(ctx context.Context, event *Event) error {
	return f(ctx, event)
}

// EventEmitter publishes card events to whoever subscribed, so the card and
// review services stay unaware of the review log.
type EventEmitter interface {
	EmitEvent(ctx context.Context, event *Event) error
}
