package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-cards/internal/domain"
	"github.com/phrazzld/scry-cards/internal/service"
)

// MockCardService implements service.CardService for testing.
// Methods without a function field return Card and DefaultError.
type MockCardService struct {
	CreateCardFn  func(ctx context.Context, draft domain.CardDraft) (domain.Card, error)
	GetCardFn     func(ctx context.Context, cardID uuid.UUID) (domain.Card, error)
	DeleteCardFn  func(ctx context.Context, cardID uuid.UUID) error
	SetArchivedFn func(ctx context.Context, cardID uuid.UUID, archived bool) (domain.Card, error)
	AddTagFn      func(ctx context.Context, cardID uuid.UUID, tag string) (domain.Card, error)
	RemoveTagFn   func(ctx context.Context, cardID uuid.UUID, tag string) (domain.Card, error)

	// Default return values
	Card         domain.Card
	Cards        []domain.Card
	Aggregate    domain.AggregateStats
	DefaultError error
}

var _ service.CardService = (*MockCardService)(nil)

// CreateCard implements the CardService.CreateCard method
func (m *MockCardService) CreateCard(ctx context.Context, draft domain.CardDraft) (domain.Card, error) {
	if m.CreateCardFn != nil {
		return m.CreateCardFn(ctx, draft)
	}
	return m.Card, m.DefaultError
}

// GetCard implements the CardService.GetCard method
func (m *MockCardService) GetCard(ctx context.Context, cardID uuid.UUID) (domain.Card, error) {
	if m.GetCardFn != nil {
		return m.GetCardFn(ctx, cardID)
	}
	return m.Card, m.DefaultError
}

// ListCards implements the CardService.ListCards method
func (m *MockCardService) ListCards(ctx context.Context, includeArchived bool) []domain.Card {
	return m.cards()
}

// SearchCards implements the CardService.SearchCards method
func (m *MockCardService) SearchCards(ctx context.Context, text string, includeAnswers bool) []domain.Card {
	return m.cards()
}

// DeleteCard implements the CardService.DeleteCard method
func (m *MockCardService) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	if m.DeleteCardFn != nil {
		return m.DeleteCardFn(ctx, cardID)
	}
	return m.DefaultError
}

// SetArchived implements the CardService.SetArchived method
func (m *MockCardService) SetArchived(ctx context.Context, cardID uuid.UUID, archived bool) (domain.Card, error) {
	if m.SetArchivedFn != nil {
		return m.SetArchivedFn(ctx, cardID, archived)
	}
	return m.Card, m.DefaultError
}

// AddTag implements the CardService.AddTag method
func (m *MockCardService) AddTag(ctx context.Context, cardID uuid.UUID, tag string) (domain.Card, error) {
	if m.AddTagFn != nil {
		return m.AddTagFn(ctx, cardID, tag)
	}
	return m.Card, m.DefaultError
}

// RemoveTag implements the CardService.RemoveTag method
func (m *MockCardService) RemoveTag(ctx context.Context, cardID uuid.UUID, tag string) (domain.Card, error) {
	if m.RemoveTagFn != nil {
		return m.RemoveTagFn(ctx, cardID, tag)
	}
	return m.Card, m.DefaultError
}

// Stats implements the CardService.Stats method
func (m *MockCardService) Stats(ctx context.Context) domain.AggregateStats {
	return m.Aggregate
}

// Count implements the CardService.Count method
func (m *MockCardService) Count(ctx context.Context) int {
	return len(m.Cards)
}

func (m *MockCardService) cards() []domain.Card {
	if m.Cards == nil {
		return []domain.Card{}
	}
	return m.Cards
}
