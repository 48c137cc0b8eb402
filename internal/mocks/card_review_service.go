package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-cards/internal/domain"
	"github.com/phrazzld/scry-cards/internal/service/card_review"
)

// MockCardReviewService implements card_review.CardReviewService for testing
type MockCardReviewService struct {
	// Custom behavior functions
	GetNextCardFn  func(ctx context.Context) (domain.Card, error)
	SubmitAnswerFn func(ctx context.Context, cardID uuid.UUID, answer card_review.ReviewAnswer) (domain.Card, error)
	HistoryFn      func(ctx context.Context, cardID uuid.UUID) ([]domain.ReviewLogEntry, error)

	// Default response values
	NextCard     domain.Card
	ReviewedCard domain.Card
	Entries      []domain.ReviewLogEntry
	Err          error

	// Call tracking for verification
	GetNextCardCalls struct {
		mu    sync.Mutex
		Count int
	}

	SubmitAnswerCalls struct {
		mu      sync.Mutex
		Count   int
		CardIDs []uuid.UUID
		Answers []card_review.ReviewAnswer
	}
}

var _ card_review.CardReviewService = (*MockCardReviewService)(nil)

// GetNextCard implements the card_review.CardReviewService interface
func (m *MockCardReviewService) GetNextCard(ctx context.Context) (domain.Card, error) {
	m.GetNextCardCalls.mu.Lock()
	m.GetNextCardCalls.Count++
	m.GetNextCardCalls.mu.Unlock()

	if m.GetNextCardFn != nil {
		return m.GetNextCardFn(ctx)
	}
	return m.NextCard, m.Err
}

// SubmitAnswer implements the card_review.CardReviewService interface
func (m *MockCardReviewService) SubmitAnswer(
	ctx context.Context,
	cardID uuid.UUID,
	answer card_review.ReviewAnswer,
) (domain.Card, error) {
	m.SubmitAnswerCalls.mu.Lock()
	m.SubmitAnswerCalls.Count++
	m.SubmitAnswerCalls.CardIDs = append(m.SubmitAnswerCalls.CardIDs, cardID)
	m.SubmitAnswerCalls.Answers = append(m.SubmitAnswerCalls.Answers, answer)
	m.SubmitAnswerCalls.mu.Unlock()

	if m.SubmitAnswerFn != nil {
		return m.SubmitAnswerFn(ctx, cardID, answer)
	}
	return m.ReviewedCard, m.Err
}

// History implements the card_review.CardReviewService interface
func (m *MockCardReviewService) History(
	ctx context.Context,
	cardID uuid.UUID,
) ([]domain.ReviewLogEntry, error) {
	if m.HistoryFn != nil {
		return m.HistoryFn(ctx, cardID)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Entries == nil {
		return []domain.ReviewLogEntry{}, nil
	}
	return m.Entries, nil
}

// Reset clears the recorded calls
func (m *MockCardReviewService) Reset() {
	m.GetNextCardCalls.mu.Lock()
	m.GetNextCardCalls.Count = 0
	m.GetNextCardCalls.mu.Unlock()

	m.SubmitAnswerCalls.mu.Lock()
	m.SubmitAnswerCalls.Count = 0
	m.SubmitAnswerCalls.CardIDs = nil
	m.SubmitAnswerCalls.Answers = nil
	m.SubmitAnswerCalls.mu.Unlock()
}

// MockOption is a function type that configures a MockCardReviewService
type MockOption func(*MockCardReviewService)

// WithNextCard sets the default card to return from GetNextCard
func WithNextCard(card domain.Card) MockOption {
	return func(m *MockCardReviewService) {
		m.NextCard = card
	}
}

// WithReviewedCard sets the default card to return from SubmitAnswer
func WithReviewedCard(card domain.Card) MockOption {
	return func(m *MockCardReviewService) {
		m.ReviewedCard = card
	}
}

// WithError sets the default error to return from GetNextCard and SubmitAnswer
func WithError(err error) MockOption {
	return func(m *MockCardReviewService) {
		m.Err = err
	}
}

// NewMockCardReviewService creates a new MockCardReviewService with the given options
func NewMockCardReviewService(opts ...MockOption) *MockCardReviewService {
	mock := &MockCardReviewService{}
	for _, opt := range opts {
		opt(mock)
	}
	return mock
}

// NewMockCardReviewServiceWithNoCardsDue returns a mock that simulates no cards due for review
func NewMockCardReviewServiceWithNoCardsDue() *MockCardReviewService {
	return NewMockCardReviewService(WithError(card_review.ErrNoCardsDue))
}

// NewMockCardReviewServiceWithCardNotFound returns a mock that simulates card not found
func NewMockCardReviewServiceWithCardNotFound() *MockCardReviewService {
	return NewMockCardReviewService(WithError(card_review.ErrCardNotFound))
}
