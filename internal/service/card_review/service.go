package card_review

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-cards/internal/domain"
)

// ReviewAnswer represents a learner's answer to a flashcard review.
type ReviewAnswer struct {
	Correct bool `json:"correct"` // Whether the learner recalled the answer
}

// CardReviewService provides methods for reviewing flashcards
// using a spaced repetition algorithm.
type CardReviewService interface {
	// GetNextCard retrieves the next card due for review.
	// It picks the active card with the earliest due date that has passed.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can carry a request-scoped logger
	//
	// Returns:
	//   - (domain.Card, nil): The next card due for review if one exists
	//   - (domain.Card{}, ErrNoCardsDue): If no card is due for review
	//
	// This method is a thin wrapper around the store and does not modify any data.
	GetNextCard(ctx context.Context) (domain.Card, error)

	// SubmitAnswer processes an answer for a flashcard and updates the
	// review schedule based on the spaced repetition algorithm.
	//
	// The store reads the card's scheduling state, computes the new schedule,
	// and writes it back atomically. After a successful update a
	// events.CardReviewed event carrying a domain.ReviewLogEntry is emitted.
	//
	// Parameters:
	//   - ctx: Context for the operation
	//   - cardID: UUID of the card being reviewed
	//   - answer: ReviewAnswer with the outcome
	//
	// Returns:
	//   - (domain.Card, nil): The card as it is after the review
	//   - (domain.Card{}, ErrCardNotFound): If the card does not exist
	//   - (domain.Card{}, *ServiceError): Any other failure reported by the store
	//
	// A failure to emit the event is logged and does not fail the review.
	SubmitAnswer(ctx context.Context, cardID uuid.UUID, answer ReviewAnswer) (domain.Card, error)

	// History returns the recorded reviews of a card, oldest first.
	// A card without reviews has an empty history; a card that does not exist
	// yields ErrCardNotFound.
	History(ctx context.Context, cardID uuid.UUID) ([]domain.ReviewLogEntry, error)
}

// Common error types for CardReviewService
var (
	// ErrNoCardsDue indicates that no card is due for review.
	ErrNoCardsDue = errors.New("no cards due for review")

	// ErrCardNotFound indicates that the card does not exist.
	ErrCardNotFound = errors.New("card not found")
)

// ServiceError wraps errors from the card review service with additional context.
// This allows consumers to differentiate between different types of service errors
// using errors.As instead of string matching.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "get_next_card", "submit_answer")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewSubmitAnswerError returns a new ServiceError for the submit_answer operation.
func NewSubmitAnswerError(message string, err error) *ServiceError {
	return &ServiceError{
		Operation: "submit_answer",
		Message:   message,
		Err:       err,
	}
}
