package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-cards/internal/domain"
)

// CardStore defines the contract for storing flashcards and recording reviews.
// Implementations must be safe for concurrent use by multiple goroutines.
//
// Mutating operations report their outcome as a domain.OperationResult rather
// than an error return. A failed result carries one of the sentinels from this
// package or from domain in its Err field; callers test it with errors.Is.
// Cards returned by any method are copies and never alias stored state.
type CardStore interface {
	// Insert validates and normalizes the draft, then stores it as a new card.
	// A nil draft fails with domain.ErrInvalidArgument.
	// An empty question or answer fails with domain.ErrValidation.
	// A draft ID that is already stored fails with ErrDuplicateID and leaves
	// the existing card untouched.
	Insert(draft *domain.CardDraft) domain.OperationResult

	// NextDue returns the active card with the earliest NextDueAt that is not
	// after now. Ties go to the card inserted first. The boolean is false when
	// no card is due.
	NextDue(now time.Time) (domain.Card, bool)

	// RecordReview applies a review outcome to a card using the scheduler.
	// Returns a failed result with ErrCardNotFound if the card does not exist.
	// The read of the card's state, the scheduler call, and the write-back
	// happen atomically with respect to other updates of the same card.
	RecordReview(id uuid.UUID, wasCorrect bool) domain.OperationResult

	// List returns all cards ordered by CreatedAt, newest first.
	// Archived cards are included only when includeArchived is true.
	List(includeArchived bool) []domain.Card

	// Get returns the card with the given ID. The boolean is false when absent.
	Get(id uuid.UUID) (domain.Card, bool)

	// Remove deletes a card. Returns a failed result with ErrCardNotFound if
	// the card does not exist.
	Remove(id uuid.UUID) domain.OperationResult

	// SetArchived sets the archived flag and bumps LastModifiedAt.
	// Returns a failed result with ErrCardNotFound if the card does not exist.
	SetArchived(id uuid.UUID, archived bool) domain.OperationResult

	// Stats computes aggregate statistics over a single snapshot of the store.
	Stats(now time.Time) domain.AggregateStats

	// Search returns active cards whose question (and answer, when
	// includeAnswers is set) contains text, compared case-insensitively.
	// Results are ordered by LastModifiedAt, most recent first.
	// A blank query returns an empty slice.
	Search(text string, includeAnswers bool) []domain.Card

	// AddTag appends a tag to a card.
	// A blank tag fails with domain.ErrValidation; a tag already present
	// (case-insensitively) fails with ErrDuplicateTag.
	AddTag(id uuid.UUID, tag string) domain.OperationResult

	// RemoveTag removes a tag from a card, compared case-insensitively.
	// A blank tag fails with domain.ErrValidation; a tag the card does not
	// carry fails with ErrTagNotFound.
	RemoveTag(id uuid.UUID, tag string) domain.OperationResult

	// Len returns the number of stored cards, archived included.
	Len() int
}
