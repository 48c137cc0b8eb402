package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewLogEntry records one applied review of a card.
type ReviewLogEntry struct {
	CardID         uuid.UUID `json:"card_id"`
	WasCorrect     bool      `json:"was_correct"`
	Interval       int       `json:"interval"`
	EasinessFactor float64   `json:"easiness_factor"`
	Repetitions    int       `json:"repetitions"`
	ReviewedAt     time.Time `json:"reviewed_at"`
}

// NewReviewLogEntry builds a log entry from a card snapshot taken right after
// a review was applied.
func NewReviewLogEntry(card Card) ReviewLogEntry {
	entry := ReviewLogEntry{
		CardID:         card.ID,
		WasCorrect:     card.LastRecallSuccessful,
		Interval:       card.Interval,
		EasinessFactor: card.EasinessFactor,
		Repetitions:    card.Repetitions,
		ReviewedAt:     card.LastModifiedAt,
	}
	if card.LastReviewedAt != nil {
		entry.ReviewedAt = *card.LastReviewedAt
	}
	return entry
}
