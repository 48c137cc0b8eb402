package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-cards/internal/domain"
)

// CreateCardRequest is the body of POST /api/cards.
// Only question and answer are required; the rest override the defaults a
// new card gets, which allows importing cards with existing review state.
type CreateCardRequest struct {
	ID             *uuid.UUID `json:"id,omitempty"`
	Question       string     `json:"question"                  validate:"required,max=10000"`
	Answer         string     `json:"answer"                    validate:"required,max=10000"`
	Category       string     `json:"category,omitempty"        validate:"max=200"`
	Tags           []string   `json:"tags,omitempty"            validate:"max=100,dive,max=100"`
	Repetitions    int        `json:"repetitions,omitempty"     validate:"gte=0"`
	EasinessFactor *float64   `json:"easiness_factor,omitempty" validate:"omitempty,gt=0"`
	NextDueAt      *time.Time `json:"next_due_at,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	Archived       bool       `json:"archived,omitempty"`
}

// Draft converts the request into the draft accepted by the card store.
func (r CreateCardRequest) Draft() domain.CardDraft {
	return domain.CardDraft{
		ID:             r.ID,
		Question:       r.Question,
		Answer:         r.Answer,
		Category:       r.Category,
		Repetitions:    r.Repetitions,
		EasinessFactor: r.EasinessFactor,
		NextDueAt:      r.NextDueAt,
		CreatedAt:      r.CreatedAt,
		Tags:           r.Tags,
		Archived:       r.Archived,
	}
}

// SubmitAnswerRequest is the body of POST /api/cards/{id}/answer.
type SubmitAnswerRequest struct {
	Correct *bool `json:"correct" validate:"required"`
}

// SetArchivedRequest is the body of PUT /api/cards/{id}/archive.
type SetArchivedRequest struct {
	Archived *bool `json:"archived" validate:"required"`
}

// AddTagRequest is the body of POST /api/cards/{id}/tags.
type AddTagRequest struct {
	Tag string `json:"tag" validate:"required,max=100"`
}

// CardResponse is the wire form of a card.
type CardResponse struct {
	ID                   uuid.UUID  `json:"id"`
	Question             string     `json:"question"`
	Answer               string     `json:"answer"`
	Category             string     `json:"category"`
	Tags                 []string   `json:"tags"`
	Repetitions          int        `json:"repetitions"`
	EasinessFactor       float64    `json:"easiness_factor"`
	Interval             int        `json:"interval"`
	NextDueAt            time.Time  `json:"next_due_at"`
	CreatedAt            time.Time  `json:"created_at"`
	LastModifiedAt       time.Time  `json:"last_modified_at"`
	LastReviewedAt       *time.Time `json:"last_reviewed_at,omitempty"`
	Archived             bool       `json:"archived"`
	LastRecallSuccessful bool       `json:"last_recall_successful"`
	PerformanceScore     float64    `json:"performance_score"`
}

// ReviewResponse is the wire form of one entry of a card's review history.
type ReviewResponse struct {
	WasCorrect     bool      `json:"was_correct"`
	Interval       int       `json:"interval"`
	EasinessFactor float64   `json:"easiness_factor"`
	Repetitions    int       `json:"repetitions"`
	ReviewedAt     time.Time `json:"reviewed_at"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
	Cards  int    `json:"cards"`
}

// cardToResponse converts a domain.Card to a CardResponse.
func cardToResponse(card domain.Card) CardResponse {
	tags := card.Tags
	if tags == nil {
		tags = []string{}
	}

	return CardResponse{
		ID:                   card.ID,
		Question:             card.Question,
		Answer:               card.Answer,
		Category:             card.Category,
		Tags:                 tags,
		Repetitions:          card.Repetitions,
		EasinessFactor:       card.EasinessFactor,
		Interval:             card.Interval,
		NextDueAt:            card.NextDueAt,
		CreatedAt:            card.CreatedAt,
		LastModifiedAt:       card.LastModifiedAt,
		LastReviewedAt:       card.LastReviewedAt,
		Archived:             card.Archived,
		LastRecallSuccessful: card.LastRecallSuccessful,
		PerformanceScore:     card.PerformanceScore,
	}
}

func cardsToResponse(cards []domain.Card) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, cardToResponse(c))
	}
	return out
}

func reviewsToResponse(entries []domain.ReviewLogEntry) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ReviewResponse{
			WasCorrect:     e.WasCorrect,
			Interval:       e.Interval,
			EasinessFactor: e.EasinessFactor,
			Repetitions:    e.Repetitions,
			ReviewedAt:     e.ReviewedAt,
		})
	}
	return out
}
