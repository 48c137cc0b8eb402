package domain

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

// Easiness factor bounds and defaults shared by the store and the scheduler.
const (
	MinEasinessFactor     = 1.3
	MaxEasinessFactor     = 2.5
	DefaultEasinessFactor = 2.5

	// MasteryRepetitions is the repetition count from which a card counts as mastered.
	MasteryRepetitions = 3

	// Performance score adjustments applied on each review.
	PerformanceSuccessBonus = 15.0
	PerformanceLapsePenalty = 20.0
	MaxPerformanceScore     = 100.0
)

// Card represents a flashcard owned by a card store.
// Values handed out by a store are deep copies; changing them has no effect
// on the stored card.
type Card struct {
	ID                   uuid.UUID  `json:"id"`
	Question             string     `json:"question"`
	Answer               string     `json:"answer"`
	Category             string     `json:"category"`
	Repetitions          int        `json:"repetitions"`
	EasinessFactor       float64    `json:"easiness_factor"`
	Interval             int        `json:"interval"` // Last scheduled interval in days
	NextDueAt            time.Time  `json:"next_due_at"`
	CreatedAt            time.Time  `json:"created_at"`
	LastModifiedAt       time.Time  `json:"last_modified_at"`
	LastReviewedAt       *time.Time `json:"last_reviewed_at,omitempty"` // Nil until the first review
	Tags                 []string   `json:"tags"`
	Archived             bool       `json:"archived"`
	LastRecallSuccessful bool       `json:"last_recall_successful"`
	PerformanceScore     float64    `json:"performance_score"`
}

// CardDraft is the input for inserting a card. Pointer fields are optional;
// nil means "not provided" and the store fills in a default.
type CardDraft struct {
	ID             *uuid.UUID
	Question       string
	Answer         string
	Category       string
	Repetitions    int
	EasinessFactor *float64
	NextDueAt      *time.Time
	CreatedAt      *time.Time
	Tags           []string
	Archived       bool
}

// NewCardFromDraft validates and normalizes a draft into a Card.
// Missing values are defaulted using now. The draft itself is not modified.
//
// Normalization rules:
//   - question and answer are trimmed and must not be empty
//   - tags are trimmed, blank tags dropped, and duplicates (case-insensitive) removed
//     keeping the first spelling
//   - easiness factor is clamped into [MinEasinessFactor, MaxEasinessFactor]
//   - negative repetitions become 0
//   - NextDueAt and LastModifiedAt are never earlier than CreatedAt
func NewCardFromDraft(draft CardDraft, now time.Time) (Card, error) {
	question := strings.TrimSpace(draft.Question)
	if question == "" {
		return Card{}, NewValidationError("question", "cannot be empty", ErrEmptyQuestion)
	}

	answer := strings.TrimSpace(draft.Answer)
	if answer == "" {
		return Card{}, NewValidationError("answer", "cannot be empty", ErrEmptyAnswer)
	}

	card := Card{
		ID:             uuid.New(),
		Question:       question,
		Answer:         answer,
		Category:       strings.TrimSpace(draft.Category),
		Repetitions:    max(draft.Repetitions, 0),
		EasinessFactor: DefaultEasinessFactor,
		CreatedAt:      now,
		NextDueAt:      now,
		LastModifiedAt: now,
		Tags:           NormalizeTags(draft.Tags),
		Archived:       draft.Archived,
	}

	if draft.ID != nil && *draft.ID != uuid.Nil {
		card.ID = *draft.ID
	}
	if draft.EasinessFactor != nil {
		card.EasinessFactor = ClampEasinessFactor(*draft.EasinessFactor)
	}
	if draft.CreatedAt != nil && !draft.CreatedAt.IsZero() {
		card.CreatedAt = draft.CreatedAt.UTC()
	}
	if draft.NextDueAt != nil && !draft.NextDueAt.IsZero() {
		card.NextDueAt = draft.NextDueAt.UTC()
	}
	card.NextDueAt = Later(card.NextDueAt, card.CreatedAt)
	card.LastModifiedAt = Later(card.LastModifiedAt, card.CreatedAt)

	return card, nil
}

// Clone returns a deep copy of the card.
func (c Card) Clone() Card {
	out := c
	out.Tags = slices.Clone(c.Tags)
	if out.Tags == nil {
		out.Tags = []string{}
	}
	if c.LastReviewedAt != nil {
		reviewed := *c.LastReviewedAt
		out.LastReviewedAt = &reviewed
	}
	return out
}

// IsDue reports whether the card is active and its review date has passed.
func (c Card) IsDue(now time.Time) bool {
	return !c.Archived && !c.NextDueAt.After(now)
}

// ApplyReview records the outcome of a review using a schedule computed for the
// card's state before the review. The caller must hold exclusive access to c.
func (c *Card) ApplyReview(interval int, easinessFactor float64, wasCorrect bool, now time.Time) {
	c.Repetitions++
	c.EasinessFactor = ClampEasinessFactor(easinessFactor)
	c.Interval = interval

	due := now.AddDate(0, 0, interval)
	if due.Before(c.CreatedAt) {
		due = c.CreatedAt
	}
	c.NextDueAt = due

	reviewed := now
	if c.LastReviewedAt != nil {
		reviewed = Later(*c.LastReviewedAt, now)
	}
	c.LastReviewedAt = &reviewed
	c.LastRecallSuccessful = wasCorrect

	if wasCorrect {
		c.PerformanceScore = min(MaxPerformanceScore, c.PerformanceScore+PerformanceSuccessBonus)
	} else {
		c.PerformanceScore = max(0, c.PerformanceScore-PerformanceLapsePenalty)
	}

	c.Touch(now)
}

// Touch bumps LastModifiedAt without ever moving it backwards.
func (c *Card) Touch(now time.Time) {
	c.LastModifiedAt = Later(c.LastModifiedAt, now)
}

// TagIndex returns the position of tag in the card's tags, compared
// case-insensitively, or -1 if the card does not carry it.
func (c Card) TagIndex(tag string) int {
	key := FoldKey(tag)
	return slices.IndexFunc(c.Tags, func(t string) bool {
		return FoldKey(t) == key
	})
}

// ClampEasinessFactor keeps an easiness factor within the allowed bounds.
func ClampEasinessFactor(ef float64) float64 {
	return min(max(ef, MinEasinessFactor), MaxEasinessFactor)
}

// NormalizeTags trims tags, drops blank ones, and removes case-insensitive
// duplicates while keeping the first spelling and the original order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		key := FoldKey(tag)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// FoldKey returns the case-folded form of s used for case-insensitive
// comparisons of tags and search text.
func FoldKey(s string) string {
	return cases.Fold().String(s)
}

// Later returns the later of two timestamps.
func Later(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}
