package domain

import (
	"time"
)

// AggregateStats summarizes a snapshot of the card collection.
// It is derived on demand and never stored.
type AggregateStats struct {
	Total              int            `json:"total"`
	Active             int            `json:"active"`
	Archived           int            `json:"archived"`
	Due                int            `json:"due"`
	New                int            `json:"new"`      // repetitions == 0
	Learning           int            `json:"learning"` // 0 < repetitions < MasteryRepetitions
	Review             int            `json:"review"`   // repetitions >= MasteryRepetitions
	AverageEasiness    float64        `json:"average_easiness"`
	AverageRepetitions float64        `json:"average_repetitions"`
	AveragePerformance float64        `json:"average_performance"`
	RetentionRate      float64        `json:"retention_rate"` // percent of reviewed cards recalled last time
	TagFrequency       map[string]int `json:"tag_frequency"`      // keyed by FoldKey(tag)
	CategoryFrequency  map[string]int `json:"category_frequency"` // keyed by category as written
	ComputedAt         time.Time      `json:"computed_at"`
}

// NewAggregateStats computes statistics over cards in a single pass.
// Averages include archived cards; Due only counts active ones.
func NewAggregateStats(cards []Card, now time.Time) AggregateStats {
	stats := AggregateStats{
		TagFrequency:      make(map[string]int),
		CategoryFrequency: make(map[string]int),
		ComputedAt:        now,
	}

	var efSum, repSum, perfSum float64
	var reviewed, recalled int

	for _, card := range cards {
		stats.Total++
		if card.Archived {
			stats.Archived++
		} else {
			stats.Active++
		}
		if card.IsDue(now) {
			stats.Due++
		}

		switch {
		case card.Repetitions == 0:
			stats.New++
		case card.Repetitions < MasteryRepetitions:
			stats.Learning++
		default:
			stats.Review++
		}

		efSum += card.EasinessFactor
		repSum += float64(card.Repetitions)
		perfSum += card.PerformanceScore

		if card.LastReviewedAt != nil {
			reviewed++
			if card.LastRecallSuccessful {
				recalled++
			}
		}

		for _, tag := range card.Tags {
			if tag == "" {
				continue
			}
			stats.TagFrequency[FoldKey(tag)]++
		}
		if card.Category != "" {
			stats.CategoryFrequency[card.Category]++
		}
	}

	if stats.Total > 0 {
		n := float64(stats.Total)
		stats.AverageEasiness = efSum / n
		stats.AverageRepetitions = repSum / n
		stats.AveragePerformance = perfSum / n
	}
	if reviewed > 0 {
		stats.RetentionRate = float64(recalled) / float64(reviewed) * 100
	}

	return stats
}
