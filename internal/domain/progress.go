package domain

import (
	"time"
)

// UncategorizedLabel is used for cards without a category in progress reports.
const UncategorizedLabel = "Uncategorized"

// ProgressReport is the flashcard part of a learner's progress summary.
type ProgressReport struct {
	CardCount             int                `json:"card_count"`
	MasteryPercentage     float64            `json:"mastery_percentage"`
	RetentionRate         float64            `json:"retention_rate"`
	PerformanceByCategory map[string]float64 `json:"performance_by_category"`
	GeneratedAt           time.Time          `json:"generated_at"`
}

// NewProgressReport derives a progress report from a snapshot of cards.
// Mastery counts cards with at least MasteryRepetitions repetitions; retention
// and per-category performance count cards whose last recall succeeded.
func NewProgressReport(cards []Card, now time.Time) ProgressReport {
	report := ProgressReport{
		CardCount:             len(cards),
		PerformanceByCategory: make(map[string]float64),
		GeneratedAt:           now,
	}
	if len(cards) == 0 {
		return report
	}

	var mastered, recalled int
	type tally struct{ total, recalled int }
	byCategory := make(map[string]*tally)

	for _, card := range cards {
		if card.Repetitions >= MasteryRepetitions {
			mastered++
		}

		category := card.Category
		if category == "" {
			category = UncategorizedLabel
		}
		t, ok := byCategory[category]
		if !ok {
			t = &tally{}
			byCategory[category] = t
		}
		t.total++

		if card.LastRecallSuccessful {
			recalled++
			t.recalled++
		}
	}

	n := float64(len(cards))
	report.MasteryPercentage = float64(mastered) / n * 100
	report.RetentionRate = float64(recalled) / n * 100
	for category, t := range byCategory {
		report.PerformanceByCategory[category] = float64(t.recalled) / float64(t.total) * 100
	}

	return report
}
