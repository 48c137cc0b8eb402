package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewAggregateStatsEmpty(t *testing.T) {
	t.Parallel()

	stats := NewAggregateStats(nil, testNow)

	assert.Equal(t, 0, stats.Total)
	assert.Zero(t, stats.AverageEasiness)
	assert.Zero(t, stats.AverageRepetitions)
	assert.Zero(t, stats.RetentionRate)
	assert.NotNil(t, stats.TagFrequency)
	assert.NotNil(t, stats.CategoryFrequency)
}

func TestNewAggregateStats(t *testing.T) {
	t.Parallel()

	reviewed := testNow.Add(-time.Hour)
	cards := []Card{
		{
			EasinessFactor: 2.5,
			NextDueAt:      testNow.Add(-time.Minute), // due
			Tags:           []string{"Go", "Concurrency"},
			Category:       "programming",
		},
		{
			EasinessFactor:       1.5,
			Repetitions:          2,
			NextDueAt:            testNow, // due exactly now
			Tags:                 []string{"go"},
			LastReviewedAt:       &reviewed,
			LastRecallSuccessful: true,
			PerformanceScore:     30,
		},
		{
			EasinessFactor:   2.0,
			Repetitions:      4,
			NextDueAt:        testNow.Add(-time.Hour), // archived, not due
			Archived:         true,
			LastReviewedAt:   &reviewed,
			PerformanceScore: 60,
			Category:         "programming",
		},
		{
			EasinessFactor: 2.0,
			NextDueAt:      testNow.Add(time.Hour), // not yet due
		},
	}

	stats := NewAggregateStats(cards, testNow)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 3, stats.Active)
	assert.Equal(t, 1, stats.Archived)
	assert.Equal(t, 2, stats.Due)
	assert.Equal(t, 2, stats.New)
	assert.Equal(t, 1, stats.Learning)
	assert.Equal(t, 1, stats.Review)
	assert.InDelta(t, 2.0, stats.AverageEasiness, 1e-9)
	assert.InDelta(t, 1.5, stats.AverageRepetitions, 1e-9)
	assert.InDelta(t, 22.5, stats.AveragePerformance, 1e-9)
	assert.InDelta(t, 50.0, stats.RetentionRate, 1e-9)
	assert.Equal(t, map[string]int{"go": 2, "concurrency": 1}, stats.TagFrequency)
	assert.Equal(t, map[string]int{"programming": 2}, stats.CategoryFrequency)
	assert.Equal(t, testNow, stats.ComputedAt)
}

func TestNewProgressReport(t *testing.T) {
	t.Parallel()

	cards := []Card{
		{Repetitions: 3, LastRecallSuccessful: true, Category: "math"},
		{Repetitions: 5, LastRecallSuccessful: false, Category: "math"},
		{Repetitions: 1, LastRecallSuccessful: true},
		{Repetitions: 0},
	}

	report := NewProgressReport(cards, testNow)

	assert.Equal(t, 4, report.CardCount)
	assert.InDelta(t, 50.0, report.MasteryPercentage, 1e-9)
	assert.InDelta(t, 50.0, report.RetentionRate, 1e-9)
	assert.InDelta(t, 50.0, report.PerformanceByCategory["math"], 1e-9)
	assert.InDelta(t, 50.0, report.PerformanceByCategory[UncategorizedLabel], 1e-9)
	assert.Equal(t, testNow, report.GeneratedAt)

	empty := NewProgressReport(nil, testNow)
	assert.Zero(t, empty.MasteryPercentage)
	assert.Empty(t, empty.PerformanceByCategory)
}
