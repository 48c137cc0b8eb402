package srs

import (
	"math"
)

// calculateNewEaseFactor determines the new ease factor based on the review outcome.
//
// The ease factor represents the card's difficulty - higher values mean the card
// is easier and intervals grow faster.
//
// Algorithm behavior:
//   - A lapse subtracts params.LapsePenalty (0.2 by default)
//   - A correct answer applies ef + 0.1 - 0.52/ef
//   - The result is always clamped to [params.MinEaseFactor, params.MaxEaseFactor]
func calculateNewEaseFactor(currentEF float64, wasCorrect bool, params *Params) float64 {
	currentEF = clamp(currentEF, params.MinEaseFactor, params.MaxEaseFactor)

	var newEF float64
	if wasCorrect {
		newEF = currentEF + params.SuccessBonus - params.SuccessPenaltyScale*(1/currentEF)
	} else {
		newEF = currentEF - params.LapsePenalty
	}

	return clamp(newEF, params.MinEaseFactor, params.MaxEaseFactor)
}

// calculateNewInterval determines the next interval in days.
//
// Algorithm behavior:
//   - A lapse always schedules params.LapseInterval (1 day)
//   - The first repetitions use params.FixedIntervals (1, 3, 7 days)
//   - Afterwards the interval is (repetitions - 1) * newEF, rounded half to even
//   - The result is never below 1 day
//
// newEF is the ease factor already updated for this review.
func calculateNewInterval(repetitions int, newEF float64, wasCorrect bool, params *Params) int {
	if !wasCorrect {
		return params.LapseInterval
	}

	if repetitions < len(params.FixedIntervals) {
		return params.FixedIntervals[repetitions]
	}

	return max(roundInterval(float64(repetitions-1)*newEF), 1)
}

// roundInterval rounds a fractional interval to whole days using
// round-half-to-even, so 4.5 becomes 4 and 5.5 becomes 6.
func roundInterval(days float64) int {
	return int(math.RoundToEven(days))
}

// calculateSchedule runs both calculations for one review.
func calculateSchedule(repetitions int, easinessFactor float64, wasCorrect bool, params *Params) Schedule {
	newEF := calculateNewEaseFactor(easinessFactor, wasCorrect, params)
	return Schedule{
		Interval:       calculateNewInterval(repetitions, newEF, wasCorrect, params),
		EasinessFactor: newEF,
	}
}

// Compute maps a card's repetition count, easiness factor and review outcome
// to the next interval in days and the new easiness factor, using the default
// parameters. It is deterministic and has no side effects; it does not reset
// or increment repetitions, which is left to the caller.
func Compute(repetitions int, easinessFactor float64, wasCorrect bool) (int, float64) {
	s := calculateSchedule(max(repetitions, 0), easinessFactor, wasCorrect, defaultParams)
	return s.Interval, s.EasinessFactor
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
