package srs

import (
	"errors"
	"fmt"

	"github.com/phrazzld/scry-cards/internal/domain"
)

// ErrInvalidParams is returned when a Params value would break the easiness
// factor or interval invariants.
var ErrInvalidParams = errors.New("invalid scheduler parameters")

// Params defines all configurable parameters for the SRS algorithm
type Params struct {
	// Core limits
	MinEaseFactor float64
	MaxEaseFactor float64

	// Ease factor adjustments. A correct answer applies
	// ef + SuccessBonus - SuccessPenaltyScale/ef; a lapse subtracts LapsePenalty.
	SuccessBonus        float64
	SuccessPenaltyScale float64
	LapsePenalty        float64

	// FixedIntervals holds the interval in days for the first repetitions,
	// indexed by the repetition count before the review.
	FixedIntervals []int

	// LapseInterval is the interval in days after a failed recall.
	LapseInterval int
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance
type ParamsConfig struct {
	// Core limits
	MinEaseFactor float64
	MaxEaseFactor float64

	// Ease factor adjustments
	SuccessBonus        float64
	SuccessPenaltyScale float64
	LapsePenalty        float64

	// Interval overrides
	FixedIntervals []int
	LapseInterval  int
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		MinEaseFactor: domain.MinEasinessFactor,
		MaxEaseFactor: domain.MaxEasinessFactor,

		SuccessBonus:        0.1,
		SuccessPenaltyScale: 0.52,
		LapsePenalty:        0.2,

		// 1 day, then 3, then a week
		FixedIntervals: []int{1, 3, 7},
		LapseInterval:  1,
	}
}

// NewParams creates a new Params instance with custom configuration.
// Zero values in config keep the defaults.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	// Override core limits if provided
	if config.MinEaseFactor > 0 {
		params.MinEaseFactor = config.MinEaseFactor
	}
	if config.MaxEaseFactor > 0 {
		params.MaxEaseFactor = config.MaxEaseFactor
	}

	// Override ease factor adjustments if provided
	if config.SuccessBonus != 0 {
		params.SuccessBonus = config.SuccessBonus
	}
	if config.SuccessPenaltyScale != 0 {
		params.SuccessPenaltyScale = config.SuccessPenaltyScale
	}
	if config.LapsePenalty > 0 {
		params.LapsePenalty = config.LapsePenalty
	}

	// Override intervals if provided
	if len(config.FixedIntervals) > 0 {
		params.FixedIntervals = append([]int(nil), config.FixedIntervals...)
	}
	if config.LapseInterval > 0 {
		params.LapseInterval = config.LapseInterval
	}

	return params
}

// Validate checks that the parameters keep every computed easiness factor
// inside the domain bounds and every interval positive.
func (p *Params) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: params cannot be nil", ErrInvalidParams)
	}
	if p.MinEaseFactor < domain.MinEasinessFactor || p.MaxEaseFactor > domain.MaxEasinessFactor {
		return fmt.Errorf("%w: ease factor bounds must lie within [%.1f, %.1f]",
			ErrInvalidParams, domain.MinEasinessFactor, domain.MaxEasinessFactor)
	}
	if p.MinEaseFactor > p.MaxEaseFactor {
		return fmt.Errorf("%w: min ease factor %.2f exceeds max %.2f",
			ErrInvalidParams, p.MinEaseFactor, p.MaxEaseFactor)
	}
	if p.LapseInterval < 1 {
		return fmt.Errorf("%w: lapse interval must be at least 1 day", ErrInvalidParams)
	}
	for i, days := range p.FixedIntervals {
		if days < 1 {
			return fmt.Errorf("%w: fixed interval %d must be at least 1 day", ErrInvalidParams, i)
		}
	}
	return nil
}
