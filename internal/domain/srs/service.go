package srs

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrNegativeRepetitions = errors.New("repetitions cannot be negative")
)

// defaultParams backs Compute and the default service. It is never mutated.
var defaultParams = NewDefaultParams()

// Schedule is the result of scheduling one review.
type Schedule struct {
	Interval       int     // Days until the next review, always >= 1
	EasinessFactor float64 // New easiness factor, within the parameter bounds
}

// Service defines the interface for SRS algorithm operations
type Service interface {
	// Schedule computes the next interval and easiness factor for a card
	// with the given repetition count and easiness factor.
	Schedule(repetitions int, easinessFactor float64, wasCorrect bool) (Schedule, error)
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new SRS service with default parameters
func NewDefaultService() Service {
	return &defaultService{
		params: defaultParams,
	}
}

// NewServiceWithParams creates a new SRS service with custom parameters
func NewServiceWithParams(params *Params) (Service, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &defaultService{
		params: params,
	}, nil
}

// Schedule implements the Service interface
func (s *defaultService) Schedule(repetitions int, easinessFactor float64, wasCorrect bool) (Schedule, error) {
	if repetitions < 0 {
		return Schedule{}, fmt.Errorf("%w: got %d", ErrNegativeRepetitions, repetitions)
	}

	return calculateSchedule(repetitions, easinessFactor, wasCorrect, s.params), nil
}
