package srs

import (
	"errors"
	"testing"
)

func TestNewDefaultParams(t *testing.T) {
	params := NewDefaultParams()

	if params.MinEaseFactor != 1.3 {
		t.Errorf("MinEaseFactor should be 1.3, got %f", params.MinEaseFactor)
	}
	if params.MaxEaseFactor != 2.5 {
		t.Errorf("MaxEaseFactor should be 2.5, got %f", params.MaxEaseFactor)
	}
	if params.LapsePenalty != 0.2 {
		t.Errorf("LapsePenalty should be 0.2, got %f", params.LapsePenalty)
	}
	if params.LapseInterval != 1 {
		t.Errorf("LapseInterval should be 1, got %d", params.LapseInterval)
	}

	want := []int{1, 3, 7}
	if len(params.FixedIntervals) != len(want) {
		t.Fatalf("FixedIntervals should be %v, got %v", want, params.FixedIntervals)
	}
	for i := range want {
		if params.FixedIntervals[i] != want[i] {
			t.Errorf("FixedIntervals[%d] should be %d, got %d", i, want[i], params.FixedIntervals[i])
		}
	}

	if err := params.Validate(); err != nil {
		t.Errorf("Default params should be valid, got %v", err)
	}
}

func TestNewParams(t *testing.T) {
	fixed := []int{1, 2}
	customParams := NewParams(ParamsConfig{
		MinEaseFactor:  1.5,
		MaxEaseFactor:  2.4,
		LapsePenalty:   0.3,
		FixedIntervals: fixed,
		LapseInterval:  2,
	})

	if customParams.MinEaseFactor != 1.5 {
		t.Errorf("MinEaseFactor not set correctly, got %f, expected 1.5", customParams.MinEaseFactor)
	}
	if customParams.MaxEaseFactor != 2.4 {
		t.Errorf("MaxEaseFactor not set correctly, got %f, expected 2.4", customParams.MaxEaseFactor)
	}
	if customParams.LapsePenalty != 0.3 {
		t.Errorf("LapsePenalty not set correctly, got %f, expected 0.3", customParams.LapsePenalty)
	}
	if customParams.SuccessBonus != 0.1 {
		t.Errorf("SuccessBonus should keep its default, got %f", customParams.SuccessBonus)
	}
	if customParams.LapseInterval != 2 {
		t.Errorf("LapseInterval not set correctly, got %d, expected 2", customParams.LapseInterval)
	}

	// The config slice must not be aliased.
	fixed[0] = 99
	if customParams.FixedIntervals[0] != 1 {
		t.Errorf("FixedIntervals should be copied, got %v", customParams.FixedIntervals)
	}

	// Defaults must not leak between instances.
	if NewDefaultParams().LapsePenalty != 0.2 {
		t.Error("NewParams modified the defaults")
	}
}

func TestParamsValidate(t *testing.T) {
	testCases := []struct {
		name   string
		params *Params
	}{
		{name: "nil params", params: nil},
		{name: "min below domain floor", params: NewParams(ParamsConfig{MinEaseFactor: 1.1})},
		{name: "max above domain ceiling", params: NewParams(ParamsConfig{MaxEaseFactor: 3.0})},
		{name: "min above max", params: NewParams(ParamsConfig{MinEaseFactor: 2.4, MaxEaseFactor: 1.5})},
		{name: "zero fixed interval", params: NewParams(ParamsConfig{FixedIntervals: []int{1, 0}})},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.params.Validate()
			if !errors.Is(err, ErrInvalidParams) {
				t.Errorf("Expected ErrInvalidParams, got %v", err)
			}
		})
	}
}
