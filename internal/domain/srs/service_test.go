package srs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultService(t *testing.T) {
	t.Parallel() // Enable parallel execution
	service := NewDefaultService()
	require.NotNil(t, service, "Expected non-nil service")

	// Check if default params are present
	defaultService, ok := service.(*defaultService)
	require.True(t, ok, "Expected *defaultService type")
	require.NotNil(t, defaultService.params, "Expected non-nil params")
}

func TestNewServiceWithParams(t *testing.T) {
	t.Parallel() // Enable parallel execution

	service, err := NewServiceWithParams(NewParams(ParamsConfig{FixedIntervals: []int{2, 4}}))
	require.NoError(t, err)

	schedule, err := service.Schedule(1, 2.5, true)
	require.NoError(t, err)
	assert.Equal(t, 4, schedule.Interval)

	_, err = NewServiceWithParams(NewParams(ParamsConfig{MaxEaseFactor: 5}))
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestServiceSchedule(t *testing.T) {
	t.Parallel() // Enable parallel execution
	service := NewDefaultService()

	testCases := []struct {
		name         string
		repetitions  int
		ef           float64
		correct      bool
		wantInterval int
		wantEF       float64
	}{
		{name: "first recall", repetitions: 0, ef: 2.5, correct: true, wantInterval: 1, wantEF: 2.392},
		{name: "second recall", repetitions: 1, ef: 2.5, correct: true, wantInterval: 3, wantEF: 2.392},
		{name: "third recall", repetitions: 2, ef: 2.5, correct: true, wantInterval: 7, wantEF: 2.392},
		{name: "lapse", repetitions: 2, ef: 2.5, correct: false, wantInterval: 1, wantEF: 2.3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			schedule, err := service.Schedule(tc.repetitions, tc.ef, tc.correct)
			require.NoError(t, err)
			assert.Equal(t, tc.wantInterval, schedule.Interval)
			assert.InDelta(t, tc.wantEF, schedule.EasinessFactor, 1e-9)
		})
	}
}

func TestServiceScheduleRejectsNegativeRepetitions(t *testing.T) {
	t.Parallel() // Enable parallel execution

	_, err := NewDefaultService().Schedule(-1, 2.5, true)
	assert.ErrorIs(t, err, ErrNegativeRepetitions)
}
