package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/phrazzld/scry-cards/internal/domain"
	"github.com/phrazzld/scry-cards/internal/store"
)

// Error handling principles:
// 1. Expected store failures (validation, not found, duplicates) are returned
//    as the store's sentinel-wrapping errors
// 2. Unexpected errors are wrapped in CardServiceError
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes

// ErrOperationFailed is used when the store reports a failure without an error.
var ErrOperationFailed = errors.New("operation failed")

// CardServiceError is a custom error type for card service errors.
type CardServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for CardServiceError.
func (e *CardServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("card service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("card service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *CardServiceError) Unwrap() error {
	return e.Err
}

// NewCardServiceError creates a new CardServiceError.
func NewCardServiceError(operation, message string, err error) *CardServiceError {
	return &CardServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// isExpected reports whether err is a business-rule failure the caller can act on.
func isExpected(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrInvalidArgument) ||
		store.IsNotFoundError(err) ||
		store.IsDuplicateError(err)
}

// resultError converts a failed store result into a service error.
func resultError(operation string, result domain.OperationResult) error {
	err := result.Err
	if err == nil {
		err = ErrOperationFailed
	}
	if isExpected(err) {
		return err
	}
	return NewCardServiceError(operation, result.Message, err)
}

// Option configures the services in this package.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces the wall clock used for due-date and report timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{now: func() time.Time { return time.Now().UTC() }}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
