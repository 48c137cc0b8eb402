package domain

import (
	"github.com/google/uuid"
)

// OperationResult is the outcome of a mutating card store operation.
// Expected failures (validation, not found, duplicates) are reported here
// rather than by panicking; Err holds the sentinel-wrapping error so callers
// can branch with errors.Is.
type OperationResult struct {
	Success  bool       `json:"success"`
	Message  string     `json:"message,omitempty"`
	EntityID *uuid.UUID `json:"entity_id,omitempty"`
	Card     *Card      `json:"card,omitempty"`
	Err      error      `json:"-"`
}

// Succeeded builds a successful result for the given card snapshot.
func Succeeded(card Card, message string) OperationResult {
	id := card.ID
	snapshot := card.Clone()
	return OperationResult{
		Success:  true,
		Message:  message,
		EntityID: &id,
		Card:     &snapshot,
	}
}

// SucceededID builds a successful result that only carries an entity ID,
// used when the card no longer exists (e.g. after removal).
func SucceededID(id uuid.UUID, message string) OperationResult {
	return OperationResult{
		Success:  true,
		Message:  message,
		EntityID: &id,
	}
}

// Failed builds a failed result from err.
func Failed(err error) OperationResult {
	msg := "operation failed"
	if err != nil {
		msg = err.Error()
	}
	return OperationResult{
		Success: false,
		Message: msg,
		Err:     err,
	}
}
