package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers. The orchestration layer branches
// on these to choose user-facing messages, so each kind stays distinct.
var (
	ErrNotFound = errors.New("not found")

	// ErrValidation marks caller mistakes: bad user id, empty transcription.
	ErrValidation = errors.New("validation error")

	// ErrEmptyInput is returned before any network call when an external
	// client receives an empty payload.
	ErrEmptyInput = errors.New("empty input")

	// ErrRateLimited maps upstream HTTP 429; the caller should ask the end
	// user to retry later. Never retried internally.
	ErrRateLimited = errors.New("rate limited")

	// ErrServiceUnavailable covers connectivity failures, upstream 5xx and
	// request timeouts.
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrRequestFailed is a generic upstream failure, including malformed
	// responses at the transport level.
	ErrRequestFailed = errors.New("request failed")

	// ErrParseFailed means the model responded but no structured result
	// could be extracted — a contract violation rather than a transport
	// problem, so it is distinct from ErrRequestFailed.
	ErrParseFailed = errors.New("response parse failed")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}
