package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared across the domain. Handlers translate these into
// response codes; everything else is treated as an internal failure.
var (
	ErrValidation     = errors.New("validation failed")
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email address already in use")
	ErrAccessDenied   = errors.New("access denied")
)

// ValidationError aggregates every field failure found in a single pass so
// the response can list all of them at once, in declaration order.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// Is makes errors.Is(err, ErrValidation) match without unwrapping.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError returns nil when there are no messages, so callers can
// return the result of a validation pass directly.
func NewValidationError(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: messages}
}
