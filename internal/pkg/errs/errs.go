package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification via errors.Is.
var (
	// ErrValidation is the sentinel for all validation errors: the caller
	// supplied structurally invalid input and no mutation was applied.
	ErrValidation = errors.New("validation failed")

	// ErrState is the sentinel for all state errors: the input was well
	// formed but the operation is illegal in the entity's current state.
	ErrState = errors.New("operation not allowed in current state")
)

// ValidationError reports structurally invalid caller input, such as an
// empty required string, a non-positive quantity or price, or an unknown
// foreign-key id at a creation boundary.
type ValidationError struct {
	// ParamName identifies the offending parameter.
	ParamName string
	// Cause is the underlying error, if any.
	Cause error
}

// NewValidationError creates a ValidationError for the given parameter.
func NewValidationError(paramName string) *ValidationError {
	return &ValidationError{ParamName: paramName}
}

// NewValidationErrorWithCause creates a ValidationError for the given
// parameter with an underlying cause.
func NewValidationErrorWithCause(paramName string, cause error) *ValidationError {
	return &ValidationError{ParamName: paramName, Cause: cause}
}

// Error formats the error message including the cause when present.
func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValidation, sanitize(e.ParamName), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrValidation, sanitize(e.ParamName))
}

// Unwrap returns the ErrValidation sentinel so that
// errors.Is(err, errs.ErrValidation) classifies the error.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// StateError reports an operation that is illegal in the entity's current
// lifecycle state, such as confirming an empty order or cancelling a
// delivered one.
type StateError struct {
	// Reason describes which rule was violated.
	Reason string
	// Cause is the underlying error, if any.
	Cause error
}

// NewStateError creates a StateError with the given reason.
func NewStateError(reason string) *StateError {
	return &StateError{Reason: reason}
}

// NewStateErrorWithCause creates a StateError with the given reason and an
// underlying cause.
func NewStateErrorWithCause(reason string, cause error) *StateError {
	return &StateError{Reason: reason, Cause: cause}
}

// Error formats the error message including the cause when present.
func (e *StateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrState, sanitize(e.Reason), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrState, sanitize(e.Reason))
}

// Unwrap returns the ErrState sentinel so that
// errors.Is(err, errs.ErrState) classifies the error.
func (e *StateError) Unwrap() error {
	return ErrState
}

// sanitize keeps error messages single-line.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}
