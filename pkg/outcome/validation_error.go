package outcome

import (
	"errors"
	"slices"
)

// ValidationError carries one or more failures out of a List or Result. It
// is what Err and JoinedErr return.
type ValidationError struct {
	Message  string
	Failures []FailureDetail
	Cause    error
}

// NewValidationError creates a validation error. The failures slice is copied.
func NewValidationError(message string, failures []FailureDetail) *ValidationError {
	return &ValidationError{
		Message:  message,
		Failures: slices.Clone(failures),
	}
}

// WrapValidationError creates a validation error that wraps cause.
func WrapValidationError(message string, cause error, failures []FailureDetail) *ValidationError {
	e := NewValidationError(message, failures)
	e.Cause = cause
	return e
}

// Kind resolves the aggregate kind of the carried failures with the same
// rule as List.Kind. An empty payload yields KindNone.
func (e *ValidationError) Kind() Kind {
	return aggregateKind(e.Failures)
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Failures) == 0 {
		return ErrValidation.Error()
	}
	return ErrValidation.Error() + ": " + joinMessages(e.Failures, "; ")
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Is makes errors.Is(err, ErrValidation) true for any *ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ExtractValidationError returns the *ValidationError in err's chain, or nil.
func ExtractValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr
	}

	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationError(err) != nil
}
