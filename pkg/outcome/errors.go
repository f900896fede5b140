package outcome

import "errors"

var (
	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrOutcomeIsValid is returned when a failure detail is requested from a successful outcome.
	ErrOutcomeIsValid = errors.New("outcome is valid: cannot build a failure detail from a success")

	// ErrUnknownKind is returned when a kind name cannot be parsed.
	ErrUnknownKind = errors.New("unknown error kind")
)
