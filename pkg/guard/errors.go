package guard

import (
	"errors"

	"github.com/dmitrymomot/guardrail/pkg/outcome"
)

// ErrInvalidArgument matches every *ArgumentError via errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError is the error built by the default factory.
type ArgumentError struct {
	Message string
	Check   outcome.Check
	Label   string
}

func (e *ArgumentError) Error() string {
	if e.Message == "" {
		return ErrInvalidArgument.Error()
	}
	return e.Message
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// ErrorFactory builds the error returned for a violated rule from its message.
type ErrorFactory func(message string) error

// DefaultErrorFactory builds an *ArgumentError holding only the message. A
// guard without a factory builds a richer one that also records the check
// and label.
func DefaultErrorFactory(message string) error {
	return &ArgumentError{Message: message}
}
