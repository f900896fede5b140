package validate

import (
	"log/slog"

	"github.com/dmitrymomot/guardrail/pkg/outcome"
)

// Option configures a Validator.
type Option func(*Validator)

// WithLogger enables debug-level logging of failed checks.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		v.logger = l
	}
}

// CallOption customises a single Check call.
type CallOption func(*call)

type call struct {
	message string
	title   string
	kind    outcome.Kind
	detail  *outcome.FailureDetail
}

// WithMessage replaces the default message on both success and failure.
func WithMessage(message string) CallOption {
	return func(c *call) {
		c.message = message
	}
}

// WithTitle sets the outcome title.
func WithTitle(title string) CallOption {
	return func(c *call) {
		c.title = title
	}
}

// WithKind sets the failure kind. It has no effect on successes.
func WithKind(kind outcome.Kind) CallOption {
	return func(c *call) {
		c.kind = kind
	}
}

// WithFailure binds d to the outcome when the check fails.
func WithFailure(d outcome.FailureDetail) CallOption {
	return func(c *call) {
		c.detail = &d
	}
}
