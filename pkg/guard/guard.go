package guard

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/guardrail/pkg/check"
	"github.com/dmitrymomot/guardrail/pkg/logger"
	"github.com/dmitrymomot/guardrail/pkg/outcome"
)

// Guard evaluates rules and returns an error for the first one that holds.
// A Guard is immutable after New and safe for concurrent use.
type Guard struct {
	factory ErrorFactory
	logger  *slog.Logger
}

// New creates a guard. Without options it returns *ArgumentError values and
// does not log.
func New(opts ...Option) *Guard {
	g := &Guard{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Check returns nil when rule does not hold. Otherwise it returns the error
// built by the call's factory (WithError) or the guard's factory. Without a
// factory, or when the factory returns nil, the error is an *ArgumentError
// carrying the rule's check and label.
func (g *Guard) Check(rule check.Rule, opts ...CallOption) error {
	if !rule.Evaluate() {
		return nil
	}

	c := call{factory: g.factory}
	for _, opt := range opts {
		opt(&c)
	}

	message := c.message
	if message == "" {
		message = rule.FailureMessage(outcome.GuardTemplate)
	}

	var err error
	if c.factory != nil {
		err = c.factory(message)
	}
	// Errors returned by a factory belong to the caller and are never modified.
	if err == nil {
		err = &ArgumentError{Message: message, Check: rule.Name, Label: rule.Label}
	}

	if g.logger != nil {
		g.logger.Warn("guard violated",
			logger.Component("guard"),
			logger.Check(rule.Name),
			slog.String("label", rule.Label),
			logger.Error(err),
		)
	}

	return err
}

// All checks rules in order and returns the first violation.
func (g *Guard) All(rules ...check.Rule) error {
	for _, rule := range rules {
		if err := g.Check(rule); err != nil {
			return err
		}
	}
	return nil
}

// Must panics when err is not nil. It is meant for guards evaluated during
// program initialisation.
func Must(err error) {
	if err != nil {
		panic(fmt.Sprintf("guard: %v", err))
	}
}
