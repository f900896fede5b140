package validate

import (
	"log/slog"

	"github.com/dmitrymomot/guardrail/pkg/check"
	"github.com/dmitrymomot/guardrail/pkg/logger"
	"github.com/dmitrymomot/guardrail/pkg/outcome"
)

// Validator turns rules into outcomes. It holds no mutable state.
type Validator struct {
	logger *slog.Logger
}

func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Check evaluates rule. The outcome is valid iff the rule holds and records
// the rule name as its check.
func (v *Validator) Check(rule check.Rule, opts ...CallOption) outcome.Outcome {
	var c call
	for _, opt := range opts {
		opt(&c)
	}

	valid := rule.Evaluate()

	message := c.message
	if message == "" {
		if valid {
			message = rule.SuccessMessage(outcome.ValidateTemplate)
		} else {
			message = rule.FailureMessage(outcome.ValidateTemplate)
		}
	}

	o := outcome.New(valid, message).WithCheck(rule.Name).WithKind(c.kind)
	if c.title != "" {
		o = o.WithTitle(c.title)
	}
	if c.detail != nil {
		o = o.BindFailure(*c.detail)
	}

	if o.IsFailure() && v.logger != nil {
		v.logger.Debug("validation failed",
			logger.Component("validate"),
			logger.Group("rule",
				slog.String("label", rule.Label),
				logger.Check(rule.Name),
			),
			logger.Outcome(o),
		)
	}

	return o
}

// All evaluates every rule in order and collects the outcomes into a result.
func (v *Validator) All(rules ...check.Rule) *outcome.Result {
	res := outcome.NewResult()
	for _, rule := range rules {
		res.AddOutcome(v.Check(rule))
	}
	return res
}
