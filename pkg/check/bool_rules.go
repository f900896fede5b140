package check

import "github.com/dmitrymomot/guardrail/pkg/outcome"

// IfTrue holds when condition is true.
func IfTrue(label string, condition bool) Rule {
	return New(outcome.CheckIfTrue, label, condition, func() bool {
		return condition
	})
}

// IfFalse holds when condition is false.
func IfFalse(label string, condition bool) Rule {
	return New(outcome.CheckIfFalse, label, condition, func() bool {
		return !condition
	})
}
