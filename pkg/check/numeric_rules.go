package check

import "github.com/dmitrymomot/guardrail/pkg/outcome"

// IfZero holds when value is zero.
func IfZero[T Numeric](label string, value T) Rule {
	var zero T
	return New(outcome.CheckIfZero, label, value, func() bool {
		return value == zero
	})
}

// IfNotZero holds when value is not zero.
func IfNotZero[T Numeric](label string, value T) Rule {
	var zero T
	return New(outcome.CheckIfNotZero, label, value, func() bool {
		return value != zero
	})
}

// IfGreater holds when value > compare.
func IfGreater[T Numeric](label string, value, compare T) Rule {
	return NewCompare(outcome.CheckIfGreater, label, value, compare, func() bool {
		return value > compare
	})
}

// IfGreaterOrEqual holds when value >= compare.
func IfGreaterOrEqual[T Numeric](label string, value, compare T) Rule {
	return NewCompare(outcome.CheckIfGreaterOrEqual, label, value, compare, func() bool {
		return value >= compare
	})
}
