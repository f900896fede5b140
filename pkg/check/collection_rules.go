package check

import "github.com/dmitrymomot/guardrail/pkg/outcome"

// IfEmptySlice holds when items has no elements. It reports as IfEmpty.
func IfEmptySlice[T any](label string, items []T) Rule {
	return New(outcome.CheckIfEmpty, label, items, func() bool {
		return len(items) == 0
	})
}

// IfNotEmptySlice holds when items has at least one element. It reports as IfNotEmpty.
func IfNotEmptySlice[T any](label string, items []T) Rule {
	return New(outcome.CheckIfNotEmpty, label, items, func() bool {
		return len(items) > 0
	})
}
