package check

import (
	"time"

	"github.com/dmitrymomot/guardrail/pkg/outcome"
)

// IfOlder holds when date is strictly before compare.
func IfOlder(label string, date, compare time.Time) Rule {
	return NewCompare(outcome.CheckIfOlder, label, date, compare, func() bool {
		return date.Before(compare)
	})
}

// IfOlderOrEqual holds when date is before or equal to compare.
func IfOlderOrEqual(label string, date, compare time.Time) Rule {
	return NewCompare(outcome.CheckIfOlderOrEqual, label, date, compare, func() bool {
		return !date.After(compare)
	})
}
