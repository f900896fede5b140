package check

import "github.com/dmitrymomot/guardrail/pkg/outcome"

// Numeric is the constraint used by the numeric rules.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Rule is a named condition on a single subject value.
type Rule struct {
	Name       outcome.Check
	Label      string
	Value      any
	Compare    any
	HasCompare bool
	Holds      func() bool
}

// New creates a custom rule without a compare value.
func New(name outcome.Check, label string, value any, holds func() bool) Rule {
	return Rule{Name: name, Label: label, Value: value, Holds: holds}
}

// NewCompare creates a custom rule that renders a compare value in its messages.
func NewCompare(name outcome.Check, label string, value, compare any, holds func() bool) Rule {
	return Rule{Name: name, Label: label, Value: value, Compare: compare, HasCompare: true, Holds: holds}
}

// Evaluate reports whether the condition holds. A rule without a predicate
// never holds, and neither does one whose predicate panics (for example
// comparing two []int stored in an any).
func (r Rule) Evaluate() (holds bool) {
	if r.Holds == nil {
		return false
	}
	defer func() {
		if recover() != nil {
			holds = false
		}
	}()
	return r.Holds()
}

// Validate reports structural problems with the rule itself.
func (r Rule) Validate() error {
	if r.Holds == nil {
		return ErrNoPredicate
	}
	return nil
}

// CompareArgs returns the compare value as template arguments: empty when the
// rule has none.
func (r Rule) CompareArgs() []any {
	if !r.HasCompare {
		return nil
	}
	return []any{r.Compare}
}

// SuccessMessage renders the default success message with t.
func (r Rule) SuccessMessage(t outcome.Template) string {
	return t.Success(r.Name, r.Label, r.Value, r.CompareArgs()...)
}

// FailureMessage renders the default failure message with t.
func (r Rule) FailureMessage(t outcome.Template) string {
	return t.Failure(r.Name, r.Label, r.Value, r.CompareArgs()...)
}
