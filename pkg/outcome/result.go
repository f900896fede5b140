package outcome

import "slices"

// Result accumulates outcomes across several checks before a final decision.
// Its validity is determined entirely by its outcomes. Outcomes can only be
// appended.
type Result struct {
	outcomes List
}

// NewResult creates a result from the given outcomes. A result without
// outcomes is valid.
func NewResult(outcomes ...Outcome) *Result {
	return &Result{outcomes: slices.Clone(List(outcomes))}
}

// ResultFromList creates a result holding a copy of list.
func ResultFromList(list List) *Result {
	return &Result{outcomes: slices.Clone(list)}
}

// ResultFromFailures creates a result whose outcomes are the given failures.
func ResultFromFailures(details ...FailureDetail) *Result {
	r := &Result{outcomes: make(List, 0, len(details))}
	for _, d := range details {
		r.outcomes = append(r.outcomes, d.ToOutcome())
	}
	return r
}

func (r *Result) AddOutcome(o Outcome) {
	r.outcomes.Add(o)
}

func (r *Result) AddOutcomes(outcomes ...Outcome) {
	r.outcomes.Add(outcomes...)
}

// Outcomes returns a copy of the accumulated outcomes.
func (r *Result) Outcomes() List {
	return slices.Clone(r.outcomes)
}

func (r *Result) IsFailure() bool { return r.outcomes.IsFailure() }
func (r *Result) IsValid() bool { return r.outcomes.IsValid() }
func (r *Result) Failures() []FailureDetail { return r.outcomes.Failures() }
func (r *Result) FirstFailure() (FailureDetail, bool) { return r.outcomes.FirstFailure() }
func (r *Result) Kind() Kind { return r.outcomes.Kind() }

// Err returns nil for a valid result, otherwise a *ValidationError carrying
// every failure and the given message.
func (r *Result) Err(message string) error {
	return r.outcomes.Err(message)
}

// JoinedErr returns nil for a valid result, otherwise a *ValidationError whose
// message joins the failure messages with separator.
func (r *Result) JoinedErr(separator string) error {
	return r.outcomes.JoinedErr(separator)
}

// ResultOf is a Result that also carries a value. The value is independent of
// validity: an invalid result may still hold a partially built value.
type ResultOf[T any] struct {
	Result
	value T
}

// Of creates a result carrying value and the given outcomes.
func Of[T any](value T, outcomes ...Outcome) *ResultOf[T] {
	return &ResultOf[T]{Result: *NewResult(outcomes...), value: value}
}

// OfValue creates a valid result carrying value.
func OfValue[T any](value T) *ResultOf[T] {
	return Of(value)
}

// OfList creates a result carrying value and a copy of list.
func OfList[T any](value T, list List) *ResultOf[T] {
	return &ResultOf[T]{Result: *ResultFromList(list), value: value}
}

// OfFailures creates a failed result holding the zero value of T.
func OfFailures[T any](details ...FailureDetail) *ResultOf[T] {
	var zero T
	return &ResultOf[T]{Result: *ResultFromFailures(details...), value: zero}
}

func (r *ResultOf[T]) Value() T { return r.value }
