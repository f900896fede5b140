package outcome

import "strings"

// List is an ordered collection of outcomes. Order matters for FirstFailure
// and for the message produced by JoinedErr.
type List []Outcome

// Add appends outcomes to the list.
func (l *List) Add(outcomes ...Outcome) {
	*l = append(*l, outcomes...)
}

func (l List) Len() int { return len(l) }

// IsFailure reports whether any outcome failed. An empty list is valid.
func (l List) IsFailure() bool {
	for _, o := range l {
		if !o.valid {
			return true
		}
	}
	return false
}

func (l List) IsValid() bool { return !l.IsFailure() }

// Failures returns every failing outcome projected to a FailureDetail.
func (l List) Failures() []FailureDetail {
	var failures []FailureDetail
	for _, o := range l {
		if !o.valid {
			failures = append(failures, detailOf(o))
		}
	}
	return failures
}

// Successes returns the passing outcomes in order.
func (l List) Successes() List {
	var successes List
	for _, o := range l {
		if o.valid {
			successes = append(successes, o)
		}
	}
	return successes
}

// Kind returns the aggregate failure kind: KindNone without failures, the
// failure's kind with exactly one, KindDefault with two or more.
func (l List) Kind() Kind {
	return aggregateKind(l.Failures())
}

// FirstFailure returns the first failing outcome in insertion order. The
// boolean is false when the list has no failures.
func (l List) FirstFailure() (FailureDetail, bool) {
	for _, o := range l {
		if !o.valid {
			return detailOf(o), true
		}
	}
	return FailureDetail{}, false
}

// Err returns nil when the list holds no failures. Otherwise it returns a
// *ValidationError with the given message and every failure. An empty message
// lets the error describe itself from its failures.
func (l List) Err(message string) error {
	failures := l.Failures()
	if len(failures) == 0 {
		return nil
	}
	return NewValidationError(message, failures)
}

// JoinedErr works like Err, using the failure messages joined by separator as
// the error message.
func (l List) JoinedErr(separator string) error {
	failures := l.Failures()
	if len(failures) == 0 {
		return nil
	}
	return NewValidationError(joinMessages(failures, separator), failures)
}

func joinMessages(failures []FailureDetail, separator string) string {
	messages := make([]string, 0, len(failures))
	for _, f := range failures {
		messages = append(messages, f.message)
	}
	return strings.Join(messages, separator)
}
