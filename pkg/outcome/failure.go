package outcome

import (
	"fmt"
	"log/slog"
)

// DefaultTitle is used when a failure has no title of its own.
const DefaultTitle = "Generic.Error"

// FailureDetail is a structured failure descriptor: title, message and a kind
// that is never KindNone. Build one with the kind-named factories.
type FailureDetail struct {
	title   string
	message string
	kind    Kind
}

func newFailureDetail(kind Kind, message string, title []string) FailureDetail {
	d := FailureDetail{title: DefaultTitle, message: message, kind: kind}
	for _, t := range title {
		if t != "" {
			d.title = t
			break
		}
	}
	return d
}

// Failure creates a detail of kind KindFailure. The optional title defaults to DefaultTitle.
func Failure(message string, title ...string) FailureDetail {
	return newFailureDetail(KindFailure, message, title)
}

// NotFound creates a detail of kind KindNotFound.
func NotFound(message string, title ...string) FailureDetail {
	return newFailureDetail(KindNotFound, message, title)
}

// Unexpected creates a detail of kind KindUnexpected.
func Unexpected(message string, title ...string) FailureDetail {
	return newFailureDetail(KindUnexpected, message, title)
}

// Validation creates a detail of kind KindValidation.
func Validation(message string, title ...string) FailureDetail {
	return newFailureDetail(KindValidation, message, title)
}

// Conflict creates a detail of kind KindConflict.
func Conflict(message string, title ...string) FailureDetail {
	return newFailureDetail(KindConflict, message, title)
}

// Unauthorized creates a detail of kind KindUnauthorized.
func Unauthorized(message string, title ...string) FailureDetail {
	return newFailureDetail(KindUnauthorized, message, title)
}

// FromOutcome builds a detail from a failing outcome. It returns
// ErrOutcomeIsValid when o is a success.
func FromOutcome(o Outcome) (FailureDetail, error) {
	if o.valid {
		return FailureDetail{}, ErrOutcomeIsValid
	}
	return detailOf(o), nil
}

// detailOf projects a failing outcome; callers guarantee o is a failure.
func detailOf(o Outcome) FailureDetail {
	d := FailureDetail{title: o.title, message: o.message, kind: o.kind}
	if d.title == "" {
		d.title = DefaultTitle
	}
	d.kind = failureKind(d.kind)
	return d
}

// failureKind maps a missing or undeclared kind to KindValidation.
func failureKind(k Kind) Kind {
	if !k.IsValid() {
		return KindValidation
	}
	return k
}

func (d FailureDetail) Title() string { return d.title }
func (d FailureDetail) Message() string { return d.message }
// Kind returns the detail's kind. A zero FailureDetail reports KindValidation.
func (d FailureDetail) Kind() Kind { return failureKind(d.kind) }

// ToOutcome converts the detail into a failing outcome.
func (d FailureDetail) ToOutcome() Outcome {
	return Outcome{message: d.message, title: d.title, kind: failureKind(d.kind)}
}

// Error lets a detail travel as a plain error.
func (d FailureDetail) Error() string {
	if d.title == "" {
		return d.message
	}
	return fmt.Sprintf("%s: %s", d.title, d.message)
}

// LogValue implements slog.LogValuer.
func (d FailureDetail) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("title", d.title),
		slog.String("message", d.message),
		slog.String("kind", d.Kind().String()),
	)
}
