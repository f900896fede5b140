package outcome

import "log/slog"

// Outcome is a single pass/fail judgment. It is a value type: every With*/As*
// method returns a modified copy and leaves the receiver untouched.
//
// A successful outcome never carries a kind. A failing outcome always does and
// defaults to KindValidation.
type Outcome struct {
	message string
	title   string
	valid   bool
	kind    Kind
	check   Check
}

// New creates an outcome with the given validity.
func New(valid bool, message string) Outcome {
	o := Outcome{message: message, valid: valid}
	if !valid {
		o.kind = KindValidation
	}
	return o
}

// Success creates a passing outcome.
func Success(message string) Outcome {
	return New(true, message)
}

// Fail creates a failing outcome of kind KindValidation.
func Fail(message string) Outcome {
	return New(false, message)
}

func (o Outcome) Message() string { return o.message }
func (o Outcome) Title() string { return o.title }
func (o Outcome) IsValid() bool { return o.valid }
func (o Outcome) IsFailure() bool { return !o.valid }
func (o Outcome) Check() Check { return o.check }

// Kind returns the failure kind, or KindNone for a successful outcome.
func (o Outcome) Kind() Kind { return o.kind }

// WithKind sets the failure kind. Successful outcomes are returned unchanged,
// as are failures when k is KindNone or not a declared kind.
func (o Outcome) WithKind(k Kind) Outcome {
	if o.valid || !k.IsValid() {
		return o
	}
	o.kind = k
	return o
}

// WithTitle sets the title on both successes and failures.
func (o Outcome) WithTitle(title string) Outcome {
	o.title = title
	return o
}

// WithCheck records which predicate produced the outcome.
func (o Outcome) WithCheck(c Check) Outcome {
	o.check = c
	return o
}

// BindFailure replaces message, title and kind of a failing outcome with the
// ones from d. A successful outcome is returned unchanged.
func (o Outcome) BindFailure(d FailureDetail) Outcome {
	if o.valid {
		return o
	}
	o.message = d.message
	o.title = d.title
	o.kind = failureKind(d.kind)
	return o
}

func (o Outcome) AsFailure() Outcome { return o.WithKind(KindFailure) }
func (o Outcome) AsUnexpected() Outcome { return o.WithKind(KindUnexpected) }
func (o Outcome) AsValidation() Outcome { return o.WithKind(KindValidation) }
func (o Outcome) AsConflict() Outcome { return o.WithKind(KindConflict) }
func (o Outcome) AsNotFound() Outcome { return o.WithKind(KindNotFound) }
func (o Outcome) AsUnauthorized() Outcome { return o.WithKind(KindUnauthorized) }

// LogValue implements slog.LogValuer.
func (o Outcome) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 5)
	attrs = append(attrs,
		slog.Bool("valid", o.valid),
		slog.String("message", o.message),
	)
	if o.title != "" {
		attrs = append(attrs, slog.String("title", o.title))
	}
	if o.kind != KindNone {
		attrs = append(attrs, slog.String("kind", o.kind.String()))
	}
	if o.check != CheckNone {
		attrs = append(attrs, slog.String("check", o.check.String()))
	}
	return slog.GroupValue(attrs...)
}
