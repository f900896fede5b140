package logger

import (
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/guardrail/pkg/outcome"
)

// Group nests attrs under name. The validate evaluator uses it to keep the
// rule's label and check together.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors records several errors under "errors", keyed by argument position.
// Nil errors are skipped; all nil yields an empty Attr.
func Errors(errs ...error) slog.Attr {
	var as []slog.Attr
	for i, err := range errs {
		if err == nil {
			continue
		}
		as = append(as, slog.Any(strconv.Itoa(i), err))
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return Group("errors", as...)
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Check records a predicate identifier under the key "check".
func Check(c outcome.Check) slog.Attr {
	return slog.String("check", c.String())
}

// Kind records a failure kind under the key "kind". KindNone yields an empty Attr.
func Kind(k outcome.Kind) slog.Attr {
	if k == outcome.KindNone {
		return slog.Attr{}
	}
	return slog.String("kind", k.String())
}

// Outcome records an outcome as a group under the key "outcome".
func Outcome(o outcome.Outcome) slog.Attr {
	return slog.Any("outcome", o)
}

// Failures groups failure details under the key "failures", indexed by
// position. An empty slice yields an empty Attr.
func Failures(failures []outcome.FailureDetail) slog.Attr {
	if len(failures) == 0 {
		return slog.Attr{}
	}
	as := make([]slog.Attr, 0, len(failures))
	for i, f := range failures {
		as = append(as, slog.Any(strconv.Itoa(i), f))
	}
	return slog.Attr{Key: "failures", Value: slog.GroupValue(as...)}
}
