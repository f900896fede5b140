package outcome

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Template renders the default messages of the check evaluators. Rendered
// text is part of the public contract; tests compare it verbatim.
type Template struct {
	SuccessPrefix string
	FailurePrefix string
	NameKey       string
}

var (
	// ValidateTemplate is used by the validate evaluator.
	ValidateTemplate = Template{
		SuccessPrefix: "Validated param",
		FailurePrefix: "Error to validate param",
		NameKey:       "ValidationName",
	}

	// GuardTemplate is used by the guard evaluator.
	GuardTemplate = Template{
		SuccessPrefix: "Validated param",
		FailurePrefix: "Error to validate param",
		NameKey:       "ThrowerName",
	}
)

// Success renders "<prefix>: <label>. Value: <value>[. Compare: <compare>]. <key>: <check>".
// The compare segment is written only when a compare value is passed.
func (t Template) Success(check Check, label string, value any, compare ...any) string {
	return t.render(t.SuccessPrefix, check, label, value, compare)
}

// Failure renders the failure variant of Success.
func (t Template) Failure(check Check, label string, value any, compare ...any) string {
	return t.render(t.FailurePrefix, check, label, value, compare)
}

func (t Template) render(prefix string, check Check, label string, value any, compare []any) string {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(": ")
	b.WriteString(label)
	b.WriteString(". Value: ")
	b.WriteString(FormatValue(value))
	if len(compare) > 0 {
		b.WriteString(". Compare: ")
		b.WriteString(FormatValue(compare[0]))
	}
	b.WriteString(". ")
	b.WriteString(t.NameKey)
	b.WriteString(": ")
	b.WriteString(check.String())
	return b.String()
}

// FormatValue renders a subject value for messages: nil (including typed nil
// pointers, maps, slices, channels and funcs) as an empty string, time.Time as
// RFC 3339, everything else with %v.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case time.Time:
		return val.Format(time.RFC3339)
	case *string:
		if val == nil {
			return ""
		}
		return *val
	default:
		if isNilValue(val) {
			return ""
		}
		return fmt.Sprintf("%v", val)
	}
}

func isNilValue(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
