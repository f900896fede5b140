package check

import (
	"reflect"

	"github.com/dmitrymomot/guardrail/pkg/outcome"
)

// IfDefault holds when value is the zero value of its type.
func IfDefault[T comparable](label string, value T) Rule {
	var zero T
	return New(outcome.CheckIfDefault, label, value, func() bool {
		return value == zero
	})
}

// IfNotDefault holds when value differs from the zero value of its type.
func IfNotDefault[T comparable](label string, value T) Rule {
	var zero T
	return New(outcome.CheckIfNotDefault, label, value, func() bool {
		return value != zero
	})
}

// IfNil holds when value is nil, including typed nil pointers, maps, slices,
// channels and funcs stored in an interface.
func IfNil(label string, value any) Rule {
	return New(outcome.CheckIfNil, label, value, func() bool {
		return isNil(value)
	})
}

// IfNotNil holds when value is not nil.
func IfNotNil(label string, value any) Rule {
	return New(outcome.CheckIfNotNil, label, value, func() bool {
		return !isNil(value)
	})
}

// IfEqual holds when value equals compare.
func IfEqual[T comparable](label string, value, compare T) Rule {
	return NewCompare(outcome.CheckIfEqual, label, value, compare, func() bool {
		return value == compare
	})
}

// IfNotEqual holds when value differs from compare.
func IfNotEqual[T comparable](label string, value, compare T) Rule {
	return NewCompare(outcome.CheckIfNotEqual, label, value, compare, func() bool {
		return value != compare
	})
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}
