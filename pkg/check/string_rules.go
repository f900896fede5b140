package check

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/guardrail/pkg/outcome"
)

// IfEmpty holds when text is the empty string. Whitespace counts as content.
func IfEmpty(label, text string) Rule {
	return New(outcome.CheckIfEmpty, label, text, func() bool {
		return text == ""
	})
}

// IfNotEmpty holds when text is not the empty string.
func IfNotEmpty(label, text string) Rule {
	return New(outcome.CheckIfNotEmpty, label, text, func() bool {
		return text != ""
	})
}

// IfParseToLong holds when text parses as a base-10 int64. Surrounding
// whitespace is ignored.
func IfParseToLong(label, text string) Rule {
	return New(outcome.CheckIfParseToLong, label, text, func() bool {
		return parsesToInt64(text)
	})
}

// IfNotParseToLong holds when text does not parse as a base-10 int64.
func IfNotParseToLong(label, text string) Rule {
	return New(outcome.CheckIfNotParseToLong, label, text, func() bool {
		return !parsesToInt64(text)
	})
}

func parsesToInt64(text string) bool {
	_, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	return err == nil
}
