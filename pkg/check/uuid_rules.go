package check

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/guardrail/pkg/outcome"
)

// IfUUID holds when text is a canonical 36-character UUID.
func IfUUID(label, text string) Rule {
	return New(outcome.CheckIfUUID, label, text, func() bool {
		return isUUID(text)
	})
}

// IfNotUUID holds when text is not a canonical UUID.
func IfNotUUID(label, text string) Rule {
	return New(outcome.CheckIfNotUUID, label, text, func() bool {
		return !isUUID(text)
	})
}

func isUUID(value string) bool {
	// uuid.Parse also accepts urn: and braced forms; only the canonical form is wanted here.
	if len(value) != 36 {
		return false
	}
	if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}
