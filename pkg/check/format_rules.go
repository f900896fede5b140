package check

import (
	"net/mail"
	"strings"

	"github.com/dmitrymomot/guardrail/pkg/outcome"
)

// IfEmail holds when text is a plain email address.
func IfEmail(label, text string) Rule {
	return New(outcome.CheckIfEmail, label, text, func() bool {
		return isEmail(text)
	})
}

// IfNotEmail holds when text is not a plain email address.
func IfNotEmail(label, text string) Rule {
	return New(outcome.CheckIfNotEmail, label, text, func() bool {
		return !isEmail(text)
	})
}

// isEmail accepts RFC 5322 addresses without display names whose domain has
// at least one dot and no empty labels.
func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Name != "" || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return false
	}

	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}

	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}
