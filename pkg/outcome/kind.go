package outcome

import (
	"errors"
	"fmt"
)

// Kind classifies a failure. The zero value KindNone means "no kind" and is
// what successful outcomes report.
type Kind uint8

const (
	KindNone Kind = iota
	KindFailure
	KindUnexpected
	KindValidation
	KindConflict
	KindNotFound
	KindUnauthorized
	// KindDefault marks an aggregate of several failures with no single dominant kind.
	KindDefault
)

// KindManyErrors is an alias of KindDefault.
const KindManyErrors = KindDefault

var kindNames = map[Kind]string{
	KindNone:         "",
	KindFailure:      "failure",
	KindUnexpected:   "unexpected",
	KindValidation:   "validation",
	KindConflict:     "conflict",
	KindNotFound:     "not_found",
	KindUnauthorized: "unauthorized",
	KindDefault:      "many_errors",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// IsValid reports whether k is one of the declared failure kinds.
func (k Kind) IsValid() bool {
	return k > KindNone && k <= KindDefault
}

// ParseKind converts a kind name back into a Kind. "default" is accepted as
// an alias of "many_errors"; the empty string yields KindNone.
func ParseKind(s string) (Kind, error) {
	if s == "default" {
		return KindDefault, nil
	}
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return KindNone, errors.Join(ErrUnknownKind, fmt.Errorf("%q", s))
}

func (k Kind) MarshalText() ([]byte, error) {
	if k != KindNone && !k.IsValid() {
		return nil, errors.Join(ErrUnknownKind, fmt.Errorf("%d", uint8(k)))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// aggregateKind resolves the kind of a set of failures: none for zero, the
// failure's own kind for one, KindDefault for two or more. List and
// ValidationError both resolve their kind through it.
func aggregateKind(failures []FailureDetail) Kind {
	switch len(failures) {
	case 0:
		return KindNone
	case 1:
		return failures[0].Kind()
	default:
		return KindDefault
	}
}
