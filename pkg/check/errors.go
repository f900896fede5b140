package check

import "errors"

// ErrNoPredicate is reported by Rule.Validate for a rule built without a Holds function.
var ErrNoPredicate = errors.New("check: rule has no predicate")
