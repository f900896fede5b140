// Package check provides the predicate rules evaluated by the guard and
// validate packages.
//
// A Rule pairs a Holds function with the metadata needed to render a
// default message: the check name, the caller-supplied label of the subject,
// the subject value and an optional compare value. Every constructor simply
// builds a Rule; nothing is evaluated until an evaluator calls Holds, so the
// package is stateless and goroutine-safe.
//
// Rules describe a condition, not a verdict. The validate evaluator treats a
// holding rule as a success, the guard evaluator treats it as a violation:
//
//	v.Check(check.IfNotEmpty("name", name))   // success when name != ""
//	g.Check(check.IfEmpty("name", name))      // error when name == ""
//
// Go cannot capture the source text of an argument, so callers pass the
// label explicitly. An empty label degrades the message, never the verdict.
package check
