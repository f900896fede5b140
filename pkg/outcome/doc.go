// Package outcome provides the shared result model used by the guard and
// validate evaluators: single pass/fail judgments, structured failure
// descriptors, ordered outcome lists with aggregate status, and a result
// container that optionally carries a value next to its outcomes.
//
// # Architecture
//
// The package is built leaf-first:
//   - Kind            closed failure classification (validation, not found, ...)
//   - Outcome         immutable pass/fail judgment with message, title and kind
//   - FailureDetail   always-failing descriptor convertible to and from Outcome
//   - List            ordered []Outcome with aggregate status and kind
//   - ValidationError error value carrying accumulated failures
//   - Result          append-only outcome accumulator, optionally with a value
//
// Every decoration method on Outcome returns a copy, so an Outcome shared
// between several lists can be re-decorated without aliasing surprises. The
// only mutation points are List.Add and Result.AddOutcome(s).
//
// # Usage
//
//	res := outcome.NewResult(
//	    outcome.Success("name is set"),
//	    outcome.Fail("age must be positive"),
//	)
//	res.AddOutcome(outcome.Fail("email is invalid").AsConflict())
//
//	if err := res.Err("create user"); err != nil {
//	    verr := outcome.ExtractValidationError(err)
//	    // verr.Kind() == outcome.KindDefault, len(verr.Failures) == 2
//	}
//
// Results can also be branched on without producing an error:
//
//	status := outcome.Match(res,
//	    func(outcome.List) int { return http.StatusOK },
//	    func([]outcome.FailureDetail) int { return http.StatusBadRequest },
//	)
//
// # Aggregate kind
//
// When exactly one failure is present its kind becomes the aggregate kind.
// Two or more failures collapse into KindDefault (a.k.a. KindManyErrors);
// callers that need the precise kind of each failure inspect Failures().
//
// # Message templates
//
// Template renders the default messages used by the evaluators:
//
//	Validated param: age. Value: 12. Compare: 3. ValidationName: IfGreater
//	Error to validate param: age. Value: 1. Compare: 3. ThrowerName: IfGreater
package outcome
