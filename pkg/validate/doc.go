// Package validate implements the accumulate-as-data evaluator. Every check
// returns an outcome.Outcome and never returns an error or panics, so all
// fields of a form can be checked before deciding what to report.
//
//	v := validate.New()
//
//	res := v.All(
//	    check.IfNotEmpty("name", req.Name),
//	    check.IfEmail("email", req.Email),
//	    check.IfGreaterOrEqual("age", req.Age, 18),
//	)
//	res.AddOutcome(v.Check(check.IfNotNil("owner", owner),
//	    validate.WithFailure(outcome.NotFound("owner does not exist", "Owner")),
//	))
//
//	if err := res.JoinedErr("; "); err != nil {
//	    return err
//	}
//
// A rule that holds yields a success, otherwise a failure of kind
// KindValidation unless a call option says otherwise. Default messages follow
// outcome.ValidateTemplate.
package validate
