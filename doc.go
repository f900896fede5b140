// Package guardrail wires the guard and validate evaluators together so an
// application can obtain both from one place.
//
// The two evaluators share the same rule constructors from package check but
// react differently when a rule holds:
//
//   - guard returns an error (fail fast on bad arguments)
//   - validate returns an outcome.Outcome that can be collected into an
//     outcome.Result and inspected later
//
// Basic usage:
//
//	svc := guardrail.Setup(func(c *guardrail.Config) {
//		c.ErrorFactory = func(msg string) error { return fmt.Errorf("order: %s", msg) }
//	})
//
//	if err := svc.Guard.Check(check.IfEmpty("customer_id", id)); err != nil {
//		return err
//	}
//
//	res := svc.Validator.All(
//		check.IfEmail("email", email),
//		check.IfGreater("quantity", qty, 0),
//	)
//	return res.Err("invalid order")
//
// SetupFromEnv reads GUARDRAIL_* variables (and an optional .env file) to
// build a structured logger for rule violations.
package guardrail
