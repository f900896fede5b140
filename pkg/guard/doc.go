// Package guard implements the fail-fast evaluator: a guard returns an error
// as soon as a rule it is asked to check holds.
//
// Errors are built by an ErrorFactory. The factory configured with
// WithErrorFactory is the default; a single call can use a different one
// through the WithError call option:
//
//	g := guard.New()
//
//	if err := g.Check(check.IfEmpty("name", name)); err != nil {
//	    return err // *guard.ArgumentError
//	}
//
//	err := g.Check(check.IfGreater("qty", qty, 10), guard.WithError(func(msg string) error {
//	    return fmt.Errorf("%w: %s", ErrQuotaExceeded, msg)
//	}))
//
// The override lives only in the call's options, so a *Guard holds no
// mutable state and can be shared by concurrent goroutines. The next call
// without WithError uses the configured default again.
//
// Default messages follow outcome.GuardTemplate:
//
//	Error to validate param: qty. Value: 12. Compare: 10. ThrowerName: IfGreater
package guard
