// Package httperr turns the errors produced by the outcome and guard
// packages into HTTP problem responses.
//
// The aggregate kind of a validation error selects the status code:
//
//	KindValidation   400 Bad Request
//	KindUnauthorized 401 Unauthorized
//	KindNotFound     404 Not Found
//	KindConflict     409 Conflict
//	KindDefault      422 Unprocessable Entity
//	KindFailure      500 Internal Server Error
//	KindUnexpected   500 Internal Server Error
//
// A *guard.ArgumentError maps to 400. Any other error maps to 500 and its
// text is not exposed.
//
// Handle adapts an error-returning handler so any router can mount it:
//
//	r.Get("/orders/{id}", httperr.Handle(func(w http.ResponseWriter, r *http.Request) error {
//	    return g.Check(check.IfNotUUID("id", chi.URLParam(r, "id")))
//	}, httperr.WithLogger(log)))
//
//	if err := res.Err("invalid order"); err != nil {
//	    _ = httperr.Write(w, err)
//	    return
//	}
package httperr
