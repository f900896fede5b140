package httperr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/guardrail/pkg/guard"
	"github.com/dmitrymomot/guardrail/pkg/outcome"
)

// Problem is the JSON body written for an error.
type Problem struct {
	Status int          `json:"status"`
	Title  string       `json:"title"`
	Kind   outcome.Kind `json:"kind,omitempty"`
	Detail string       `json:"detail,omitempty"`
	Errors []Failure    `json:"errors,omitempty"`
}

// Failure is one entry of Problem.Errors.
type Failure struct {
	Title   string       `json:"title"`
	Message string       `json:"message"`
	Kind    outcome.Kind `json:"kind"`
}

// StatusCode maps a failure kind to an HTTP status. KindNone maps to 200.
func StatusCode(k outcome.Kind) int {
	switch k {
	case outcome.KindNone:
		return http.StatusOK
	case outcome.KindValidation:
		return http.StatusBadRequest
	case outcome.KindUnauthorized:
		return http.StatusUnauthorized
	case outcome.KindNotFound:
		return http.StatusNotFound
	case outcome.KindConflict:
		return http.StatusConflict
	case outcome.KindDefault:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// FromError builds the problem describing err.
func FromError(err error) Problem {
	if verr := outcome.ExtractValidationError(err); verr != nil {
		kind := verr.Kind()
		if kind == outcome.KindNone {
			kind = outcome.KindValidation
		}
		return Problem{
			Status: StatusCode(kind),
			Title:  http.StatusText(StatusCode(kind)),
			Kind:   kind,
			Detail: verr.Error(),
			Errors: failuresOf(verr.Failures),
		}
	}

	var detail outcome.FailureDetail
	if errors.As(err, &detail) {
		return Problem{
			Status: StatusCode(detail.Kind()),
			Title:  detail.Title(),
			Kind:   detail.Kind(),
			Detail: detail.Message(),
			Errors: failuresOf([]outcome.FailureDetail{detail}),
		}
	}

	if errors.Is(err, guard.ErrInvalidArgument) {
		return Problem{
			Status: http.StatusBadRequest,
			Title:  http.StatusText(http.StatusBadRequest),
			Kind:   outcome.KindValidation,
			Detail: err.Error(),
		}
	}

	return Problem{
		Status: http.StatusInternalServerError,
		Title:  http.StatusText(http.StatusInternalServerError),
		Kind:   outcome.KindUnexpected,
	}
}

// Write renders err as an application/problem+json response.
func Write(w http.ResponseWriter, err error) error {
	p := FromError(err)
	w.Header().Set("Content-Type", "application/problem+json; charset=utf-8")
	w.WriteHeader(p.Status)
	return json.NewEncoder(w).Encode(p)
}

func failuresOf(details []outcome.FailureDetail) []Failure {
	if len(details) == 0 {
		return nil
	}
	out := make([]Failure, 0, len(details))
	for _, d := range details {
		out = append(out, Failure{Title: d.Title(), Message: d.Message(), Kind: d.Kind()})
	}
	return out
}
