package httperr_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardrail/pkg/check"
	"github.com/dmitrymomot/guardrail/pkg/guard"
	"github.com/dmitrymomot/guardrail/pkg/httperr"
	"github.com/dmitrymomot/guardrail/pkg/outcome"
)

func TestStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind outcome.Kind
		want int
	}{
		{outcome.KindNone, http.StatusOK},
		{outcome.KindValidation, http.StatusBadRequest},
		{outcome.KindUnauthorized, http.StatusUnauthorized},
		{outcome.KindNotFound, http.StatusNotFound},
		{outcome.KindConflict, http.StatusConflict},
		{outcome.KindDefault, http.StatusUnprocessableEntity},
		{outcome.KindFailure, http.StatusInternalServerError},
		{outcome.KindUnexpected, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, httperr.StatusCode(tt.kind))
		})
	}
}

func TestFromError(t *testing.T) {
	t.Parallel()

	t.Run("single validation failure", func(t *testing.T) {
		err := outcome.NewResult(outcome.Fail("user missing").AsNotFound()).Err("lookup")
		p := httperr.FromError(fmt.Errorf("service: %w", err))

		assert.Equal(t, http.StatusNotFound, p.Status)
		assert.Equal(t, outcome.KindNotFound, p.Kind)
		assert.Equal(t, "lookup", p.Detail)
		require.Len(t, p.Errors, 1)
		assert.Equal(t, "user missing", p.Errors[0].Message)
		assert.Equal(t, outcome.DefaultTitle, p.Errors[0].Title)
	})

	t.Run("many failures", func(t *testing.T) {
		err := outcome.NewResult(outcome.Fail("a"), outcome.Fail("b").AsConflict()).JoinedErr("; ")
		p := httperr.FromError(err)
		assert.Equal(t, http.StatusUnprocessableEntity, p.Status)
		assert.Equal(t, "a; b", p.Detail)
		assert.Len(t, p.Errors, 2)
	})

	t.Run("empty validation error", func(t *testing.T) {
		p := httperr.FromError(outcome.NewValidationError("bad", nil))
		assert.Equal(t, http.StatusBadRequest, p.Status)
	})

	t.Run("failure detail", func(t *testing.T) {
		p := httperr.FromError(outcome.Unauthorized("token expired", "Auth.Token"))
		assert.Equal(t, http.StatusUnauthorized, p.Status)
		assert.Equal(t, "Auth.Token", p.Title)
		assert.Equal(t, "token expired", p.Detail)
	})

	t.Run("guard argument error", func(t *testing.T) {
		err := guard.New().Check(check.IfEmpty("name", ""))
		p := httperr.FromError(err)
		assert.Equal(t, http.StatusBadRequest, p.Status)
		assert.Contains(t, p.Detail, "param: name")
	})

	t.Run("unknown error hides detail", func(t *testing.T) {
		p := httperr.FromError(errors.New("db password leaked"))
		assert.Equal(t, http.StatusInternalServerError, p.Status)
		assert.Empty(t, p.Detail)
	})
}

func TestWrite(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	err := outcome.NewResult(outcome.Fail("email taken").AsConflict()).Err("")
	require.NoError(t, httperr.Write(rec, err))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/problem+json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "conflict", body["kind"])
	assert.Equal(t, "validation failed: email taken", body["detail"])
	assert.EqualValues(t, http.StatusConflict, body["status"])
}
