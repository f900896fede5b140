package outcome_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/guardrail/pkg/outcome"
)

const message = "validation message"

var allKinds = []outcome.Kind{
	outcome.KindFailure,
	outcome.KindUnexpected,
	outcome.KindValidation,
	outcome.KindConflict,
	outcome.KindNotFound,
	outcome.KindUnauthorized,
	outcome.KindDefault,
}

func TestOutcome_Factories(t *testing.T) {
	t.Parallel()

	t.Run("success has no kind", func(t *testing.T) {
		o := outcome.Success(message)
		assert.True(t, o.IsValid())
		assert.False(t, o.IsFailure())
		assert.Equal(t, message, o.Message())
		assert.Equal(t, outcome.KindNone, o.Kind())
		assert.Empty(t, o.Title())
	})

	t.Run("failure defaults to validation kind", func(t *testing.T) {
		o := outcome.Fail(message)
		assert.False(t, o.IsValid())
		assert.True(t, o.IsFailure())
		assert.Equal(t, outcome.KindValidation, o.Kind())
	})

	t.Run("new follows validity", func(t *testing.T) {
		assert.Equal(t, outcome.Success(message), outcome.New(true, message))
		assert.Equal(t, outcome.Fail(message), outcome.New(false, message))
	})
}

func TestOutcome_WithKind(t *testing.T) {
	t.Parallel()

	t.Run("is a no-op on success for every kind", func(t *testing.T) {
		for _, k := range allKinds {
			for _, msg := range []string{"", "ok", message} {
				o := outcome.Success(msg).WithKind(k)
				assert.Equal(t, outcome.KindNone, o.Kind(), "kind %s", k)
				assert.True(t, o.IsValid())
			}
		}
	})

	t.Run("applies to failures", func(t *testing.T) {
		for _, k := range allKinds {
			assert.Equal(t, k, outcome.Fail(message).WithKind(k).Kind())
		}
	})

	t.Run("none keeps the current failure kind", func(t *testing.T) {
		o := outcome.Fail(message).AsConflict().WithKind(outcome.KindNone)
		assert.Equal(t, outcome.KindConflict, o.Kind())
	})

	t.Run("undeclared kind is ignored", func(t *testing.T) {
		o := outcome.Fail(message).AsNotFound().WithKind(outcome.Kind(42))
		assert.Equal(t, outcome.KindNotFound, o.Kind())
	})

	t.Run("shortcuts", func(t *testing.T) {
		assert.Equal(t, outcome.KindFailure, outcome.Fail(message).AsFailure().Kind())
		assert.Equal(t, outcome.KindNotFound, outcome.Fail(message).AsNotFound().Kind())
		assert.Equal(t, outcome.KindUnexpected, outcome.Fail(message).AsUnexpected().Kind())
		assert.Equal(t, outcome.KindValidation, outcome.Fail(message).AsValidation().Kind())
		assert.Equal(t, outcome.KindConflict, outcome.Fail(message).AsConflict().Kind())
		assert.Equal(t, outcome.KindUnauthorized, outcome.Fail(message).AsUnauthorized().Kind())
		assert.Equal(t, outcome.KindNone, outcome.Success(message).AsNotFound().Kind())
	})

	t.Run("does not modify the receiver", func(t *testing.T) {
		base := outcome.Fail(message)
		_ = base.AsNotFound()
		assert.Equal(t, outcome.KindValidation, base.Kind())
	})
}

func TestOutcome_WithTitle(t *testing.T) {
	t.Parallel()

	t.Run("applies on both paths", func(t *testing.T) {
		assert.Equal(t, "test title", outcome.Success(message).WithTitle("test title").Title())
		assert.Equal(t, "test title", outcome.Fail(message).WithTitle("test title").Title())
	})

	t.Run("last write wins", func(t *testing.T) {
		o := outcome.Fail(message)
		first := o.WithTitle("T")
		second := o.WithTitle("T")
		assert.Equal(t, first, second)
		assert.Equal(t, "B", o.WithTitle("A").WithTitle("B").Title())
		assert.Empty(t, o.Title())
	})
}

func TestOutcome_BindFailure(t *testing.T) {
	t.Parallel()

	t.Run("rebuilds a failure from the detail", func(t *testing.T) {
		detail := outcome.Conflict("y", "T")
		o := outcome.Fail("x").WithCheck(outcome.CheckIfEmpty).BindFailure(detail)

		assert.False(t, o.IsValid())
		assert.Equal(t, "y", o.Message())
		assert.Equal(t, "T", o.Title())
		assert.Equal(t, outcome.KindConflict, o.Kind())
		assert.Equal(t, outcome.CheckIfEmpty, o.Check())
	})

	t.Run("leaves a success untouched", func(t *testing.T) {
		o := outcome.Success("x").BindFailure(outcome.Conflict("y", "T"))

		assert.True(t, o.IsValid())
		assert.Equal(t, "x", o.Message())
		assert.Empty(t, o.Title())
		assert.Equal(t, outcome.KindNone, o.Kind())
	})
}

func TestOutcome_BindZeroFailure(t *testing.T) {
	t.Parallel()

	o := outcome.Fail(message).AsConflict().BindFailure(outcome.FailureDetail{})
	assert.True(t, o.IsFailure())
	assert.Equal(t, outcome.KindValidation, o.Kind())
}

func TestOutcome_WithCheck(t *testing.T) {
	t.Parallel()

	o := outcome.Success(message).WithCheck(outcome.CheckIfGreater)
	assert.Equal(t, outcome.CheckIfGreater, o.Check())
	assert.Equal(t, "IfGreater", o.Check().String())
}
