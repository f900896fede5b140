package guard_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardrail/pkg/check"
	"github.com/dmitrymomot/guardrail/pkg/guard"
	"github.com/dmitrymomot/guardrail/pkg/logger"
	"github.com/dmitrymomot/guardrail/pkg/outcome"
)

var errFormat = errors.New("format")

func formatError(message string) error {
	return fmt.Errorf("%w: %s", errFormat, message)
}

func TestGuard_Check(t *testing.T) {
	t.Parallel()

	g := guard.New()

	t.Run("returns nil when rule does not hold", func(t *testing.T) {
		assert.NoError(t, g.Check(check.IfEmpty("name", "ann")))
		assert.NoError(t, g.Check(check.IfGreater("n", 1, 3)))
	})

	t.Run("default message with compare value", func(t *testing.T) {
		err := g.Check(check.IfGreater("numberA", 12, 3))
		require.Error(t, err)
		assert.ErrorIs(t, err, guard.ErrInvalidArgument)
		assert.Equal(t, "Error to validate param: numberA. Value: 12. Compare: 3. ThrowerName: IfGreater", err.Error())
	})

	t.Run("default message without compare value", func(t *testing.T) {
		err := g.Check(check.IfNotParseToLong("textTest", "1234Asdfedf"))
		require.Error(t, err)
		assert.Equal(t, "Error to validate param: textTest. Value: 1234Asdfedf. ThrowerName: IfNotParseToLong", err.Error())
	})

	t.Run("argument error carries check and label", func(t *testing.T) {
		err := g.Check(check.IfNil("user", nil))
		var argErr *guard.ArgumentError
		require.ErrorAs(t, err, &argErr)
		assert.Equal(t, "IfNil", argErr.Check.String())
		assert.Equal(t, "user", argErr.Label)
	})

	t.Run("custom message", func(t *testing.T) {
		err := g.Check(check.IfTrue("flag", true), guard.WithMessage("flag must be off"))
		require.Error(t, err)
		assert.Equal(t, "flag must be off", err.Error())
	})
}

func TestGuard_WithError(t *testing.T) {
	t.Parallel()

	g := guard.New()

	t.Run("override applies to one call only", func(t *testing.T) {
		err := g.Check(check.IfEmpty("stringTest", ""), guard.WithError(formatError))
		require.ErrorIs(t, err, errFormat)
		assert.NotErrorIs(t, err, guard.ErrInvalidArgument)

		err = g.Check(check.IfEmpty("stringTest", ""))
		require.ErrorIs(t, err, guard.ErrInvalidArgument)
		assert.NotErrorIs(t, err, errFormat)
	})

	t.Run("passing call does not retain the override", func(t *testing.T) {
		require.NoError(t, g.Check(check.IfEmpty("stringTest", "test123"), guard.WithError(formatError)))

		err := g.Check(check.IfEmpty("errorStringTest", ""))
		assert.ErrorIs(t, err, guard.ErrInvalidArgument)
	})

	t.Run("nil factory result falls back to argument error", func(t *testing.T) {
		err := g.Check(check.IfTrue("c", true), guard.WithError(func(string) error { return nil }))
		assert.ErrorIs(t, err, guard.ErrInvalidArgument)
	})

	t.Run("concurrent overrides do not leak", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := range 50 {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				if i%2 == 0 {
					err := g.Check(check.IfZero("n", 0), guard.WithError(formatError))
					assert.ErrorIs(t, err, errFormat)
					return
				}
				err := g.Check(check.IfZero("n", 0))
				assert.ErrorIs(t, err, guard.ErrInvalidArgument)
				assert.NotErrorIs(t, err, errFormat)
			}(i)
		}
		wg.Wait()
	})
}

func TestGuard_WithErrorFactory(t *testing.T) {
	t.Parallel()

	g := guard.New(guard.WithErrorFactory(formatError))

	err := g.Check(check.IfNotEqual("n", 1, 2))
	require.ErrorIs(t, err, errFormat)
	assert.Contains(t, err.Error(), "Compare: 2. ThrowerName: IfNotEqual")

	t.Run("exported default factory", func(t *testing.T) {
		g := guard.New(guard.WithErrorFactory(guard.DefaultErrorFactory))
		err := g.Check(check.IfTrue("c", true))
		var argErr *guard.ArgumentError
		require.ErrorAs(t, err, &argErr)
		assert.Equal(t, "Error to validate param: c. Value: true. ThrowerName: IfTrue", argErr.Message)
		assert.Equal(t, outcome.CheckNone, argErr.Check)
	})

	t.Run("nil factory keeps default", func(t *testing.T) {
		g := guard.New(guard.WithErrorFactory(nil))
		assert.ErrorIs(t, g.Check(check.IfTrue("c", true)), guard.ErrInvalidArgument)
	})
}

func TestGuard_SharedFactoryError(t *testing.T) {
	t.Parallel()

	shared := &guard.ArgumentError{Message: "rejected"}
	buf := &bytes.Buffer{}
	g := guard.New(
		guard.WithErrorFactory(func(string) error { return shared }),
		guard.WithLogger(logger.New(logger.WithOutput(buf))),
	)

	require.Same(t, shared, g.Check(check.IfEmpty("first", "")))
	require.Same(t, shared, g.Check(check.IfZero("second", 0)))

	assert.Equal(t, outcome.CheckNone, shared.Check, "factory error must not be modified")
	assert.Empty(t, shared.Label)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	var second map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &second))
	assert.Equal(t, "second", second["label"])
	assert.Equal(t, "IfZero", second["check"])

	t.Run("concurrent calls", func(t *testing.T) {
		g := guard.New(guard.WithErrorFactory(func(string) error { return shared }))

		var wg sync.WaitGroup
		for i := range 50 {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				label := fmt.Sprintf("field%d", i)
				assert.Same(t, shared, g.Check(check.IfEmpty(label, "")))
			}(i)
		}
		wg.Wait()
		assert.Empty(t, shared.Label)
	})

	t.Run("nil factory result carries check and label", func(t *testing.T) {
		err := g.Check(check.IfTrue("flag", true), guard.WithError(func(string) error { return nil }))
		var argErr *guard.ArgumentError
		require.ErrorAs(t, err, &argErr)
		assert.NotSame(t, shared, argErr)
		assert.Equal(t, outcome.CheckIfTrue, argErr.Check)
		assert.Equal(t, "flag", argErr.Label)
	})
}

func TestGuard_All(t *testing.T) {
	t.Parallel()

	g := guard.New()

	t.Run("returns first violation", func(t *testing.T) {
		err := g.All(
			check.IfEmpty("name", "ann"),
			check.IfZero("age", 0),
			check.IfNotEmail("email", "nope"),
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "param: age")
	})

	t.Run("nil when nothing holds", func(t *testing.T) {
		assert.NoError(t, g.All(check.IfEmpty("name", "ann"), check.IfNotEmail("email", "a@b.io")))
	})
}

func TestGuard_UncomparableValues(t *testing.T) {
	t.Parallel()

	g := guard.New()
	require.NotPanics(t, func() {
		assert.NoError(t, g.Check(check.IfEqual[any]("items", map[string]int{}, map[string]int{})))
	})
}

func TestMust(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { guard.Must(nil) })
	assert.Panics(t, func() { guard.Must(guard.New().Check(check.IfTrue("c", true))) })
}

func TestGuard_Logging(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	g := guard.New(guard.WithLogger(logger.New(logger.WithOutput(buf))))

	require.Error(t, g.Check(check.IfNil("user", nil)))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "guard violated", entry["msg"])
	assert.Equal(t, "IfNil", entry["check"])
	assert.Equal(t, "user", entry["label"])
	assert.Equal(t, "guard", entry["component"])
}
