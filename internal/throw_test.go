package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHandleRasterizePanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandleRasterizePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf(ErrInvalidRadius, "kaboom %d", 1)
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "kaboom 1: invalid radius")
		assert.True(t, errors.Is(err, ErrInvalidRadius))
		assert.Equal(t, ErrInvalidRadius, errors.Cause(err))
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.PanicsWithValue(t, "true panic", func() {
			testFn(false, true)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})
}

func TestGuard(t *testing.T) {
	assert.NoError(t, Guard(func() {}))
	assert.ErrorIs(t, Guard(func() { fatalf(ErrNumericOverflow, "too big") }), ErrNumericOverflow)

	// Runtime errors are errors too, but they are bugs and must not be swallowed
	assert.Panics(t, func() {
		Guard(func() {
			var points []Point
			_ = points[3]
		})
	})
}
