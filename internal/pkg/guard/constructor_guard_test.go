package guard_test

import (
	"errors"
	"testing"

	"pizzapos/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))

		// nil error falls back to the default
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard enforces
// constructor usage in a guarded domain object.
func TestConstructorGuardUsageExample(t *testing.T) {
	type HeldItems struct {
		count int
		guard guard.ConstructorGuard
	}

	var errHeldItemsNotConstructed = errors.New("HeldItems must be created via newHeldItems")

	newHeldItems := func(count int) (HeldItems, error) {
		if count < 0 {
			return HeldItems{}, errors.New("count cannot be negative")
		}
		return HeldItems{count: count, guard: guard.NewConstructorGuard()}, nil
	}

	validate := func(h HeldItems) error {
		return h.guard.Validate(errHeldItemsNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		h, err := newHeldItems(3)

		require.NoError(t, err)
		require.NoError(t, validate(h))
		assert.Equal(t, 3, h.count)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var h HeldItems

		err := validate(h)

		require.Error(t, err)
		assert.Equal(t, errHeldItemsNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newHeldItems(-1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "count cannot be negative")
	})
}

func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardImmutability verifies guards can be safely copied.
func TestConstructorGuardImmutability(t *testing.T) {
	g := guard.NewConstructorGuard()
	testError := errors.New("test error")

	gCopy := g // pass by value

	require.NoError(t, g.Validate(testError))
	require.NoError(t, gCopy.Validate(testError))
}
