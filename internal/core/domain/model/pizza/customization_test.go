package pizza_test

import (
	"testing"

	"pizzapos/internal/core/domain/model/pizza"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultCustomization(t *testing.T, baseIngredients ...string) *pizza.Customization {
	t.Helper()
	return pizza.NewDefaultCustomization(pizza.Defaults{
		SizeID:   "medium",
		CrustID:  "hand-tossed",
		SauceID:  "tomato-basil",
		CheeseID: "mozzarella",
	}, baseIngredients)
}

func TestNewDefaultCustomization(t *testing.T) {
	c := defaultCustomization(t, "t-tomato", "t-basil")

	assert.Equal(t, "medium", c.SizeID)
	assert.Equal(t, "hand-tossed", c.CrustID)
	assert.Equal(t, 1, c.Sauce.Quantity)
	assert.Equal(t, 1, c.Cheese.Quantity)

	require.Len(t, c.Toppings, 2)
	for _, st := range c.Toppings {
		assert.True(t, st.IsBaseIngredient)
		assert.Equal(t, pizza.PortionFull, st.Side)
		assert.Equal(t, pizza.QuantityNormal, st.Quantity)
	}
}

func TestQuantity_Next(t *testing.T) {
	assert.Equal(t, pizza.QuantityLight, pizza.QuantityNone.Next())
	assert.Equal(t, pizza.QuantityNormal, pizza.QuantityLight.Next())
	assert.Equal(t, pizza.QuantityExtra, pizza.QuantityNormal.Next())
	assert.Equal(t, pizza.QuantityDouble, pizza.QuantityExtra.Next())
	assert.Equal(t, pizza.QuantityNone, pizza.QuantityDouble.Next())
}

func TestQuantity_Validate(t *testing.T) {
	require.NoError(t, pizza.QuantityLight.Validate())
	require.Error(t, pizza.Quantity(1.7).Validate())
}

func TestPortion_Factor(t *testing.T) {
	assert.InDelta(t, 1.0, pizza.PortionFull.Factor(), 0)
	assert.InDelta(t, 0.5, pizza.PortionLeft.Factor(), 0)
	assert.InDelta(t, 0.5, pizza.PortionRight.Factor(), 0)
	assert.InDelta(t, 0.25, pizza.PortionQuarter.Factor(), 0)
}

func TestCustomization_ToggleTopping(t *testing.T) {
	t.Run("adds missing topping at quantity 1", func(t *testing.T) {
		c := defaultCustomization(t)

		c.ToggleTopping("t-olive", pizza.PortionLeft)

		require.Len(t, c.Toppings, 1)
		assert.Equal(t, pizza.QuantityNormal, c.Toppings[0].Quantity)
		assert.Equal(t, pizza.PortionLeft, c.Toppings[0].Side)
		assert.False(t, c.Toppings[0].IsBaseIngredient)
	})

	t.Run("base ingredient collapses to removed and stays listed", func(t *testing.T) {
		c := defaultCustomization(t, "t-tomato")

		c.ToggleTopping("t-tomato", pizza.PortionFull)

		require.Len(t, c.Toppings, 1)
		assert.Equal(t, pizza.QuantityNone, c.Toppings[0].Quantity)
		assert.True(t, c.Toppings[0].IsBaseIngredient)
	})

	t.Run("non-base entry cycling past double is pruned", func(t *testing.T) {
		c := defaultCustomization(t)
		c.ToggleTopping("t-olive", pizza.PortionFull) // 1
		c.ToggleTopping("t-olive", pizza.PortionFull) // 2
		c.ToggleTopping("t-olive", pizza.PortionFull) // 3
		c.ToggleTopping("t-olive", pizza.PortionFull) // 0 -> pruned

		assert.Empty(t, c.Toppings)
	})

	t.Run("sides are independent entries", func(t *testing.T) {
		c := defaultCustomization(t)

		c.ToggleTopping("t-olive", pizza.PortionLeft)
		c.ToggleTopping("t-olive", pizza.PortionRight)

		assert.Len(t, c.Toppings, 2)
	})
}

func TestCustomization_ApplyPreset(t *testing.T) {
	c := defaultCustomization(t, "t-onion")
	extra := 2

	c.ApplyPreset(pizza.Preset{
		Name:           "No Onion, Extra Cheese",
		CheeseQty:      &extra,
		RemoveToppings: []string{"t-onion"},
		AddToppings:    []string{"t-jalapeno"},
	})

	assert.Equal(t, 2, c.Cheese.Quantity)
	require.Len(t, c.Toppings, 2)
	assert.Equal(t, pizza.QuantityNone, c.Toppings[0].Quantity) // removed, retained
	assert.Equal(t, "t-jalapeno", c.Toppings[1].ToppingID)

	// re-applying does not duplicate the added topping
	c.ApplyPreset(pizza.Preset{AddToppings: []string{"t-jalapeno"}})
	assert.Len(t, c.Toppings, 2)
}

func TestCustomization_Clone(t *testing.T) {
	c := defaultCustomization(t, "t-tomato")
	c.Instructions = []string{"well done"}

	clone := c.Clone()
	clone.ToggleTopping("t-olive", pizza.PortionFull)
	clone.Instructions[0] = "light bake"

	assert.Len(t, c.Toppings, 1)
	assert.Equal(t, "well done", c.Instructions[0])
}
