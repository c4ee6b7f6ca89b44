package terminal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzapos/internal/core/domain/model/catalog"
	"pizzapos/internal/core/domain/model/pizza"
	"pizzapos/internal/core/domain/model/terminal"
)

// flatPricer prices every line at its base price plus one dollar per selected
// topping, so tests can tell repriced lines apart without the full engine.
type flatPricer struct{}

func (flatPricer) PriceFromBase(base float64, c *pizza.Customization) float64 {
	if c == nil {
		return base
	}
	return base + float64(len(c.Toppings))
}

func newTerminal(t *testing.T) *terminal.Terminal {
	t.Helper()
	term, err := terminal.NewTerminal(flatPricer{})
	require.NoError(t, err)
	return term
}

func testDefaults() pizza.Defaults {
	return pizza.Defaults{
		SizeID:   "size-medium",
		CrustID:  "crust-hand-tossed",
		SauceID:  "sauce-tomato-basil",
		CheeseID: "cheese-mozzarella",
	}
}

func testProduct(t *testing.T, id string, customizable bool) *catalog.Product {
	t.Helper()
	spec := catalog.ProductSpec{
		ID:           id,
		Name:         "Margherita",
		Category:     "pizza",
		Price:        9.99,
		Stock:        50,
		PrepTimeMin:  12,
		Customizable: customizable,
	}
	if customizable {
		spec.BaseIngredients = []string{"t-tomato", "t-mozzarella"}
	}
	product, err := catalog.NewProduct(spec)
	require.NoError(t, err)
	return product
}

func TestNewTerminal_RequiresPricer(t *testing.T) {
	_, err := terminal.NewTerminal(nil)
	assert.ErrorIs(t, err, terminal.ErrPricerIsRequired)
}

func TestNewTerminal_OpensOneTab(t *testing.T) {
	term := newTerminal(t)

	require.Len(t, term.Tabs(), 1)
	assert.Equal(t, 0, term.ActiveTabIndex())
	assert.Equal(t, "Order 1", term.ActiveTab().Name())
	assert.Equal(t, terminal.RoleJunior, term.Settings().UserRole)
	assert.Equal(t, "all", term.Settings().SelectedCategory)
}

func TestTerminal_AddToCart_PlainProductKeepsBasePrice(t *testing.T) {
	term := newTerminal(t)

	item, err := term.AddToCart(testProduct(t, "p-cola", false), nil, testDefaults())

	require.NoError(t, err)
	assert.Nil(t, item.Customization)
	assert.InDelta(t, 9.99, item.Price, 1e-9)
	assert.Equal(t, 1, item.Quantity)
	assert.Len(t, term.ActiveItems(), 1)
}

func TestTerminal_AddToCart_CustomizableProductGetsDefaults(t *testing.T) {
	term := newTerminal(t)

	item, err := term.AddToCart(testProduct(t, "p-margherita", true), nil, testDefaults())

	require.NoError(t, err)
	require.NotNil(t, item.Customization)
	assert.Equal(t, "size-medium", item.Customization.SizeID)
	require.Len(t, item.Customization.Toppings, 2)
	assert.True(t, item.Customization.Toppings[0].IsBaseIngredient)
	// flatPricer: base plus one per topping.
	assert.InDelta(t, 11.99, item.Price, 1e-9)
}

func TestTerminal_AddToCart_DistinctCartIDs(t *testing.T) {
	term := newTerminal(t)
	product := testProduct(t, "p-margherita", true)

	first, err := term.AddToCart(product, nil, testDefaults())
	require.NoError(t, err)
	second, err := term.AddToCart(product, nil, testDefaults())
	require.NoError(t, err)

	assert.NotEqual(t, first.CartID, second.CartID)
	assert.Len(t, term.ActiveItems(), 2)
}

func TestTerminal_AddToCart_NilProductRejected(t *testing.T) {
	term := newTerminal(t)

	_, err := term.AddToCart(nil, nil, testDefaults())

	assert.ErrorIs(t, err, terminal.ErrProductIsRequired)
}

func TestTerminal_ApplyTemplate_OneUndoableAction(t *testing.T) {
	term := newTerminal(t)
	lines := []terminal.TemplateLine{
		{Product: testProduct(t, "p-margherita", true)},
		{Product: testProduct(t, "p-pepperoni", true)},
		{Product: testProduct(t, "p-cola", false)},
	}

	require.NoError(t, term.ApplyTemplate(lines, testDefaults()))
	assert.Len(t, term.ActiveItems(), 3)

	assert.True(t, term.UndoLastAction())
	assert.Empty(t, term.ActiveItems())
}

func TestTerminal_UpdateCartItem_RepricesFromFrozenBase(t *testing.T) {
	term := newTerminal(t)
	item, err := term.AddToCart(testProduct(t, "p-margherita", true), nil, testDefaults())
	require.NoError(t, err)

	updated := item.Customization.Clone()
	updated.Toppings = append(updated.Toppings, pizza.SelectedTopping{
		ToppingID: "t-mushroom",
		Side:      pizza.PortionFull,
		Quantity:  pizza.QuantityNormal,
	})

	got, ok := term.UpdateCartItem(item.CartID, updated)
	require.True(t, ok)
	assert.InDelta(t, item.BasePrice, got.BasePrice, 1e-9)
	assert.InDelta(t, 12.99, got.Price, 1e-9)

	_, ok = term.UpdateCartItem("missing", updated)
	assert.False(t, ok)
}

func TestTerminal_UpdateQuantity(t *testing.T) {
	term := newTerminal(t)
	item, err := term.AddToCart(testProduct(t, "p-cola", false), nil, testDefaults())
	require.NoError(t, err)

	require.True(t, term.UpdateQuantity(item.CartID, 3))
	got, ok := term.ActiveTab().Item(item.CartID)
	require.True(t, ok)
	assert.Equal(t, 3, got.Quantity)

	// Zero removes the line.
	require.True(t, term.UpdateQuantity(item.CartID, 0))
	assert.Empty(t, term.ActiveItems())

	assert.False(t, term.UpdateQuantity("missing", 2))
}

func TestTerminal_DuplicateItem_DeepCopiesCustomization(t *testing.T) {
	term := newTerminal(t)
	item, err := term.AddToCart(testProduct(t, "p-margherita", true), nil, testDefaults())
	require.NoError(t, err)
	require.True(t, term.UpdateQuantity(item.CartID, 5))

	duplicate, ok := term.DuplicateItem(item.CartID)
	require.True(t, ok)
	assert.NotEqual(t, item.CartID, duplicate.CartID)
	assert.Equal(t, 1, duplicate.Quantity)
	assert.InDelta(t, item.Price, duplicate.Price, 1e-9)

	// Editing the duplicate leaves the original untouched.
	edited := duplicate.Customization.Clone()
	edited.SizeID = "size-large"
	_, ok = term.UpdateCartItem(duplicate.CartID, edited)
	require.True(t, ok)
	original, ok := term.ActiveTab().Item(item.CartID)
	require.True(t, ok)
	assert.Equal(t, "size-medium", original.Customization.SizeID)
}

func TestTerminal_UndoLastAction_SingleLevelConsumed(t *testing.T) {
	term := newTerminal(t)
	_, err := term.AddToCart(testProduct(t, "p-cola", false), nil, testDefaults())
	require.NoError(t, err)
	_, err = term.AddToCart(testProduct(t, "p-cola", false), nil, testDefaults())
	require.NoError(t, err)

	term.ClearCart()
	require.Empty(t, term.ActiveItems())

	require.True(t, term.UndoLastAction())
	assert.Len(t, term.ActiveItems(), 2)

	// The snapshot was consumed.
	assert.False(t, term.UndoLastAction())
}

func TestTerminal_UndoLastAction_WithoutHistoryIsNoop(t *testing.T) {
	term := newTerminal(t)
	assert.False(t, term.UndoLastAction())
}

func TestTerminal_TabsLifecycle(t *testing.T) {
	term := newTerminal(t)

	second := term.AddTab()
	assert.Equal(t, "Order 2", second.Name())
	assert.Equal(t, 1, term.ActiveTabIndex())

	term.SetActiveTab(0)
	assert.Equal(t, 0, term.ActiveTabIndex())
	term.SetActiveTab(7)
	assert.Equal(t, 0, term.ActiveTabIndex())

	term.CloseTab(1)
	assert.Len(t, term.Tabs(), 1)

	// Tab names never repeat even after closing.
	third := term.AddTab()
	assert.Equal(t, "Order 3", third.Name())
}

func TestTerminal_CloseTab_SoleTabClearsInstead(t *testing.T) {
	term := newTerminal(t)
	_, err := term.AddToCart(testProduct(t, "p-cola", false), nil, testDefaults())
	require.NoError(t, err)

	term.CloseTab(0)

	require.Len(t, term.Tabs(), 1)
	assert.Empty(t, term.ActiveItems())
}

func TestTerminal_CloseTab_ActivatesPreviousIndex(t *testing.T) {
	term := newTerminal(t)
	term.AddTab()
	term.AddTab()
	term.SetActiveTab(1)

	term.CloseTab(1)
	assert.Equal(t, 0, term.ActiveTabIndex())

	term.AddTab()
	term.CloseTab(0)
	assert.Equal(t, 0, term.ActiveTabIndex())
}

func TestTerminal_TabsAreIndependentCarts(t *testing.T) {
	term := newTerminal(t)
	_, err := term.AddToCart(testProduct(t, "p-cola", false), nil, testDefaults())
	require.NoError(t, err)

	term.AddTab()
	assert.Empty(t, term.ActiveItems())

	term.SetActiveTab(0)
	assert.Len(t, term.ActiveItems(), 1)
}

func TestTerminal_HoldOrder_ResumeOrder(t *testing.T) {
	term := newTerminal(t)
	_, err := term.AddToCart(testProduct(t, "p-margherita", true), nil, testDefaults())
	require.NoError(t, err)

	heldAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tabID := term.ActiveTab().ID()
	held, ok := term.HoldOrder("phone customer", heldAt)
	require.True(t, ok)
	assert.Equal(t, tabID, held.ID)
	assert.Equal(t, "phone customer", held.Reason)
	assert.Equal(t, heldAt, held.HeldAt)
	assert.Empty(t, term.ActiveItems())
	assert.Len(t, term.HeldOrders(), 1)

	// Empty active tab is reused on resume.
	require.True(t, term.ResumeOrder(held.ID))
	assert.Len(t, term.ActiveItems(), 1)
	assert.Empty(t, term.HeldOrders())
	assert.Len(t, term.Tabs(), 1)
}

func TestTerminal_ResumeOrder_BusyTabOpensNewTab(t *testing.T) {
	term := newTerminal(t)
	_, err := term.AddToCart(testProduct(t, "p-margherita", true), nil, testDefaults())
	require.NoError(t, err)
	held, ok := term.HoldOrder("table 5", time.Now())
	require.True(t, ok)

	_, err = term.AddToCart(testProduct(t, "p-cola", false), nil, testDefaults())
	require.NoError(t, err)

	require.True(t, term.ResumeOrder(held.ID))
	require.Len(t, term.Tabs(), 2)
	assert.Equal(t, "table 5", term.ActiveTab().Name())
	assert.Len(t, term.ActiveItems(), 1)
}

func TestTerminal_HoldOrder_BlankReasonStillParks(t *testing.T) {
	term := newTerminal(t)
	_, err := term.AddToCart(testProduct(t, "p-cola", false), nil, testDefaults())
	require.NoError(t, err)

	held, ok := term.HoldOrder("", time.Now())
	require.True(t, ok)
	assert.Empty(t, held.Reason)
	assert.Len(t, term.HeldOrders(), 1)
	assert.Empty(t, term.ActiveItems())
}

func TestTerminal_HoldOrder_EmptyCartIsNoop(t *testing.T) {
	term := newTerminal(t)

	_, ok := term.HoldOrder("empty cart", time.Now())
	assert.False(t, ok)
	assert.Empty(t, term.HeldOrders())

	assert.False(t, term.ResumeOrder("missing"))
}

func TestTerminal_CustomizationSessions(t *testing.T) {
	term := newTerminal(t)

	first := term.StartCustomizing("p-margherita")
	second := term.StartCustomizing("p-pepperoni")
	assert.NotEqual(t, first.TempID, second.TempID)
	assert.Len(t, term.Sessions(), 2)

	active, ok := term.ActiveSession()
	require.True(t, ok)
	assert.Equal(t, second.TempID, active.TempID)

	require.True(t, term.CancelCustomizing(second.TempID))
	active, ok = term.ActiveSession()
	require.True(t, ok)
	assert.Equal(t, first.TempID, active.TempID)

	require.True(t, term.CancelCustomizing(first.TempID))
	_, ok = term.ActiveSession()
	assert.False(t, ok)
	assert.False(t, term.CancelCustomizing(first.TempID))
}

func TestTerminal_StartEditing_SeedsFromCartLine(t *testing.T) {
	term := newTerminal(t)
	item, err := term.AddToCart(testProduct(t, "p-margherita", true), nil, testDefaults())
	require.NoError(t, err)

	session, ok := term.StartEditing(item.CartID)
	require.True(t, ok)
	assert.Equal(t, item.CartID, session.TempID)
	assert.True(t, session.Editing)
	require.NotNil(t, session.Seed)
	assert.Equal(t, "size-medium", session.Seed.SizeID)

	// A second edit of the same line re-activates the open session.
	term.StartCustomizing("p-pepperoni")
	again, ok := term.StartEditing(item.CartID)
	require.True(t, ok)
	assert.Equal(t, session.TempID, again.TempID)
	assert.Len(t, term.Sessions(), 2)

	_, ok = term.StartEditing("missing")
	assert.False(t, ok)
}

func TestTerminal_AddToCart_ClosesOpenSessionForProduct(t *testing.T) {
	term := newTerminal(t)
	term.StartCustomizing("p-margherita")
	other := term.StartCustomizing("p-pepperoni")

	_, err := term.AddToCart(testProduct(t, "p-margherita", true), nil, testDefaults())
	require.NoError(t, err)

	sessions := term.Sessions()
	require.Len(t, sessions, 1)
	assert.Equal(t, other.TempID, sessions[0].TempID)
}

func TestTerminal_UpdateCartItem_ClosesMatchingEditSession(t *testing.T) {
	term := newTerminal(t)
	item, err := term.AddToCart(testProduct(t, "p-margherita", true), nil, testDefaults())
	require.NoError(t, err)
	_, ok := term.StartEditing(item.CartID)
	require.True(t, ok)

	_, ok = term.UpdateCartItem(item.CartID, item.Customization.Clone())
	require.True(t, ok)

	assert.Empty(t, term.Sessions())
}

func TestTerminal_RecentsDedupedAndBounded(t *testing.T) {
	term := newTerminal(t)
	defaults := testDefaults()

	for i := 0; i < 12; i++ {
		id := string(rune('a' + i))
		_, err := term.AddToCart(testProduct(t, "p-"+id, false), nil, defaults)
		require.NoError(t, err)
	}
	recents := term.RecentProductIDs()
	require.Len(t, recents, 10)
	assert.Equal(t, "p-l", recents[0])

	// Re-adding moves to the front without duplicating.
	_, err := term.AddToCart(testProduct(t, "p-f", false), nil, defaults)
	require.NoError(t, err)
	recents = term.RecentProductIDs()
	require.Len(t, recents, 10)
	assert.Equal(t, "p-f", recents[0])
}

func TestTerminal_CompleteCheckout_ClearsCartAndUndo(t *testing.T) {
	term := newTerminal(t)
	_, err := term.AddToCart(testProduct(t, "p-cola", false), nil, testDefaults())
	require.NoError(t, err)

	term.CompleteCheckout()

	assert.Empty(t, term.ActiveItems())
	assert.False(t, term.UndoLastAction())
}

func TestTerminal_Settings(t *testing.T) {
	term := newTerminal(t)

	require.NoError(t, term.SetUserRole(terminal.RoleSenior))
	term.SetRushMode(true)
	term.SetShowReadinessView(true)
	term.SetSearchQuery("marg")
	term.SetSelectedCategory("pizza")

	settings := term.Settings()
	assert.Equal(t, terminal.RoleSenior, settings.UserRole)
	assert.True(t, settings.RushMode)
	assert.True(t, settings.ShowReadinessView)
	assert.Equal(t, "marg", settings.SearchQuery)
	assert.Equal(t, "pizza", settings.SelectedCategory)

	assert.Error(t, term.SetUserRole(terminal.Role("manager")))
}

func TestTerminal_Validate_ZeroValue(t *testing.T) {
	var term terminal.Terminal
	assert.Error(t, term.Validate())
}
