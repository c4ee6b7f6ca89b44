package pizza

// SauceSelection is the chosen sauce with its placement and intensity.
// Quantity above 1 incurs a flat surcharge in the pricing engine.
type SauceSelection struct {
	ID        string
	Side      Portion
	Quantity  int
	IsDrizzle bool
}

// CheeseSelection is the chosen cheese with its placement and volume.
type CheeseSelection struct {
	ID       string
	Side     Portion
	Quantity int
}

// SelectedTopping is one topping entry on the pizza. A base-ingredient entry
// at quantity 1 means "included, unmodified" and carries no extra charge;
// quantity 0 on a base ingredient means "removed" and the entry is retained so
// the kitchen sees the removal. A non-base entry cycled to quantity 0 is
// pruned instead.
type SelectedTopping struct {
	ToppingID        string
	Side             Portion
	Quantity         Quantity
	IsBaseIngredient bool
}

// Cooking holds the kitchen-override preferences for a pizza.
type Cooking struct {
	Bake   string
	Cut    string
	Slices int
}

// Customization is the full configuration of a customizable product accordion:
// size, crust, sauce, cheese, toppings, cooking overrides, and free-form
// special instructions. It is a snapshot value attached to cart lines; the
// line price is recomputed from it on every change.
type Customization struct {
	SizeID       string
	CrustID      string
	Sauce        SauceSelection
	Cheese       CheeseSelection
	Toppings     []SelectedTopping
	Cooking      Cooking
	Instructions []string
}

// Defaults describes the option ids a default customization is seeded from.
type Defaults struct {
	SizeID   string
	CrustID  string
	SauceID  string
	CheeseID string
}

// NewDefaultCustomization builds the customization a customizable product
// starts with: default size/crust/sauce/cheese and every base ingredient as a
// full-side topping at quantity 1.
func NewDefaultCustomization(defaults Defaults, baseIngredients []string) *Customization {
	toppings := make([]SelectedTopping, 0, len(baseIngredients))
	for _, id := range baseIngredients {
		toppings = append(toppings, SelectedTopping{
			ToppingID:        id,
			Side:             PortionFull,
			Quantity:         QuantityNormal,
			IsBaseIngredient: true,
		})
	}

	return &Customization{
		SizeID:   defaults.SizeID,
		CrustID:  defaults.CrustID,
		Sauce:    SauceSelection{ID: defaults.SauceID, Side: PortionFull, Quantity: 1},
		Cheese:   CheeseSelection{ID: defaults.CheeseID, Side: PortionFull, Quantity: 1},
		Toppings: toppings,
		Cooking:  Cooking{Bake: "Normal", Cut: "Triangle", Slices: 6},
	}
}

// Clone returns a deep copy of the customization, so cart lines and kitchen
// orders hold independent snapshots.
func (c *Customization) Clone() *Customization {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Toppings = make([]SelectedTopping, len(c.Toppings))
	copy(clone.Toppings, c.Toppings)
	clone.Instructions = make([]string, len(c.Instructions))
	copy(clone.Instructions, c.Instructions)
	return &clone
}

// findTopping returns the index of the entry for toppingID on side, or -1.
func (c *Customization) findTopping(toppingID string, side Portion) int {
	for i, st := range c.Toppings {
		if st.ToppingID == toppingID && st.Side == side {
			return i
		}
	}
	return -1
}

// ToggleTopping advances the topping entry for the given side through the
// selection cycle. A missing entry is added at quantity 1. A base ingredient
// above zero collapses straight to zero ("removed") and stays listed; a
// non-base entry that cycles back to zero is pruned.
func (c *Customization) ToggleTopping(toppingID string, side Portion) {
	idx := c.findTopping(toppingID, side)
	if idx < 0 {
		c.Toppings = append(c.Toppings, SelectedTopping{
			ToppingID: toppingID,
			Side:      side,
			Quantity:  QuantityNormal,
		})
		return
	}

	existing := c.Toppings[idx]
	if existing.IsBaseIngredient && existing.Quantity > 0 {
		c.Toppings[idx].Quantity = QuantityNone
		return
	}

	next := existing.Quantity.Next()
	if next == QuantityNone && !existing.IsBaseIngredient {
		c.Toppings = append(c.Toppings[:idx], c.Toppings[idx+1:]...)
		return
	}
	c.Toppings[idx].Quantity = next
}

// Preset is a one-tap configuration shortcut. Nil/empty action fields are
// skipped.
type Preset struct {
	Name           string
	CheeseQty      *int
	SauceID        string
	RemoveToppings []string
	AddToppings    []string
}

// ApplyPreset applies a quick-config preset to the customization. Removed
// toppings are zeroed in place (not pruned) so the delta stays visible; added
// toppings are placed full-side at quantity 1 unless already present.
func (c *Customization) ApplyPreset(p Preset) {
	if p.CheeseQty != nil {
		c.Cheese.Quantity = *p.CheeseQty
	}
	if p.SauceID != "" {
		c.Sauce.ID = p.SauceID
	}
	for _, id := range p.RemoveToppings {
		for i := range c.Toppings {
			if c.Toppings[i].ToppingID == id {
				c.Toppings[i].Quantity = QuantityNone
			}
		}
	}
	for _, id := range p.AddToppings {
		if c.findTopping(id, PortionFull) >= 0 {
			continue
		}
		c.Toppings = append(c.Toppings, SelectedTopping{
			ToppingID: id,
			Side:      PortionFull,
			Quantity:  QuantityNormal,
		})
	}
}
