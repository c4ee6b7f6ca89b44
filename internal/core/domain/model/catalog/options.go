package catalog

import "pizzapos/internal/core/domain/model/pizza"

// Size is a pizza size with its price multiplier applied to the base price.
type Size struct {
	ID              string
	Name            string
	PriceMultiplier float64
}

// Crust is a crust choice with its additive extra price.
type Crust struct {
	ID         string
	Name       string
	ExtraPrice float64
}

// Sauce is a sauce choice with its additive extra price.
type Sauce struct {
	ID         string
	Name       string
	ExtraPrice float64
}

// Cheese is a cheese choice with its additive extra price.
type Cheese struct {
	ID         string
	Name       string
	ExtraPrice float64
}

// CookingPreferences lists the kitchen-override choices offered to senior
// operators.
type CookingPreferences struct {
	BakeLevels []string
	CutStyles  []string
}

// PizzaOptions is the full option matrix for customizable products. The first
// crust/sauce/cheese and the second size (medium) are the defaults a fresh
// customization starts from.
type PizzaOptions struct {
	Sizes               []Size
	Crusts              []Crust
	Sauces              []Sauce
	Cheeses             []Cheese
	Cooking             CookingPreferences
	SpecialInstructions []string
	Presets             []pizza.Preset
}

// Defaults returns the option ids a default customization is seeded from.
func (o PizzaOptions) Defaults() pizza.Defaults {
	d := pizza.Defaults{}
	if len(o.Sizes) > 1 {
		d.SizeID = o.Sizes[1].ID
	} else if len(o.Sizes) == 1 {
		d.SizeID = o.Sizes[0].ID
	}
	if len(o.Crusts) > 0 {
		d.CrustID = o.Crusts[0].ID
	}
	if len(o.Sauces) > 0 {
		d.SauceID = o.Sauces[0].ID
	}
	if len(o.Cheeses) > 0 {
		d.CheeseID = o.Cheeses[0].ID
	}
	return d
}

// SizeByID returns the size with the given id, or false.
func (o PizzaOptions) SizeByID(id string) (Size, bool) {
	for _, s := range o.Sizes {
		if s.ID == id {
			return s, true
		}
	}
	return Size{}, false
}

// CrustByID returns the crust with the given id, or false.
func (o PizzaOptions) CrustByID(id string) (Crust, bool) {
	for _, c := range o.Crusts {
		if c.ID == id {
			return c, true
		}
	}
	return Crust{}, false
}

// SauceByID returns the sauce with the given id, or false.
func (o PizzaOptions) SauceByID(id string) (Sauce, bool) {
	for _, s := range o.Sauces {
		if s.ID == id {
			return s, true
		}
	}
	return Sauce{}, false
}

// CheeseByID returns the cheese with the given id, or false.
func (o PizzaOptions) CheeseByID(id string) (Cheese, bool) {
	for _, c := range o.Cheeses {
		if c.ID == id {
			return c, true
		}
	}
	return Cheese{}, false
}
