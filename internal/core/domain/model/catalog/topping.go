package catalog

import (
	"errors"
	"fmt"

	"pizzapos/internal/pkg/errs"
	"pizzapos/internal/pkg/guard"
)

// ToppingCategory groups toppings on the customization panel.
type ToppingCategory string

const (
	ToppingVeg    ToppingCategory = "veg"
	ToppingNonVeg ToppingCategory = "non-veg"
	ToppingCheese ToppingCategory = "cheese"
	ToppingSauce  ToppingCategory = "sauce"
)

// Validate checks the category against the defined values.
func (c ToppingCategory) Validate() error {
	switch c {
	case ToppingVeg, ToppingNonVeg, ToppingCheese, ToppingSauce:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("toppingCategory",
			fmt.Errorf("%q is not a valid topping category", string(c)))
	}
}

// ErrToppingIsNotConstructed is returned when using an improperly initialized Topping.
var ErrToppingIsNotConstructed = errors.New("Topping must be created via NewTopping constructor")

// Topping is an ingredient that can be added to customizable products.
// Unlike products, its availability is not derived from a count: kitchen staff
// set the status directly from the readiness view.
type Topping struct {
	id       string
	name     string
	price    float64
	category ToppingCategory
	tier     string
	status   StockStatus

	guard guard.ConstructorGuard
}

// NewTopping creates a Topping with an initial status of available.
func NewTopping(id, name string, price float64, category ToppingCategory, tier string) (*Topping, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("topping id")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("topping name")
	}
	if price < 0 {
		return nil, errs.NewValueIsInvalidError("topping price")
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}

	return &Topping{
		id:       id,
		name:     name,
		price:    price,
		category: category,
		tier:     tier,
		status:   StockAvailable,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Topping was created via NewTopping.
func (t *Topping) Validate() error {
	if t == nil {
		return ErrToppingIsNotConstructed
	}
	return t.guard.Validate(ErrToppingIsNotConstructed)
}

// ID returns the topping id.
func (t *Topping) ID() string { return t.id }

// Name returns the display name.
func (t *Topping) Name() string { return t.name }

// Price returns the per-unit price at full portion.
func (t *Topping) Price() float64 { return t.price }

// Category returns the panel grouping.
func (t *Topping) Category() ToppingCategory { return t.category }

// Tier returns the optional pricing tier label.
func (t *Topping) Tier() string { return t.tier }

// Status returns the staff-set availability.
func (t *Topping) Status() StockStatus { return t.status }

// SetStatus sets the availability directly.
func (t *Topping) SetStatus(status StockStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	t.status = status
	return nil
}
