package catalog

import (
	"errors"

	"pizzapos/internal/pkg/errs"
	"pizzapos/internal/pkg/guard"
)

// Domain errors for product operations.
var (
	// ErrProductIDIsRequired is returned when creating a product without an id.
	ErrProductIDIsRequired = errs.NewValueIsRequiredError("product id")
	// ErrProductNameIsRequired is returned when creating a product without a name.
	ErrProductNameIsRequired = errs.NewValueIsRequiredError("product name")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product is a sellable menu entry. Its stock status is a derived value that
// is recomputed whenever the stock count changes, never set directly.
//
// Business rules:
//   - id and name are required, base price must not be negative
//   - stock is a non-negative count; status derives from it (out at zero, low under ten)
//   - customizable products list the topping ids of their default recipe
type Product struct {
	id              string
	name            string
	category        string
	price           float64
	image           string
	description     string
	stock           int
	stockStatus     StockStatus
	prepTimeMin     int
	customizable    bool
	baseIngredients []string

	guard guard.ConstructorGuard
}

// ProductSpec carries the construction parameters for a Product.
type ProductSpec struct {
	ID              string
	Name            string
	Category        string
	Price           float64
	Image           string
	Description     string
	Stock           int
	PrepTimeMin     int
	Customizable    bool
	BaseIngredients []string
}

// NewProduct creates a Product from its spec, deriving the initial stock
// status from the stock count.
func NewProduct(spec ProductSpec) (*Product, error) {
	if spec.ID == "" {
		return nil, ErrProductIDIsRequired
	}
	if spec.Name == "" {
		return nil, ErrProductNameIsRequired
	}
	if spec.Price < 0 {
		return nil, errs.NewValueIsInvalidError("product price")
	}
	if spec.Stock < 0 {
		return nil, errs.NewValueIsOutOfRangeError("stock", spec.Stock, 0, maxStock)
	}

	return &Product{
		id:              spec.ID,
		name:            spec.Name,
		category:        spec.Category,
		price:           spec.Price,
		image:           spec.Image,
		description:     spec.Description,
		stock:           spec.Stock,
		stockStatus:     DeriveStockStatus(spec.Stock),
		prepTimeMin:     spec.PrepTimeMin,
		customizable:    spec.Customizable,
		baseIngredients: spec.BaseIngredients,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// maxStock bounds inventory edits to a sane count.
const maxStock = 9999

// Validate ensures the Product was created via NewProduct.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product id.
func (p *Product) ID() string { return p.id }

// Name returns the display name.
func (p *Product) Name() string { return p.name }

// Category returns the menu category.
func (p *Product) Category() string { return p.category }

// Price returns the base price before customization.
func (p *Product) Price() float64 { return p.price }

// Image returns the product image URL.
func (p *Product) Image() string { return p.image }

// Description returns the menu description.
func (p *Product) Description() string { return p.description }

// Stock returns the current stock count.
func (p *Product) Stock() int { return p.stock }

// StockStatus returns the status derived from the current stock count.
func (p *Product) StockStatus() StockStatus { return p.stockStatus }

// PrepTimeMin returns the base preparation time in minutes.
func (p *Product) PrepTimeMin() int { return p.prepTimeMin }

// Customizable reports whether the product opens the customization flow.
func (p *Product) Customizable() bool { return p.customizable }

// BaseIngredients returns the topping ids of the default recipe.
func (p *Product) BaseIngredients() []string { return p.baseIngredients }

// SetStock sets the stock to an explicit non-negative count and recomputes the
// derived status. This is the single mutation point for product inventory.
func (p *Product) SetStock(stock int) error {
	if stock < 0 || stock > maxStock {
		return errs.NewValueIsOutOfRangeError("stock", stock, 0, maxStock)
	}
	p.stock = stock
	p.stockStatus = DeriveStockStatus(stock)
	return nil
}

// DecrementStock reduces stock by quantity, clamping at zero, and recomputes
// the derived status. Used by the checkout stock policy.
func (p *Product) DecrementStock(quantity int) {
	p.stock -= quantity
	if p.stock < 0 {
		p.stock = 0
	}
	p.stockStatus = DeriveStockStatus(p.stock)
}
