package catalog

import (
	"errors"

	"pizzapos/internal/pkg/guard"
)

// ErrCatalogIsNotConstructed is returned when using an improperly initialized Catalog.
var ErrCatalogIsNotConstructed = errors.New("Catalog must be created via NewCatalog constructor")

// Catalog is the aggregate root for the reference data of the terminal:
// products, toppings, the pizza option matrix, and order templates. Reference
// data is seeded once at startup; the only mutable parts are product stock
// counts and topping statuses.
//
// Inventory mutations on unknown ids are silent no-ops: the terminal treats a
// stale id from the UI as harmless rather than as a fault.
type Catalog struct {
	products  []*Product
	toppings  []*Topping
	options   PizzaOptions
	templates []Template

	guard guard.ConstructorGuard
}

// NewCatalog assembles a catalog from already-validated reference data.
func NewCatalog(
	products []*Product,
	toppings []*Topping,
	options PizzaOptions,
	templates []Template,
) (*Catalog, error) {
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	for _, t := range toppings {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}

	return &Catalog{
		products:  products,
		toppings:  toppings,
		options:   options,
		templates: templates,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Catalog was created via NewCatalog.
func (c *Catalog) Validate() error {
	if c == nil {
		return ErrCatalogIsNotConstructed
	}
	return c.guard.Validate(ErrCatalogIsNotConstructed)
}

// Products returns all products in menu order.
func (c *Catalog) Products() []*Product {
	return c.products
}

// Toppings returns all toppings in panel order.
func (c *Catalog) Toppings() []*Topping {
	return c.toppings
}

// Options returns the pizza option matrix.
func (c *Catalog) Options() PizzaOptions {
	return c.options
}

// Templates returns the predefined order templates.
func (c *Catalog) Templates() []Template {
	return c.templates
}

// ProductByID returns the product with the given id, or false.
func (c *Catalog) ProductByID(id string) (*Product, bool) {
	for _, p := range c.products {
		if p.id == id {
			return p, true
		}
	}
	return nil, false
}

// ToppingByID returns the topping with the given id, or false.
func (c *Catalog) ToppingByID(id string) (*Topping, bool) {
	for _, t := range c.toppings {
		if t.id == id {
			return t, true
		}
	}
	return nil, false
}

// TemplateByID returns the template with the given id, or false.
func (c *Catalog) TemplateByID(id string) (Template, bool) {
	for _, t := range c.templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// UpdateStock sets a product's stock to an explicit non-negative count,
// recomputing its derived status. Unknown ids are silently ignored.
func (c *Catalog) UpdateStock(productID string, stock int) error {
	p, ok := c.ProductByID(productID)
	if !ok {
		return nil
	}
	return p.SetStock(stock)
}

// UpdateToppingStatus sets a topping's availability directly. Unknown ids are
// silently ignored.
func (c *Catalog) UpdateToppingStatus(toppingID string, status StockStatus) error {
	t, ok := c.ToppingByID(toppingID)
	if !ok {
		return nil
	}
	return t.SetStatus(status)
}
