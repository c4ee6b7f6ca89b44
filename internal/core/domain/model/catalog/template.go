package catalog

import "pizzapos/internal/core/domain/model/pizza"

// TemplateEntry is one line of an order template. A nil customization means
// the product's default customization is synthesized at apply time.
type TemplateEntry struct {
	ProductID     string
	Customization *pizza.Customization
}

// Template is a predefined set of order lines that can be applied to the cart
// in one batch (combo deals, repeat regulars).
type Template struct {
	ID      string
	Name    string
	Entries []TemplateEntry
}
