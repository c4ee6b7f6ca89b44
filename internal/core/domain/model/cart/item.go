package cart

import "pizzapos/internal/core/domain/model/pizza"

// Item is one cart line. CartID is unique per line and distinct from
// ProductID, so the same product can appear in several differently customized
// lines. Price is the final per-unit price after customization: a cached
// derived value that the owning terminal recomputes on every customization
// change. BasePrice freezes the product price at the time the line was added.
type Item struct {
	CartID        string
	ProductID     string
	Name          string
	Price         float64
	BasePrice     float64
	Quantity      int
	Customization *pizza.Customization
	Category      string
	Image         string
}

// Clone returns a deep copy of the item, customization included.
func (i Item) Clone() Item {
	clone := i
	clone.Customization = i.Customization.Clone()
	return clone
}

// CloneItems deep-copies a slice of items.
func CloneItems(items []Item) []Item {
	cloned := make([]Item, len(items))
	for i, item := range items {
		cloned[i] = item.Clone()
	}
	return cloned
}
