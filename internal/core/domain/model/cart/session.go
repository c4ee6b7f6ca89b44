package cart

import "pizzapos/internal/core/domain/model/pizza"

// Session is an in-progress customization panel. A new-item session carries a
// fresh temp ID; an edit session reuses the cart ID of the line being edited,
// so confirming the panel knows which line to replace. Seed is the
// customization the panel opens with (nil means panel defaults).
type Session struct {
	TempID    string
	ProductID string
	Seed      *pizza.Customization
	Editing   bool
}
