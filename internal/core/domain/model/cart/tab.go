package cart

import "pizzapos/internal/core/domain/model/kernel"

// Tab is an independent cart. Several tabs can be open at once so a cashier
// can serve interleaved customers.
type Tab struct {
	id    string
	name  string
	items []Item
}

func NewTab(name string) *Tab {
	return &Tab{
		id:   kernel.NewUUID().String(),
		name: name,
	}
}

func (t *Tab) ID() string {
	return t.id
}

func (t *Tab) Name() string {
	return t.name
}

// Items returns a deep copy of the tab's lines.
func (t *Tab) Items() []Item {
	return CloneItems(t.items)
}

func (t *Tab) ItemCount() int {
	return len(t.items)
}

func (t *Tab) IsEmpty() bool {
	return len(t.items) == 0
}

func (t *Tab) Append(item Item) {
	t.items = append(t.items, item)
}

// Item looks up a line by its cart ID.
func (t *Tab) Item(cartID string) (Item, bool) {
	for _, item := range t.items {
		if item.CartID == cartID {
			return item.Clone(), true
		}
	}
	return Item{}, false
}

// Replace swaps the line with the same cart ID for the given one.
// Unknown IDs are ignored.
func (t *Tab) Replace(item Item) {
	for i := range t.items {
		if t.items[i].CartID == item.CartID {
			t.items[i] = item
			return
		}
	}
}

// Remove deletes the line with the given cart ID and reports whether a line
// was removed.
func (t *Tab) Remove(cartID string) bool {
	for i := range t.items {
		if t.items[i].CartID == cartID {
			t.items = append(t.items[:i], t.items[i+1:]...)
			return true
		}
	}
	return false
}

func (t *Tab) Clear() {
	t.items = nil
}

// Restore replaces the tab's lines wholesale, deep-copying the input.
func (t *Tab) Restore(items []Item) {
	t.items = CloneItems(items)
}
