package cart

import "time"

// HeldOrder is a parked cart snapshot. The reason doubles as the display
// label when the order is resumed into a fresh tab.
type HeldOrder struct {
	ID     string
	Reason string
	Items  []Item
	HeldAt time.Time
}
