package pizza

import (
	"pizzapos/internal/pkg/errs"
)

// Portion is the spatial placement of a topping or sauce on the pizza.
// It determines the portion factor used by the pricing engine.
type Portion string

const (
	PortionFull    Portion = "Full"
	PortionLeft    Portion = "Left"
	PortionRight   Portion = "Right"
	PortionQuarter Portion = "Quarter"
)

// ErrPortionIsInvalid is returned when a portion value is not one of the
// defined placements.
var ErrPortionIsInvalid = errs.NewValueIsInvalidError("portion")

// Factor returns the price factor for the portion: Full=1, Left/Right=0.5,
// Quarter=0.25.
func (p Portion) Factor() float64 {
	switch p {
	case PortionFull:
		return 1
	case PortionQuarter:
		return 0.25
	case PortionLeft, PortionRight:
		return 0.5
	default:
		return 1
	}
}

// Validate checks the portion against the defined placements.
func (p Portion) Validate() error {
	switch p {
	case PortionFull, PortionLeft, PortionRight, PortionQuarter:
		return nil
	default:
		return ErrPortionIsInvalid
	}
}
