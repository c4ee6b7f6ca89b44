package pizza

import (
	"fmt"

	"pizzapos/internal/pkg/errs"
)

// Quantity is the amount of a topping on a portion. Only the step values of
// the selection cycle are allowed: 0 (removed), 0.5 (light), 1 (normal),
// 2 (extra), 3 (double extra).
type Quantity float64

const (
	QuantityNone   Quantity = 0
	QuantityLight  Quantity = 0.5
	QuantityNormal Quantity = 1
	QuantityExtra  Quantity = 2
	QuantityDouble Quantity = 3
)

// quantityCycle is the order in which repeated taps on a topping advance its
// quantity: 0 -> 0.5 -> 1 -> 2 -> 3 -> 0.
func quantityCycle() []Quantity {
	return []Quantity{QuantityNone, QuantityLight, QuantityNormal, QuantityExtra, QuantityDouble}
}

// Next returns the quantity that follows q in the selection cycle.
// An out-of-cycle value restarts the cycle at light.
func (q Quantity) Next() Quantity {
	cycle := quantityCycle()
	for i, v := range cycle {
		if v == q {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return QuantityLight
}

// Validate checks that the quantity is one of the cycle steps.
func (q Quantity) Validate() error {
	for _, v := range quantityCycle() {
		if v == q {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("quantity",
		fmt.Errorf("%v is not part of the quantity cycle", float64(q)))
}
