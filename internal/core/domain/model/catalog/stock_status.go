package catalog

import (
	"fmt"

	"pizzapos/internal/pkg/errs"
)

// StockStatus is the availability of a product or topping as shown on the
// terminal. Product status is derived from the numeric stock count; topping
// status is set directly by kitchen staff.
type StockStatus string

const (
	StockAvailable StockStatus = "available"
	StockLow       StockStatus = "low"
	StockOut       StockStatus = "out"
)

// lowStockThreshold is the stock count below which a product reads "low".
const lowStockThreshold = 10

// DeriveStockStatus maps a stock count to its status: out at zero, low below
// the threshold, available otherwise.
func DeriveStockStatus(stock int) StockStatus {
	switch {
	case stock == 0:
		return StockOut
	case stock < lowStockThreshold:
		return StockLow
	default:
		return StockAvailable
	}
}

// Validate checks the status against the defined values.
func (s StockStatus) Validate() error {
	switch s {
	case StockAvailable, StockLow, StockOut:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("stockStatus",
			fmt.Errorf("%q is not a valid stock status", string(s)))
	}
}

// Next cycles the status the way the readiness view does on tap:
// available -> low -> out -> available.
func (s StockStatus) Next() StockStatus {
	switch s {
	case StockAvailable:
		return StockLow
	case StockLow:
		return StockOut
	default:
		return StockAvailable
	}
}
