package order

import (
	"fmt"

	"pizzapos/internal/pkg/errs"
)

// Station is one production stage in the kitchen. Every live order moves
// through the stations strictly in sequence.
type Station string

const (
	StationDough    Station = "dough"
	StationToppings Station = "toppings"
	StationOven     Station = "oven"
	StationPacking  Station = "packing"
)

// StationSequence returns the fixed production order of the stations.
func StationSequence() []Station {
	return []Station{StationDough, StationToppings, StationOven, StationPacking}
}

// StationStatus is the progress of a single station for one order.
type StationStatus string

const (
	StationPending    StationStatus = "pending"
	StationInProgress StationStatus = "in-progress"
	StationCompleted  StationStatus = "completed"
)

// ItemStatus is the kitchen-facing status of an order line. Items have no
// independent progress: every line of an order carries the same status,
// mapped 1:1 from the order's station state.
type ItemStatus string

const (
	ItemQueued    ItemStatus = "Queued"
	ItemPreparing ItemStatus = "Preparing"
	ItemBaking    ItemStatus = "Baking"
	ItemPacking   ItemStatus = "Packing"
	ItemReady     ItemStatus = "Ready"
)

// itemStatusFor maps the station that just became active (or, for packing,
// just completed) to the status every item of the order adopts.
func itemStatusFor(active Station, packingDone bool) ItemStatus {
	if packingDone {
		return ItemReady
	}
	switch active {
	case StationDough:
		return ItemQueued
	case StationToppings:
		return ItemPreparing
	case StationOven:
		return ItemBaking
	case StationPacking:
		return ItemPacking
	}
	return ItemQueued
}

// OrderType is how the customer receives the order.
type OrderType string

const (
	TypeDineIn   OrderType = "dine-in"
	TypeTakeaway OrderType = "takeaway"
	TypeDelivery OrderType = "delivery"
)

// OrderTypes returns every valid order type, in the order used for random
// assignment at checkout.
func OrderTypes() []OrderType {
	return []OrderType{TypeDineIn, TypeTakeaway, TypeDelivery}
}

func (t OrderType) Validate() error {
	switch t {
	case TypeDineIn, TypeTakeaway, TypeDelivery:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("orderType", fmt.Errorf("unknown order type: %s", t))
}

// PaymentMethod names how the transaction was settled.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
	PaymentUPI  PaymentMethod = "upi"
)

func (p PaymentMethod) Validate() error {
	switch p {
	case PaymentCash, PaymentCard, PaymentUPI:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("unknown payment method: %s", p))
}
