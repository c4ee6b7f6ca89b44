package order

import (
	"errors"
	"time"

	"pizzapos/internal/core/domain/model/cart"
	"pizzapos/internal/core/domain/model/kernel"
	"pizzapos/internal/pkg/errs"
	"pizzapos/internal/pkg/guard"
)

const (
	// initialRemainingMinutes is the estimate every fresh order starts with.
	initialRemainingMinutes = 12.0

	// remainingDecayPerTick is subtracted from the estimate on every
	// simulator tick, floored at zero.
	remainingDecayPerTick = 0.1

	// advanceThreshold is the uniform draw a station must beat to complete
	// on a tick (~30% chance).
	advanceThreshold = 0.7

	// packingThreshold is the stricter draw for the final station (~20%).
	packingThreshold = 0.8

	// archiveThreshold gates moving an all-ready order into the archive
	// (~5% per tick), modelling a pickup delay.
	archiveThreshold = 0.95
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	ErrItemsAreRequired      = errs.NewValueIsRequiredError("items")
)

// RandomSource yields uniform draws in [0, 1). The simulator injects it so
// station advancement is deterministic under test. *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Item is one order line: the cart line frozen at checkout plus its
// kitchen status.
type Item struct {
	cart.Item
	Status ItemStatus
}

// Totals are the money figures captured at checkout. They are immutable for
// the life of the order.
type Totals struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

// Order is a checked-out order moving through the kitchen. It starts live
// with every item Queued and the dough station in progress, is advanced only
// by the kitchen simulator, and is archived once every item is Ready.
type Order struct {
	id               kernel.UUID
	token            string
	orderType        OrderType
	paymentMethod    PaymentMethod
	items            []Item
	totals           Totals
	placedAt         time.Time
	remainingMinutes float64
	stations         map[Station]StationStatus
	delayReason      string

	guard guard.ConstructorGuard
}

// NewOrder freezes the given cart lines into a live order. The first station
// starts in progress, the rest pending, and every item starts Queued.
func NewOrder(
	id kernel.UUID,
	token string,
	orderType OrderType,
	paymentMethod PaymentMethod,
	lines []cart.Item,
	totals Totals,
	placedAt time.Time,
) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrItemsAreRequired
	}
	if err := errors.Join(
		id.Validate(),
		orderType.Validate(),
		paymentMethod.Validate(),
	); err != nil {
		return nil, err
	}
	if token == "" {
		return nil, errs.NewValueIsRequiredError("token")
	}

	items := make([]Item, len(lines))
	for i, line := range lines {
		items[i] = Item{Item: line.Clone(), Status: ItemQueued}
	}

	stations := make(map[Station]StationStatus, len(StationSequence()))
	for _, station := range StationSequence() {
		stations[station] = StationPending
	}
	stations[StationDough] = StationInProgress

	return &Order{
		id:               id,
		token:            token,
		orderType:        orderType,
		paymentMethod:    paymentMethod,
		items:            items,
		totals:           totals,
		placedAt:         placedAt,
		remainingMinutes: initialRemainingMinutes,
		stations:         stations,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Token() string {
	return o.token
}

func (o *Order) OrderType() OrderType {
	return o.orderType
}

func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	for i, item := range o.items {
		items[i] = Item{Item: item.Item.Clone(), Status: item.Status}
	}
	return items
}

func (o *Order) Totals() Totals {
	return o.totals
}

func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

func (o *Order) RemainingMinutes() float64 {
	return o.remainingMinutes
}

// StationProgress returns a copy of the per-station state.
func (o *Order) StationProgress() map[Station]StationStatus {
	progress := make(map[Station]StationStatus, len(o.stations))
	for station, status := range o.stations {
		progress[station] = status
	}
	return progress
}

func (o *Order) DelayReason() string {
	return o.delayReason
}

func (o *Order) SetDelayReason(reason string) {
	o.delayReason = reason
}

// IsReady reports whether every item has finished the kitchen.
func (o *Order) IsReady() bool {
	for _, item := range o.items {
		if item.Status != ItemReady {
			return false
		}
	}
	return true
}

// Tick advances the order by one simulator period. The time estimate always
// decays; the active station completes only when the draw beats its
// threshold, at which point the next station starts and every item adopts
// the mapped status. Returns true when a station transitioned.
func (o *Order) Tick(random RandomSource) bool {
	if o.remainingMinutes > 0 {
		o.remainingMinutes -= remainingDecayPerTick
		if o.remainingMinutes < 0 {
			o.remainingMinutes = 0
		}
	}

	sequence := StationSequence()
	active := -1
	for i, station := range sequence {
		if o.stations[station] == StationInProgress {
			active = i
			break
		}
	}
	if active < 0 {
		return false
	}

	threshold := advanceThreshold
	if sequence[active] == StationPacking {
		threshold = packingThreshold
	}
	if random.Float64() <= threshold {
		return false
	}

	o.stations[sequence[active]] = StationCompleted
	if active+1 < len(sequence) {
		next := sequence[active+1]
		o.stations[next] = StationInProgress
		o.setItemStatuses(itemStatusFor(next, false))
		return true
	}
	o.setItemStatuses(itemStatusFor("", true))
	return true
}

// ShouldArchive rolls the per-tick pickup chance for an all-ready order.
func (o *Order) ShouldArchive(random RandomSource) bool {
	return o.IsReady() && random.Float64() > archiveThreshold
}

func (o *Order) setItemStatuses(status ItemStatus) {
	for i := range o.items {
		o.items[i].Status = status
	}
}
