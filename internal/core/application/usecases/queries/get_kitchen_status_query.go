package queries

import (
	"errors"

	"pizzapos/internal/core/domain/model/order"
	"pizzapos/internal/pkg/guard"
)

var ErrGetKitchenStatusQueryIsNotConstructed = errors.New(
	"GetKitchenStatusQuery must be created via NewGetKitchenStatusQuery constructor",
)

// GetKitchenStatusQuery retrieves the readiness view figures. Load and
// confidence numbers are fixed placeholder values until real station
// telemetry exists; the order count and average wait come from the live
// order list.
type GetKitchenStatusQuery struct {
	guard guard.ConstructorGuard
}

// NewGetKitchenStatusQuery creates a kitchen status query.
func NewGetKitchenStatusQuery() GetKitchenStatusQuery {
	return GetKitchenStatusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetKitchenStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenStatusQueryIsNotConstructed)
}

// ConfidenceFlags marks which readiness figures the kitchen stands behind.
type ConfidenceFlags struct {
	KitchenLoad bool
	WaitTime    bool
	Stations    bool
}

// GetKitchenStatusQueryResponse carries the readiness view figures.
type GetKitchenStatusQueryResponse struct {
	KitchenLoad       float64
	StationLoads      map[order.Station]float64
	ActiveOrdersCount int
	AverageWaitMin    int
	Confidence        ConfidenceFlags
}
