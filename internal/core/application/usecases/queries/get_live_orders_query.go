package queries

import (
	"errors"

	"pizzapos/internal/pkg/guard"
)

var ErrGetLiveOrdersQueryIsNotConstructed = errors.New(
	"GetLiveOrdersQuery must be created via NewGetLiveOrdersQuery constructor",
)

// GetLiveOrdersQuery retrieves the orders still moving through the kitchen.
type GetLiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLiveOrdersQuery creates a live order listing query.
func NewGetLiveOrdersQuery() GetLiveOrdersQuery {
	return GetLiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetLiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetLiveOrdersQueryIsNotConstructed)
}

// GetLiveOrdersQueryResponse carries the in-flight orders.
type GetLiveOrdersQueryResponse struct {
	Orders []OrderResponse
}
