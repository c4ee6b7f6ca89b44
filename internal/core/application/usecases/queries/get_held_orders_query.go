package queries

import (
	"errors"

	"pizzapos/internal/core/domain/model/cart"
	"pizzapos/internal/pkg/guard"
)

var ErrGetHeldOrdersQueryIsNotConstructed = errors.New(
	"GetHeldOrdersQuery must be created via NewGetHeldOrdersQuery constructor",
)

// GetHeldOrdersQuery retrieves the parked orders waiting to be resumed.
type GetHeldOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetHeldOrdersQuery creates a held order listing query.
func NewGetHeldOrdersQuery() GetHeldOrdersQuery {
	return GetHeldOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetHeldOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetHeldOrdersQueryIsNotConstructed)
}

// GetHeldOrdersQueryResponse carries the parked orders.
type GetHeldOrdersQueryResponse struct {
	HeldOrders []cart.HeldOrder
}
