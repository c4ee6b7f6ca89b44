package queries

import (
	"errors"

	"pizzapos/internal/pkg/guard"
)

var ErrGetOrdersArchiveQueryIsNotConstructed = errors.New(
	"GetOrdersArchiveQuery must be created via NewGetOrdersArchiveQuery constructor",
)

// GetOrdersArchiveQuery retrieves completed orders, newest first.
type GetOrdersArchiveQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersArchiveQuery creates an archive listing query.
func NewGetOrdersArchiveQuery() GetOrdersArchiveQuery {
	return GetOrdersArchiveQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersArchiveQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersArchiveQueryIsNotConstructed)
}

// GetOrdersArchiveQueryResponse carries the completed orders, newest first.
type GetOrdersArchiveQueryResponse struct {
	Orders []OrderResponse
}
