package queries

import (
	"errors"

	"pizzapos/internal/core/domain/model/cart"
	"pizzapos/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves the active tab's items together with the priced
// totals. DisplayTotal carries the senior-cashier courtesy discount when it
// applies; the other totals never do.
type GetCartQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a cart read query.
func NewGetCartQuery() GetCartQuery {
	return GetCartQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// GetCartQueryResponse is the read model for the active cart.
type GetCartQueryResponse struct {
	Items        []cart.Item
	Subtotal     float64
	Tax          float64
	Total        float64
	DisplayTotal float64
	CanUndo      bool
}
