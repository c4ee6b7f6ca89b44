package queries

import (
	"errors"

	"pizzapos/internal/core/domain/model/catalog"
	"pizzapos/internal/pkg/guard"
)

var ErrGetToppingsQueryIsNotConstructed = errors.New(
	"GetToppingsQuery must be created via NewGetToppingsQuery constructor",
)

// GetToppingsQuery retrieves every topping with its availability, plus the
// pizza option sets the customization panel renders.
type GetToppingsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetToppingsQuery creates a topping listing query.
func NewGetToppingsQuery() GetToppingsQuery {
	return GetToppingsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetToppingsQuery) Validate() error {
	return q.guard.Validate(ErrGetToppingsQueryIsNotConstructed)
}

// ToppingResponse is the read model for one topping.
type ToppingResponse struct {
	ID       string
	Name     string
	Price    float64
	Category catalog.ToppingCategory
	Tier     string
	Status   catalog.StockStatus
}

// GetToppingsQueryResponse carries the toppings and option sets.
type GetToppingsQueryResponse struct {
	Toppings []ToppingResponse
	Options  catalog.PizzaOptions
}
