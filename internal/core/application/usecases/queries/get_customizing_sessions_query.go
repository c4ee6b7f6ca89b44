package queries

import (
	"errors"

	"pizzapos/internal/core/domain/model/cart"
	"pizzapos/internal/pkg/guard"
)

var ErrGetCustomizingSessionsQueryIsNotConstructed = errors.New(
	"GetCustomizingSessionsQuery must be created via NewGetCustomizingSessionsQuery constructor",
)

// GetCustomizingSessionsQuery retrieves the open customization sessions and
// the one currently shown in the panel, if any.
type GetCustomizingSessionsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCustomizingSessionsQuery creates a session listing query.
func NewGetCustomizingSessionsQuery() GetCustomizingSessionsQuery {
	return GetCustomizingSessionsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCustomizingSessionsQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomizingSessionsQueryIsNotConstructed)
}

// GetCustomizingSessionsQueryResponse carries the open sessions.
type GetCustomizingSessionsQueryResponse struct {
	Sessions      []cart.Session
	ActiveSession *cart.Session
}
