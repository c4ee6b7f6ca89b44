package queries

import (
	"errors"

	"pizzapos/internal/pkg/guard"
)

var ErrGetTabsQueryIsNotConstructed = errors.New(
	"GetTabsQuery must be created via NewGetTabsQuery constructor",
)

// GetTabsQuery retrieves the open order tabs and the active tab index.
type GetTabsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTabsQuery creates a tab listing query.
func NewGetTabsQuery() GetTabsQuery {
	return GetTabsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetTabsQuery) Validate() error {
	return q.guard.Validate(ErrGetTabsQueryIsNotConstructed)
}

// TabResponse is the read model for one open tab.
type TabResponse struct {
	ID        string
	Name      string
	ItemCount int
}

// GetTabsQueryResponse carries the open tabs and which one is active.
type GetTabsQueryResponse struct {
	Tabs        []TabResponse
	ActiveIndex int
}
