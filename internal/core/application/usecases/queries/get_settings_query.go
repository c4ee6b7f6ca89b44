package queries

import (
	"errors"

	"pizzapos/internal/core/domain/model/terminal"
	"pizzapos/internal/pkg/guard"
)

var ErrGetSettingsQueryIsNotConstructed = errors.New(
	"GetSettingsQuery must be created via NewGetSettingsQuery constructor",
)

// GetSettingsQuery retrieves the terminal settings.
type GetSettingsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSettingsQuery creates a settings query.
func NewGetSettingsQuery() GetSettingsQuery {
	return GetSettingsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSettingsQuery) Validate() error {
	return q.guard.Validate(ErrGetSettingsQueryIsNotConstructed)
}

// GetSettingsQueryResponse is the read model of the terminal settings.
type GetSettingsQueryResponse struct {
	UserRole          terminal.Role
	RushMode          bool
	ShowReadinessView bool
	SearchQuery       string
	SelectedCategory  string
}
