package terminal

import (
	"fmt"

	"pizzapos/internal/pkg/errs"
)

// Role is the cashier role signed in on the terminal. Senior cashiers see a
// loyalty discount applied to the displayed total on large orders.
type Role string

const (
	RoleJunior Role = "junior"
	RoleSenior Role = "senior"
)

func (r Role) Validate() error {
	switch r {
	case RoleJunior, RoleSenior:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("unknown role: %s", r))
}

// Settings groups the per-terminal UI state: active role, rush mode, the
// readiness board toggle and the current catalog filters.
type Settings struct {
	UserRole          Role
	RushMode          bool
	ShowReadinessView bool
	SearchQuery       string
	SelectedCategory  string
}

func defaultSettings() Settings {
	return Settings{
		UserRole:         RoleJunior,
		SelectedCategory: "all",
	}
}
