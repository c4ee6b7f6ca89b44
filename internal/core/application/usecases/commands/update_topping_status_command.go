package commands

import (
	"errors"

	"pizzapos/internal/core/domain/model/catalog"
	"pizzapos/internal/pkg/guard"
)

var (
	ErrUpdateToppingStatusCommandIsNotConstructed = errors.New(
		"UpdateToppingStatusCommand must be created via NewUpdateToppingStatusCommand constructor",
	)
	ErrToppingIDIsRequired = errors.New("toppingId is required")
)

// UpdateToppingStatusCommand represents a kitchen-staff edit of a topping's
// availability. Topping status is set directly, not derived from a count.
type UpdateToppingStatusCommand struct { //nolint:recvcheck //using for validation
	toppingID string
	status    catalog.StockStatus

	guard guard.ConstructorGuard
}

// NewUpdateToppingStatusCommand creates a command to set a topping status.
func NewUpdateToppingStatusCommand(
	toppingID string,
	status catalog.StockStatus,
) (UpdateToppingStatusCommand, error) {
	command := UpdateToppingStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if toppingID == "" {
		return UpdateToppingStatusCommand{}, ErrToppingIDIsRequired
	}
	if err := status.Validate(); err != nil {
		return UpdateToppingStatusCommand{}, err
	}
	command.toppingID = toppingID
	command.status = status

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateToppingStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateToppingStatusCommandIsNotConstructed)
}

// ToppingID returns the topping being edited.
func (c UpdateToppingStatusCommand) ToppingID() string {
	return c.toppingID
}

// Status returns the new availability status.
func (c UpdateToppingStatusCommand) Status() catalog.StockStatus {
	return c.status
}
