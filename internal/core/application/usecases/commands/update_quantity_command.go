package commands

import (
	"errors"

	"pizzapos/internal/pkg/guard"
)

var ErrUpdateQuantityCommandIsNotConstructed = errors.New(
	"UpdateQuantityCommand must be created via NewUpdateQuantityCommand constructor",
)

// UpdateQuantityCommand represents a request to change a cart line's
// quantity. A quantity of zero or less removes the line instead.
type UpdateQuantityCommand struct { //nolint:recvcheck //using for validation
	cartID   string
	quantity int

	guard guard.ConstructorGuard
}

// NewUpdateQuantityCommand creates a command to change a line quantity.
// Negative quantities are accepted: they are removal requests by contract.
func NewUpdateQuantityCommand(cartID string, quantity int) (UpdateQuantityCommand, error) {
	command := UpdateQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if cartID == "" {
		return UpdateQuantityCommand{}, ErrCartIDIsRequired
	}
	command.cartID = cartID
	command.quantity = quantity

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateQuantityCommandIsNotConstructed)
}

// CartID returns the id of the line being changed.
func (c UpdateQuantityCommand) CartID() string {
	return c.cartID
}

// Quantity returns the requested quantity.
func (c UpdateQuantityCommand) Quantity() int {
	return c.quantity
}
