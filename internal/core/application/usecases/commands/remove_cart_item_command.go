package commands

import (
	"errors"

	"pizzapos/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand represents a request to delete a line from the
// active cart.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	cartID string

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand creates a command to remove a cart line.
func NewRemoveCartItemCommand(cartID string) (RemoveCartItemCommand, error) {
	command := RemoveCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if cartID == "" {
		return RemoveCartItemCommand{}, ErrCartIDIsRequired
	}
	command.cartID = cartID

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// CartID returns the id of the line being removed.
func (c RemoveCartItemCommand) CartID() string {
	return c.cartID
}
