package commands

import (
	"errors"

	"pizzapos/internal/pkg/guard"
)

var ErrDuplicateItemCommandIsNotConstructed = errors.New(
	"DuplicateItemCommand must be created via NewDuplicateItemCommand constructor",
)

// DuplicateItemCommand represents a request to clone a cart line under a
// fresh cart id with quantity reset to one.
type DuplicateItemCommand struct { //nolint:recvcheck //using for validation
	cartID string

	guard guard.ConstructorGuard
}

// NewDuplicateItemCommand creates a command to duplicate a cart line.
func NewDuplicateItemCommand(cartID string) (DuplicateItemCommand, error) {
	command := DuplicateItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if cartID == "" {
		return DuplicateItemCommand{}, ErrCartIDIsRequired
	}
	command.cartID = cartID

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DuplicateItemCommand) Validate() error {
	return c.guard.Validate(ErrDuplicateItemCommandIsNotConstructed)
}

// CartID returns the id of the line being duplicated.
func (c DuplicateItemCommand) CartID() string {
	return c.cartID
}
