package commands

import (
	"errors"

	"pizzapos/internal/pkg/guard"
)

var ErrStartEditingCommandIsNotConstructed = errors.New(
	"StartEditingCommand must be created via NewStartEditingCommand constructor",
)

// StartEditingCommand represents a request to open a panel session seeded
// from an existing cart line, keyed by that line's cart id.
type StartEditingCommand struct { //nolint:recvcheck //using for validation
	cartID string

	guard guard.ConstructorGuard
}

// NewStartEditingCommand creates a command to edit a cart line.
func NewStartEditingCommand(cartID string) (StartEditingCommand, error) {
	command := StartEditingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if cartID == "" {
		return StartEditingCommand{}, ErrCartIDIsRequired
	}
	command.cartID = cartID

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartEditingCommand) Validate() error {
	return c.guard.Validate(ErrStartEditingCommandIsNotConstructed)
}

// CartID returns the id of the line being edited.
func (c StartEditingCommand) CartID() string {
	return c.cartID
}
