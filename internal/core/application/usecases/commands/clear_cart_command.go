package commands

import (
	"errors"

	"pizzapos/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand represents a request to empty the active cart.
type ClearCartCommand struct {
	guard guard.ConstructorGuard
}

// NewClearCartCommand creates a command to clear the active cart.
func NewClearCartCommand() ClearCartCommand {
	return ClearCartCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}
