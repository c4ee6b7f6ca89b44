package commands

import (
	"errors"

	"pizzapos/internal/pkg/guard"
)

var ErrAddTabCommandIsNotConstructed = errors.New(
	"AddTabCommand must be created via NewAddTabCommand constructor",
)

// AddTabCommand represents a request to open a fresh order tab and make it
// active.
type AddTabCommand struct {
	guard guard.ConstructorGuard
}

// NewAddTabCommand creates a command to open a new tab.
func NewAddTabCommand() AddTabCommand {
	return AddTabCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *AddTabCommand) Validate() error {
	return c.guard.Validate(ErrAddTabCommandIsNotConstructed)
}
