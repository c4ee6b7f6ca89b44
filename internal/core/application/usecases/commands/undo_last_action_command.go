package commands

import (
	"errors"

	"pizzapos/internal/pkg/guard"
)

var ErrUndoLastActionCommandIsNotConstructed = errors.New(
	"UndoLastActionCommand must be created via NewUndoLastActionCommand constructor",
)

// UndoLastActionCommand represents a request to restore the cart snapshot
// taken before the most recent cart mutation. Single level: a second undo
// without an intervening mutation is a no-op.
type UndoLastActionCommand struct {
	guard guard.ConstructorGuard
}

// NewUndoLastActionCommand creates an undo command.
func NewUndoLastActionCommand() UndoLastActionCommand {
	return UndoLastActionCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *UndoLastActionCommand) Validate() error {
	return c.guard.Validate(ErrUndoLastActionCommandIsNotConstructed)
}
