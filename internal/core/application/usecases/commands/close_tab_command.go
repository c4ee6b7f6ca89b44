package commands

import (
	"errors"

	"pizzapos/internal/pkg/guard"
)

var (
	ErrCloseTabCommandIsNotConstructed = errors.New(
		"CloseTabCommand must be created via NewCloseTabCommand constructor",
	)
	ErrTabIndexIsInvalid = errors.New("tab index must not be negative")
)

// CloseTabCommand represents a request to close the tab at an index. The
// terminal always keeps at least one tab open.
type CloseTabCommand struct { //nolint:recvcheck //using for validation
	index int

	guard guard.ConstructorGuard
}

// NewCloseTabCommand creates a command to close a tab.
func NewCloseTabCommand(index int) (CloseTabCommand, error) {
	command := CloseTabCommand{
		guard: guard.NewConstructorGuard(),
	}

	if index < 0 {
		return CloseTabCommand{}, ErrTabIndexIsInvalid
	}
	command.index = index

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseTabCommand) Validate() error {
	return c.guard.Validate(ErrCloseTabCommandIsNotConstructed)
}

// Index returns the position of the tab being closed.
func (c CloseTabCommand) Index() int {
	return c.index
}
