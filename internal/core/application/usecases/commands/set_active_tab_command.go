package commands

import (
	"errors"

	"pizzapos/internal/pkg/guard"
)

var ErrSetActiveTabCommandIsNotConstructed = errors.New(
	"SetActiveTabCommand must be created via NewSetActiveTabCommand constructor",
)

// SetActiveTabCommand represents a request to switch the active tab.
type SetActiveTabCommand struct { //nolint:recvcheck //using for validation
	index int

	guard guard.ConstructorGuard
}

// NewSetActiveTabCommand creates a command to switch tabs.
func NewSetActiveTabCommand(index int) (SetActiveTabCommand, error) {
	command := SetActiveTabCommand{
		guard: guard.NewConstructorGuard(),
	}

	if index < 0 {
		return SetActiveTabCommand{}, ErrTabIndexIsInvalid
	}
	command.index = index

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetActiveTabCommand) Validate() error {
	return c.guard.Validate(ErrSetActiveTabCommandIsNotConstructed)
}

// Index returns the position of the tab to activate.
func (c SetActiveTabCommand) Index() int {
	return c.index
}
