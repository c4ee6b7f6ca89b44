package commands

import (
	"errors"

	"pizzapos/internal/pkg/guard"
)

var (
	ErrCancelCustomizingCommandIsNotConstructed = errors.New(
		"CancelCustomizingCommand must be created via NewCancelCustomizingCommand constructor",
	)
	ErrTempIDIsRequired = errors.New("tempId is required")
)

// CancelCustomizingCommand represents a request to discard an open panel
// session without committing it.
type CancelCustomizingCommand struct { //nolint:recvcheck //using for validation
	tempID string

	guard guard.ConstructorGuard
}

// NewCancelCustomizingCommand creates a command to discard a session.
func NewCancelCustomizingCommand(tempID string) (CancelCustomizingCommand, error) {
	command := CancelCustomizingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if tempID == "" {
		return CancelCustomizingCommand{}, ErrTempIDIsRequired
	}
	command.tempID = tempID

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelCustomizingCommand) Validate() error {
	return c.guard.Validate(ErrCancelCustomizingCommandIsNotConstructed)
}

// TempID returns the session id being discarded.
func (c CancelCustomizingCommand) TempID() string {
	return c.tempID
}
