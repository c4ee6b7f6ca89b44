package commands

import (
	"errors"

	"pizzapos/internal/pkg/guard"
)

var ErrStartCustomizingCommandIsNotConstructed = errors.New(
	"StartCustomizingCommand must be created via NewStartCustomizingCommand constructor",
)

// StartCustomizingCommand represents a request to open a customization
// panel session for a product.
type StartCustomizingCommand struct { //nolint:recvcheck //using for validation
	productID string

	guard guard.ConstructorGuard
}

// NewStartCustomizingCommand creates a command to open a panel session.
func NewStartCustomizingCommand(productID string) (StartCustomizingCommand, error) {
	command := StartCustomizingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if productID == "" {
		return StartCustomizingCommand{}, ErrProductIDIsRequired
	}
	command.productID = productID

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartCustomizingCommand) Validate() error {
	return c.guard.Validate(ErrStartCustomizingCommandIsNotConstructed)
}

// ProductID returns the product the session is for.
func (c StartCustomizingCommand) ProductID() string {
	return c.productID
}
