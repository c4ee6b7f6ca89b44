package commands

import (
	"errors"

	"pizzapos/internal/pkg/guard"
)

var ErrHoldOrderCommandIsNotConstructed = errors.New(
	"HoldOrderCommand must be created via NewHoldOrderCommand constructor",
)

// HoldOrderCommand represents a request to park the active cart under a
// reason label so the register is free for the next customer.
type HoldOrderCommand struct { //nolint:recvcheck //using for validation
	reason string

	guard guard.ConstructorGuard
}

// NewHoldOrderCommand creates a command to hold the active cart. The reason
// may be blank; it is only a display label.
func NewHoldOrderCommand(reason string) (HoldOrderCommand, error) {
	return HoldOrderCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c HoldOrderCommand) Validate() error {
	return c.guard.Validate(ErrHoldOrderCommandIsNotConstructed)
}

// Reason returns the label the cart is parked under.
func (c HoldOrderCommand) Reason() string {
	return c.reason
}
