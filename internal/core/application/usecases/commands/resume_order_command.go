package commands

import (
	"errors"

	"pizzapos/internal/pkg/guard"
)

var (
	ErrResumeOrderCommandIsNotConstructed = errors.New(
		"ResumeOrderCommand must be created via NewResumeOrderCommand constructor",
	)
	ErrHeldOrderIDIsRequired = errors.New("heldOrderId is required")
)

// ResumeOrderCommand represents a request to load a held order back into
// the register.
type ResumeOrderCommand struct { //nolint:recvcheck //using for validation
	heldOrderID string

	guard guard.ConstructorGuard
}

// NewResumeOrderCommand creates a command to resume a held order.
func NewResumeOrderCommand(heldOrderID string) (ResumeOrderCommand, error) {
	command := ResumeOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if heldOrderID == "" {
		return ResumeOrderCommand{}, ErrHeldOrderIDIsRequired
	}
	command.heldOrderID = heldOrderID

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ResumeOrderCommand) Validate() error {
	return c.guard.Validate(ErrResumeOrderCommandIsNotConstructed)
}

// HeldOrderID returns the id of the held order to resume.
func (c ResumeOrderCommand) HeldOrderID() string {
	return c.heldOrderID
}
