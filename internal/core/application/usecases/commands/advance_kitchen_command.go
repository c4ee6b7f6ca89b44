package commands

import (
	"errors"

	"pizzapos/internal/pkg/guard"
)

var ErrAdvanceKitchenCommandIsNotConstructed = errors.New(
	"AdvanceKitchenCommand must be created via NewAdvanceKitchenCommand constructor",
)

// AdvanceKitchenCommand triggers one simulator tick over every live order.
//
// Example:
//
//	cmd := NewAdvanceKitchenCommand()
//	handler := NewAdvanceKitchenCommandHandler(uowFactory, random)
//
//	// Run periodically to simulate kitchen progress
//	ticker := time.NewTicker(3 * time.Second)
//	for range ticker.C {
//	    if err := handler.Handle(ctx, cmd); err != nil {
//	        log.Printf("kitchen tick failed: %v", err)
//	    }
//	}
type AdvanceKitchenCommand struct {
	guard guard.ConstructorGuard
}

// NewAdvanceKitchenCommand creates a command to advance the kitchen.
func NewAdvanceKitchenCommand() AdvanceKitchenCommand {
	return AdvanceKitchenCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *AdvanceKitchenCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceKitchenCommandIsNotConstructed)
}
