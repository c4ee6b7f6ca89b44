package commands

import (
	"errors"

	"pizzapos/internal/core/domain/model/order"
	"pizzapos/internal/pkg/guard"
)

var ErrProcessTransactionCommandIsNotConstructed = errors.New(
	"ProcessTransactionCommand must be created via NewProcessTransactionCommand constructor",
)

// ProcessTransactionCommand represents a checkout request for the active
// cart with the given payment method.
//
// Example:
//
//	cmd, err := NewProcessTransactionCommand(order.PaymentCash)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewProcessTransactionCommandHandler(uowFactory, pricer, random, cfg)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type ProcessTransactionCommand struct { //nolint:recvcheck //using for validation
	paymentMethod order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewProcessTransactionCommand creates a checkout command.
func NewProcessTransactionCommand(paymentMethod order.PaymentMethod) (ProcessTransactionCommand, error) {
	command := ProcessTransactionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := paymentMethod.Validate(); err != nil {
		return ProcessTransactionCommand{}, err
	}
	command.paymentMethod = paymentMethod

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessTransactionCommand) Validate() error {
	return c.guard.Validate(ErrProcessTransactionCommandIsNotConstructed)
}

// PaymentMethod returns how the transaction is settled.
func (c ProcessTransactionCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}
