package commands

import (
	"errors"

	"pizzapos/internal/core/domain/model/pizza"
	"pizzapos/internal/pkg/guard"
)

var (
	ErrUpdateCartItemCommandIsNotConstructed = errors.New(
		"UpdateCartItemCommand must be created via NewUpdateCartItemCommand constructor",
	)
	ErrCartIDIsRequired        = errors.New("cartId is required")
	ErrCustomizationIsRequired = errors.New("customization is required")
)

// UpdateCartItemCommand represents a request to replace a cart line's
// customization. The line is repriced from the base price frozen when it was
// added.
type UpdateCartItemCommand struct { //nolint:recvcheck //using for validation
	cartID        string
	customization *pizza.Customization

	guard guard.ConstructorGuard
}

// NewUpdateCartItemCommand creates a command to update a cart line.
func NewUpdateCartItemCommand(cartID string, customization *pizza.Customization) (UpdateCartItemCommand, error) {
	command := UpdateCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCartID(cartID),
		command.setCustomization(customization),
	); err != nil {
		return UpdateCartItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemCommandIsNotConstructed)
}

// CartID returns the id of the line being updated.
func (c UpdateCartItemCommand) CartID() string {
	return c.cartID
}

// Customization returns the replacement customization.
func (c UpdateCartItemCommand) Customization() *pizza.Customization {
	return c.customization
}

func (c *UpdateCartItemCommand) setCartID(cartID string) error {
	if cartID == "" {
		return ErrCartIDIsRequired
	}

	c.cartID = cartID
	return nil
}

func (c *UpdateCartItemCommand) setCustomization(customization *pizza.Customization) error {
	if customization == nil {
		return ErrCustomizationIsRequired
	}

	c.customization = customization.Clone()
	return nil
}
