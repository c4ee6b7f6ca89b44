package commands

import (
	"errors"

	"pizzapos/internal/core/domain/model/pizza"
	"pizzapos/internal/pkg/guard"
)

var (
	ErrAddToCartCommandIsNotConstructed = errors.New(
		"AddToCartCommand must be created via NewAddToCartCommand constructor",
	)
	ErrProductIDIsRequired = errors.New("productId is required")
)

// AddToCartCommand represents a request to append one line of a product to
// the active cart. The customization is optional: customizable products
// without one get the panel defaults.
//
// Example:
//
//	cmd, err := NewAddToCartCommand("p-margherita", nil)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewAddToCartCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add to cart: %w", err)
//	}
type AddToCartCommand struct { //nolint:recvcheck //using for validation
	productID     string
	customization *pizza.Customization

	guard guard.ConstructorGuard
}

// NewAddToCartCommand creates a command to add a product to the cart.
func NewAddToCartCommand(productID string, customization *pizza.Customization) (AddToCartCommand, error) {
	command := AddToCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setProductID(productID); err != nil {
		return AddToCartCommand{}, err
	}
	command.customization = customization.Clone()

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
}

// ProductID returns the catalog id of the product being added.
func (c AddToCartCommand) ProductID() string {
	return c.productID
}

// Customization returns the explicit customization, or nil for defaults.
func (c AddToCartCommand) Customization() *pizza.Customization {
	return c.customization
}

func (c *AddToCartCommand) setProductID(productID string) error {
	if productID == "" {
		return ErrProductIDIsRequired
	}

	c.productID = productID
	return nil
}
