package commands

import (
	"errors"

	"pizzapos/internal/pkg/guard"
)

var (
	ErrUpdateStockCommandIsNotConstructed = errors.New(
		"UpdateStockCommand must be created via NewUpdateStockCommand constructor",
	)
	ErrStockIsInvalid = errors.New("stock must not be negative")
)

// UpdateStockCommand represents an inventory edit: setting a product's stock
// to an explicit count. The stock status is rederived from the new count.
type UpdateStockCommand struct { //nolint:recvcheck //using for validation
	productID string
	stock     int

	guard guard.ConstructorGuard
}

// NewUpdateStockCommand creates a command to set a product's stock.
func NewUpdateStockCommand(productID string, stock int) (UpdateStockCommand, error) {
	command := UpdateStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setStock(stock),
	); err != nil {
		return UpdateStockCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateStockCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStockCommandIsNotConstructed)
}

// ProductID returns the product whose stock is being set.
func (c UpdateStockCommand) ProductID() string {
	return c.productID
}

// Stock returns the new stock count.
func (c UpdateStockCommand) Stock() int {
	return c.stock
}

func (c *UpdateStockCommand) setProductID(productID string) error {
	if productID == "" {
		return ErrProductIDIsRequired
	}

	c.productID = productID
	return nil
}

func (c *UpdateStockCommand) setStock(stock int) error {
	if stock < 0 {
		return ErrStockIsInvalid
	}

	c.stock = stock
	return nil
}
