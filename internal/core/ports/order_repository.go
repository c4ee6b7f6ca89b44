package ports

import (
	"context"

	"pizzapos/internal/core/domain/model/kernel"
	"pizzapos/internal/core/domain/model/order"
)

// OrderRepository stores checked-out orders: the live set the kitchen
// simulator advances, and the permanent archive they migrate into.
type OrderRepository interface {
	// AddLive places a freshly checked-out order into the live set.
	AddLive(ctx context.Context, aggregate *order.Order) error

	// UpdateLive persists changes the simulator made to a live order.
	UpdateLive(ctx context.Context, aggregate *order.Order) error

	// GetLive retrieves a live order by its identifier.
	GetLive(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllLive retrieves every order still in the kitchen, oldest first.
	GetAllLive(ctx context.Context) ([]*order.Order, error)

	// GetArchived retrieves the order history, newest first.
	GetArchived(ctx context.Context) ([]*order.Order, error)

	// Archive moves a live order into the history.
	Archive(ctx context.Context, id kernel.UUID) error

	// Count returns the number of orders ever placed (live plus archived).
	// Token numbers are minted from it.
	Count(ctx context.Context) (int, error)
}
