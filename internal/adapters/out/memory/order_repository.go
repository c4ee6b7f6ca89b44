package memory

import (
	"context"

	"pizzapos/internal/core/domain/model/kernel"
	"pizzapos/internal/core/domain/model/order"
	"pizzapos/internal/pkg/errs"
)

// OrderRepository stores live and archived orders. Live orders keep arrival
// order; the archive keeps newest first.
type OrderRepository struct {
	store *Store
}

// AddLive places a freshly checked-out order into the live set.
func (r *OrderRepository) AddLive(_ context.Context, aggregate *order.Order) error {
	if aggregate == nil {
		return errs.NewValueIsRequiredError("aggregate")
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	r.store.live = append(r.store.live, aggregate)
	return nil
}

// UpdateLive persists changes to a live order.
func (r *OrderRepository) UpdateLive(_ context.Context, aggregate *order.Order) error {
	if aggregate == nil {
		return errs.NewValueIsRequiredError("aggregate")
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	for i, placed := range r.store.live {
		if placed.ID().IsEqual(aggregate.ID()) {
			r.store.live[i] = aggregate
			return nil
		}
	}
	return errs.NewObjectNotFoundError("order", aggregate.ID().String())
}

// GetLive retrieves a live order by its identifier.
func (r *OrderRepository) GetLive(_ context.Context, id kernel.UUID) (*order.Order, error) {
	for _, placed := range r.store.live {
		if placed.ID().IsEqual(id) {
			return placed, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("order", id.String())
}

// GetAllLive retrieves every order still in the kitchen, oldest first.
func (r *OrderRepository) GetAllLive(_ context.Context) ([]*order.Order, error) {
	live := make([]*order.Order, len(r.store.live))
	copy(live, r.store.live)
	return live, nil
}

// GetArchived retrieves the order history, newest first.
func (r *OrderRepository) GetArchived(_ context.Context) ([]*order.Order, error) {
	archived := make([]*order.Order, len(r.store.archived))
	copy(archived, r.store.archived)
	return archived, nil
}

// Archive moves a live order into the history. Archived orders go to the
// front so the history reads newest first.
func (r *OrderRepository) Archive(_ context.Context, id kernel.UUID) error {
	for i, placed := range r.store.live {
		if placed.ID().IsEqual(id) {
			r.store.live = append(r.store.live[:i], r.store.live[i+1:]...)
			r.store.archived = append([]*order.Order{placed}, r.store.archived...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("order", id.String())
}

// Count returns the number of orders ever placed, live plus archived.
func (r *OrderRepository) Count(_ context.Context) (int, error) {
	return len(r.store.live) + len(r.store.archived), nil
}
