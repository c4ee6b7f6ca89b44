package memory

import (
	"context"
	"errors"

	"pizzapos/internal/core/ports"
)

// ErrNoActiveUnitOfWork is returned by Commit or Rollback outside a
// Begin bracket.
var ErrNoActiveUnitOfWork = errors.New("unit of work has no active transaction")

// UnitOfWorkFactory creates units of work bound to one store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory for store-backed units of work.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a fresh unit of work. Each business operation gets its own
// instance; instances are not reusable across operations.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork brackets one business operation. Begin takes the store lock,
// Commit and Rollback release it. There is no undo of mutations: aggregates
// are mutated in place, so handlers validate before they mutate.
type UnitOfWork struct {
	store *Store
	began bool
}

// Begin acquires the store for this unit of work. Calling Begin twice on the
// same instance is a no-op.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.began {
		return nil
	}
	uow.store.mu.Lock()
	uow.began = true
	return nil
}

// Commit releases the store, keeping the mutations.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.began {
		return ErrNoActiveUnitOfWork
	}
	uow.began = false
	uow.store.mu.Unlock()
	return nil
}

// Rollback releases the store. Mutations already applied stay applied; the
// method exists so operation code can bracket uniformly with defer.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.began {
		return ErrNoActiveUnitOfWork
	}
	uow.began = false
	uow.store.mu.Unlock()
	return nil
}

// CatalogRepository provides catalog access within the unit of work.
func (uow *UnitOfWork) CatalogRepository() ports.CatalogRepository {
	return &CatalogRepository{store: uow.store}
}

// TerminalRepository provides terminal access within the unit of work.
func (uow *UnitOfWork) TerminalRepository() ports.TerminalRepository {
	return &TerminalRepository{store: uow.store}
}

// OrderRepository provides order access within the unit of work.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{store: uow.store}
}
