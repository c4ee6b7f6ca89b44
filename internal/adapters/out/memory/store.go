// Package memory backs the ports with a single in-process store. The whole
// system state (catalog, terminal, kitchen orders) lives in one Store guarded
// by a mutex; a unit of work holds the lock from Begin to Commit or Rollback,
// so every business operation sees and mutates a consistent snapshot.
//
// Usage:
//
//	store := memory.NewStore(cat, term)
//	factory := memory.NewUnitOfWorkFactory(store)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	term, err := uow.TerminalRepository().Get(ctx)
//	if err != nil {
//	    return err
//	}
//	// mutate term ...
//	if err := uow.TerminalRepository().Update(ctx, term); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package memory

import (
	"sync"

	"pizzapos/internal/core/domain/model/catalog"
	"pizzapos/internal/core/domain/model/order"
	"pizzapos/internal/core/domain/model/terminal"
)

// Store owns all aggregates. Access goes through a UnitOfWork, which holds
// the store mutex for the duration of the operation.
type Store struct {
	mu sync.Mutex

	catalog  *catalog.Catalog
	terminal *terminal.Terminal

	live     []*order.Order
	archived []*order.Order
}

// NewStore creates a store seeded with the catalog and terminal aggregates.
func NewStore(cat *catalog.Catalog, term *terminal.Terminal) *Store {
	return &Store{catalog: cat, terminal: term}
}
