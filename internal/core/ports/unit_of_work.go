package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over the store.
// All state lives in one in-memory store shared with the kitchen simulator,
// so every command and query brackets its work in Begin/Commit (or Rollback)
// to keep a single-writer discipline.
type UnitOfWork interface {
	// Begin acquires the store for this unit of work.
	Begin(ctx context.Context) error

	// Commit publishes the changes and releases the store.
	Commit(ctx context.Context) error

	// Rollback releases the store, discarding the unit of work. Safe to
	// defer after a successful Commit.
	Rollback(ctx context.Context) error

	// CatalogRepository returns a CatalogRepository bound to this unit of work.
	CatalogRepository() CatalogRepository

	// TerminalRepository returns a TerminalRepository bound to this unit of work.
	TerminalRepository() TerminalRepository

	// OrderRepository returns an OrderRepository bound to this unit of work.
	OrderRepository() OrderRepository
}
