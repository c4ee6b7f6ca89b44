// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"pizzapos/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Handlers depend on the narrowest interface that covers the aggregates they
// touch, so tests can mock exactly what a command needs.
type (
	// TxManager handles the transaction lifecycle over the store.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CatalogRepoFactory provides access to the catalog repository within a transaction.
	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	// TerminalRepoFactory provides access to the terminal repository within a transaction.
	TerminalRepoFactory interface {
		TerminalRepository() ports.TerminalRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TerminalUoW manages transactions for terminal-only operations:
	// cart edits, tabs, sessions, held orders and settings.
	TerminalUoW interface {
		TxManager
		TerminalRepoFactory
	}

	// TerminalUoWFactory creates new terminal unit of work instances.
	TerminalUoWFactory interface {
		Create() TerminalUoW
	}

	// CatalogUoW manages transactions for inventory edits.
	CatalogUoW interface {
		TxManager
		CatalogRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// CartUoW manages transactions for commands that resolve catalog
	// products while mutating the terminal (add to cart, templates,
	// opening customization sessions).
	CartUoW interface {
		TxManager
		TerminalRepoFactory
		CatalogRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// KitchenUoW manages transactions for the kitchen simulator tick.
	KitchenUoW interface {
		TxManager
		OrderRepoFactory
	}

	// KitchenUoWFactory creates new kitchen unit of work instances.
	KitchenUoWFactory interface {
		Create() KitchenUoW
	}

	// CheckoutUoW manages the checkout transaction, which spans the
	// terminal (cart), the order sets and, under the stock policy, the
	// catalog.
	CheckoutUoW interface {
		TxManager
		TerminalRepoFactory
		OrderRepoFactory
		CatalogRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}
)
