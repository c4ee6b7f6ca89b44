package memory

import (
	"context"

	"pizzapos/internal/core/domain/model/terminal"
	"pizzapos/internal/pkg/errs"
)

// TerminalRepository stores the single terminal aggregate.
type TerminalRepository struct {
	store *Store
}

// Get retrieves the terminal.
func (r *TerminalRepository) Get(_ context.Context) (*terminal.Terminal, error) {
	if r.store.terminal == nil {
		return nil, errs.NewObjectNotFoundError("terminal", nil)
	}
	return r.store.terminal, nil
}

// Update persists the terminal.
func (r *TerminalRepository) Update(_ context.Context, aggregate *terminal.Terminal) error {
	if aggregate == nil {
		return errs.NewValueIsRequiredError("aggregate")
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	r.store.terminal = aggregate
	return nil
}
