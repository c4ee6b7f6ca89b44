package ports

import (
	"context"

	"pizzapos/internal/core/domain/model/terminal"
)

// TerminalRepository stores the single terminal aggregate: tabs, sessions,
// held orders, recents and settings.
type TerminalRepository interface {
	// Get retrieves the terminal.
	Get(ctx context.Context) (*terminal.Terminal, error)

	// Update persists changes to the terminal.
	Update(ctx context.Context, aggregate *terminal.Terminal) error
}
