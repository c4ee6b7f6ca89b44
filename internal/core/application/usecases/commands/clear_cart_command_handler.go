package commands

import (
	"context"
)

// ClearCartCommandHandler empties the active tab. The cleared cart stays
// one undo away.
type ClearCartCommandHandler struct {
	uowFactory TerminalUoWFactory
}

// NewClearCartCommandHandler creates a handler for cart clearing.
func NewClearCartCommandHandler(uowFactory TerminalUoWFactory) ClearCartCommandHandler {
	return ClearCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the clear within one transaction.
func (h *ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	terminalRepo := uow.TerminalRepository()
	term, err := terminalRepo.Get(ctx)
	if err != nil {
		return err
	}

	term.ClearCart()

	if err = terminalRepo.Update(ctx, term); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
