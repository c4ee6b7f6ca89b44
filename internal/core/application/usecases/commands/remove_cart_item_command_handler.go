package commands

import (
	"context"
)

// RemoveCartItemCommandHandler deletes a line from the active tab. Unknown
// cart ids are silently ignored.
type RemoveCartItemCommandHandler struct {
	uowFactory TerminalUoWFactory
}

// NewRemoveCartItemCommandHandler creates a handler for line removal.
func NewRemoveCartItemCommandHandler(uowFactory TerminalUoWFactory) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal within one transaction.
func (h *RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
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

	term.RemoveFromCart(cmd.CartID())

	if err = terminalRepo.Update(ctx, term); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
