package commands

import (
	"context"
)

// UpdateQuantityCommandHandler changes a line quantity on the active tab.
type UpdateQuantityCommandHandler struct {
	uowFactory TerminalUoWFactory
}

// NewUpdateQuantityCommandHandler creates a handler for quantity changes.
func NewUpdateQuantityCommandHandler(uowFactory TerminalUoWFactory) UpdateQuantityCommandHandler {
	return UpdateQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quantity change within one transaction.
func (h *UpdateQuantityCommandHandler) Handle(ctx context.Context, cmd UpdateQuantityCommand) error {
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

	term.UpdateQuantity(cmd.CartID(), cmd.Quantity())

	if err = terminalRepo.Update(ctx, term); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
