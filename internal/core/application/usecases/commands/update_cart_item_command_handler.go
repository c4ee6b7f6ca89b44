package commands

import (
	"context"
)

// UpdateCartItemCommandHandler replaces a line's customization and reprices
// it. Unknown cart ids are silently ignored.
type UpdateCartItemCommandHandler struct {
	uowFactory TerminalUoWFactory
}

// NewUpdateCartItemCommandHandler creates a handler for cart line updates.
func NewUpdateCartItemCommandHandler(uowFactory TerminalUoWFactory) UpdateCartItemCommandHandler {
	return UpdateCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update within one transaction.
func (h *UpdateCartItemCommandHandler) Handle(ctx context.Context, cmd UpdateCartItemCommand) error {
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

	term.UpdateCartItem(cmd.CartID(), cmd.Customization())

	if err = terminalRepo.Update(ctx, term); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
