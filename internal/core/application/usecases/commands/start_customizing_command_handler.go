package commands

import (
	"context"
)

// StartCustomizingCommandHandler opens a new-item panel session. The product
// must exist and be customizable; otherwise the command is silently ignored.
type StartCustomizingCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewStartCustomizingCommandHandler creates a handler for opening sessions.
func NewStartCustomizingCommandHandler(uowFactory CartUoWFactory) StartCustomizingCommandHandler {
	return StartCustomizingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command within one transaction.
func (h *StartCustomizingCommandHandler) Handle(ctx context.Context, cmd StartCustomizingCommand) error {
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

	cat, err := uow.CatalogRepository().Get(ctx)
	if err != nil {
		return err
	}

	product, ok := cat.ProductByID(cmd.ProductID())
	if !ok || !product.Customizable() {
		return uow.Commit(ctx)
	}

	terminalRepo := uow.TerminalRepository()
	term, err := terminalRepo.Get(ctx)
	if err != nil {
		return err
	}

	term.StartCustomizing(product.ID())

	if err = terminalRepo.Update(ctx, term); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
