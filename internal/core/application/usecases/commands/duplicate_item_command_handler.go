package commands

import (
	"context"
)

// DuplicateItemCommandHandler clones a cart line. Unknown cart ids are
// silently ignored.
type DuplicateItemCommandHandler struct {
	uowFactory TerminalUoWFactory
}

// NewDuplicateItemCommandHandler creates a handler for line duplication.
func NewDuplicateItemCommandHandler(uowFactory TerminalUoWFactory) DuplicateItemCommandHandler {
	return DuplicateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the duplication within one transaction.
func (h *DuplicateItemCommandHandler) Handle(ctx context.Context, cmd DuplicateItemCommand) error {
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

	term.DuplicateItem(cmd.CartID())

	if err = terminalRepo.Update(ctx, term); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
