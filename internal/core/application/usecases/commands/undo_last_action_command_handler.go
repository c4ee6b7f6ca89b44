package commands

import (
	"context"
)

// UndoLastActionCommandHandler restores the pre-mutation cart snapshot.
type UndoLastActionCommandHandler struct {
	uowFactory TerminalUoWFactory
}

// NewUndoLastActionCommandHandler creates a handler for undo.
func NewUndoLastActionCommandHandler(uowFactory TerminalUoWFactory) UndoLastActionCommandHandler {
	return UndoLastActionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the undo within one transaction.
func (h *UndoLastActionCommandHandler) Handle(ctx context.Context, cmd UndoLastActionCommand) error {
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

	term.UndoLastAction()

	if err = terminalRepo.Update(ctx, term); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
