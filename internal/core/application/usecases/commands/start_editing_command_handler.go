package commands

import (
	"context"
)

// StartEditingCommandHandler opens an edit session for a cart line. Unknown
// cart ids are silently ignored.
type StartEditingCommandHandler struct {
	uowFactory TerminalUoWFactory
}

// NewStartEditingCommandHandler creates a handler for edit sessions.
func NewStartEditingCommandHandler(uowFactory TerminalUoWFactory) StartEditingCommandHandler {
	return StartEditingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command within one transaction.
func (h *StartEditingCommandHandler) Handle(ctx context.Context, cmd StartEditingCommand) error {
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

	term.StartEditing(cmd.CartID())

	if err = terminalRepo.Update(ctx, term); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
