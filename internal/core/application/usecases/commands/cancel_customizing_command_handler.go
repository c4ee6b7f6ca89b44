package commands

import (
	"context"
)

// CancelCustomizingCommandHandler discards a panel session. Unknown session
// ids are silently ignored.
type CancelCustomizingCommandHandler struct {
	uowFactory TerminalUoWFactory
}

// NewCancelCustomizingCommandHandler creates a handler for discarding sessions.
func NewCancelCustomizingCommandHandler(uowFactory TerminalUoWFactory) CancelCustomizingCommandHandler {
	return CancelCustomizingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command within one transaction.
func (h *CancelCustomizingCommandHandler) Handle(ctx context.Context, cmd CancelCustomizingCommand) error {
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

	term.CancelCustomizing(cmd.TempID())

	if err = terminalRepo.Update(ctx, term); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
