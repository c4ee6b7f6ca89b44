package commands

import (
	"context"
)

// CloseTabCommandHandler closes a tab, or clears it when it is the last one.
type CloseTabCommandHandler struct {
	uowFactory TerminalUoWFactory
}

// NewCloseTabCommandHandler creates a handler for closing tabs.
func NewCloseTabCommandHandler(uowFactory TerminalUoWFactory) CloseTabCommandHandler {
	return CloseTabCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command within one transaction.
func (h *CloseTabCommandHandler) Handle(ctx context.Context, cmd CloseTabCommand) error {
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

	term.CloseTab(cmd.Index())

	if err = terminalRepo.Update(ctx, term); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
