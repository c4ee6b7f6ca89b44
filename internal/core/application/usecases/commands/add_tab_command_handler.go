package commands

import (
	"context"
)

// AddTabCommandHandler opens a new empty tab on the terminal.
type AddTabCommandHandler struct {
	uowFactory TerminalUoWFactory
}

// NewAddTabCommandHandler creates a handler for opening tabs.
func NewAddTabCommandHandler(uowFactory TerminalUoWFactory) AddTabCommandHandler {
	return AddTabCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command within one transaction.
func (h *AddTabCommandHandler) Handle(ctx context.Context, cmd AddTabCommand) error {
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

	term.AddTab()

	if err = terminalRepo.Update(ctx, term); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
