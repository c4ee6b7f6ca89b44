package commands

import (
	"context"
)

// SetActiveTabCommandHandler switches the active tab. Out-of-range indexes
// are silently ignored.
type SetActiveTabCommandHandler struct {
	uowFactory TerminalUoWFactory
}

// NewSetActiveTabCommandHandler creates a handler for tab switching.
func NewSetActiveTabCommandHandler(uowFactory TerminalUoWFactory) SetActiveTabCommandHandler {
	return SetActiveTabCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command within one transaction.
func (h *SetActiveTabCommandHandler) Handle(ctx context.Context, cmd SetActiveTabCommand) error {
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

	term.SetActiveTab(cmd.Index())

	if err = terminalRepo.Update(ctx, term); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
