package commands

import (
	"context"
)

// ResumeOrderCommandHandler loads a held order into the active tab, or a new
// tab when the active one is busy. Unknown ids are silently ignored.
type ResumeOrderCommandHandler struct {
	uowFactory TerminalUoWFactory
}

// NewResumeOrderCommandHandler creates a handler for resuming held orders.
func NewResumeOrderCommandHandler(uowFactory TerminalUoWFactory) ResumeOrderCommandHandler {
	return ResumeOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resume within one transaction.
func (h *ResumeOrderCommandHandler) Handle(ctx context.Context, cmd ResumeOrderCommand) error {
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

	term.ResumeOrder(cmd.HeldOrderID())

	if err = terminalRepo.Update(ctx, term); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
