package commands

import (
	"context"
	"time"
)

// HoldOrderCommandHandler snapshots the active cart into the held set and
// clears the tab. Holding an empty cart is a no-op.
type HoldOrderCommandHandler struct {
	uowFactory TerminalUoWFactory
}

// NewHoldOrderCommandHandler creates a handler for holding orders.
func NewHoldOrderCommandHandler(uowFactory TerminalUoWFactory) HoldOrderCommandHandler {
	return HoldOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the hold within one transaction.
func (h *HoldOrderCommandHandler) Handle(ctx context.Context, cmd HoldOrderCommand) error {
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

	term.HoldOrder(cmd.Reason(), time.Now())

	if err = terminalRepo.Update(ctx, term); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
