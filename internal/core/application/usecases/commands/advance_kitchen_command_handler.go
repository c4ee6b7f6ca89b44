package commands

import (
	"context"

	"pizzapos/internal/core/domain/model/order"
)

// AdvanceKitchenCommandHandler runs one tick of the kitchen simulator:
// every live order decays its time estimate and rolls for a station
// transition, and every all-ready order rolls its pickup chance to migrate
// into the archive. All updates occur within a single transaction.
type AdvanceKitchenCommandHandler struct {
	uowFactory KitchenUoWFactory
	random     order.RandomSource
}

// NewAdvanceKitchenCommandHandler creates a handler for kitchen ticks.
// The random source is injected so ticks are deterministic under test.
func NewAdvanceKitchenCommandHandler(
	uowFactory KitchenUoWFactory,
	random order.RandomSource,
) AdvanceKitchenCommandHandler {
	return AdvanceKitchenCommandHandler{
		uowFactory: uowFactory,
		random:     random,
	}
}

// Handle processes one simulator tick.
func (h *AdvanceKitchenCommandHandler) Handle(ctx context.Context, cmd AdvanceKitchenCommand) error {
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

	orderRepo := uow.OrderRepository()
	live, err := orderRepo.GetAllLive(ctx)
	if err != nil {
		return err
	}

	for _, placed := range live {
		placed.Tick(h.random)
		if err = orderRepo.UpdateLive(ctx, placed); err != nil {
			return err
		}

		if placed.ShouldArchive(h.random) {
			if err = orderRepo.Archive(ctx, placed.ID()); err != nil {
				return err
			}
		}
	}

	return uow.Commit(ctx)
}
