package commands

import (
	"context"
)

// UpdateToppingStatusCommandHandler sets a topping's availability. Unknown
// topping ids are silently ignored.
type UpdateToppingStatusCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdateToppingStatusCommandHandler creates a handler for topping edits.
func NewUpdateToppingStatusCommandHandler(uowFactory CatalogUoWFactory) UpdateToppingStatusCommandHandler {
	return UpdateToppingStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit within one transaction.
func (h *UpdateToppingStatusCommandHandler) Handle(ctx context.Context, cmd UpdateToppingStatusCommand) error {
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

	catalogRepo := uow.CatalogRepository()
	cat, err := catalogRepo.Get(ctx)
	if err != nil {
		return err
	}

	if err = cat.UpdateToppingStatus(cmd.ToppingID(), cmd.Status()); err != nil {
		return err
	}

	if err = catalogRepo.Update(ctx, cat); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
