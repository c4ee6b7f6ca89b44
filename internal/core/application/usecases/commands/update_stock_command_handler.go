package commands

import (
	"context"
)

// UpdateStockCommandHandler sets a product's stock count. Unknown product
// ids are silently ignored.
type UpdateStockCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdateStockCommandHandler creates a handler for stock edits.
func NewUpdateStockCommandHandler(uowFactory CatalogUoWFactory) UpdateStockCommandHandler {
	return UpdateStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stock edit within one transaction.
func (h *UpdateStockCommandHandler) Handle(ctx context.Context, cmd UpdateStockCommand) error {
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

	if err = cat.UpdateStock(cmd.ProductID(), cmd.Stock()); err != nil {
		return err
	}

	if err = catalogRepo.Update(ctx, cat); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
