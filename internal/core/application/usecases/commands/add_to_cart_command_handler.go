package commands

import (
	"context"
)

// AddToCartCommandHandler resolves the product in the catalog and appends a
// priced line to the active tab. An unknown product id is silently ignored,
// matching the best-effort register model.
type AddToCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddToCartCommandHandler creates a handler for cart additions.
func NewAddToCartCommandHandler(uowFactory CartUoWFactory) AddToCartCommandHandler {
	return AddToCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-to-cart command within one transaction.
func (h *AddToCartCommandHandler) Handle(ctx context.Context, cmd AddToCartCommand) error {
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

	cat, err := uow.CatalogRepository().Get(ctx)
	if err != nil {
		return err
	}

	product, ok := cat.ProductByID(cmd.ProductID())
	if !ok {
		return uow.Commit(ctx)
	}

	terminalRepo := uow.TerminalRepository()
	term, err := terminalRepo.Get(ctx)
	if err != nil {
		return err
	}

	if _, err = term.AddToCart(product, cmd.Customization(), cat.Options().Defaults()); err != nil {
		return err
	}

	if err = terminalRepo.Update(ctx, term); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
