package queries

import (
	"context"

	"pizzapos/internal/core/domain/model/terminal"
	"pizzapos/internal/core/domain/services"
	"pizzapos/internal/core/ports"
)

// GetCartQueryHandler reads the active cart and prices it.
type GetCartQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	pricer     *services.Pricer
}

// NewGetCartQueryHandler creates a handler for cart reads.
func NewGetCartQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
	pricer *services.Pricer,
) GetCartQueryHandler {
	return GetCartQueryHandler{uowFactory: uowFactory, pricer: pricer}
}

// Handle executes the query.
func (h GetCartQueryHandler) Handle(
	ctx context.Context,
	query GetCartQuery,
) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GetCartQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	term, err := uow.TerminalRepository().Get(ctx)
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	items := term.ActiveItems()
	subtotal := h.pricer.Subtotal(items)
	tax := h.pricer.Tax(subtotal)
	senior := term.Settings().UserRole == terminal.RoleSenior

	response := GetCartQueryResponse{
		Items:        items,
		Subtotal:     subtotal,
		Tax:          tax,
		Total:        h.pricer.Total(subtotal, tax),
		DisplayTotal: h.pricer.DisplayTotal(subtotal, tax, senior),
		CanUndo:      term.CanUndo(),
	}

	if err = uow.Commit(ctx); err != nil {
		return GetCartQueryResponse{}, err
	}

	return response, nil
}
