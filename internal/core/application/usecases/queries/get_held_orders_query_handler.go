package queries

import (
	"context"

	"pizzapos/internal/core/ports"
)

// GetHeldOrdersQueryHandler reads the parked orders.
type GetHeldOrdersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetHeldOrdersQueryHandler creates a handler for held order listings.
func NewGetHeldOrdersQueryHandler(uowFactory ports.UnitOfWorkFactory) GetHeldOrdersQueryHandler {
	return GetHeldOrdersQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query.
func (h GetHeldOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetHeldOrdersQuery,
) (GetHeldOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetHeldOrdersQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GetHeldOrdersQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	term, err := uow.TerminalRepository().Get(ctx)
	if err != nil {
		return GetHeldOrdersQueryResponse{}, err
	}

	response := GetHeldOrdersQueryResponse{HeldOrders: term.HeldOrders()}

	if err = uow.Commit(ctx); err != nil {
		return GetHeldOrdersQueryResponse{}, err
	}

	return response, nil
}
