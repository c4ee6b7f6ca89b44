package queries

import (
	"context"

	"pizzapos/internal/core/ports"
)

// GetOrdersArchiveQueryHandler reads the completed orders.
type GetOrdersArchiveQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetOrdersArchiveQueryHandler creates a handler for archive listings.
func NewGetOrdersArchiveQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
) GetOrdersArchiveQueryHandler {
	return GetOrdersArchiveQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query.
func (h GetOrdersArchiveQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersArchiveQuery,
) (GetOrdersArchiveQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersArchiveQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GetOrdersArchiveQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetArchived(ctx)
	if err != nil {
		return GetOrdersArchiveQueryResponse{}, err
	}

	response := GetOrdersArchiveQueryResponse{Orders: newOrderResponses(orders)}

	if err = uow.Commit(ctx); err != nil {
		return GetOrdersArchiveQueryResponse{}, err
	}

	return response, nil
}
