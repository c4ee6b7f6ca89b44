package queries

import (
	"context"

	"pizzapos/internal/core/ports"
)

// GetLiveOrdersQueryHandler reads the orders still in the kitchen.
type GetLiveOrdersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetLiveOrdersQueryHandler creates a handler for live order listings.
func NewGetLiveOrdersQueryHandler(uowFactory ports.UnitOfWorkFactory) GetLiveOrdersQueryHandler {
	return GetLiveOrdersQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query.
func (h GetLiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetLiveOrdersQuery,
) (GetLiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLiveOrdersQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GetLiveOrdersQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAllLive(ctx)
	if err != nil {
		return GetLiveOrdersQueryResponse{}, err
	}

	response := GetLiveOrdersQueryResponse{Orders: newOrderResponses(orders)}

	if err = uow.Commit(ctx); err != nil {
		return GetLiveOrdersQueryResponse{}, err
	}

	return response, nil
}
