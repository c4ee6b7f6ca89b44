package queries

import (
	"context"

	"pizzapos/internal/core/domain/model/order"
	"pizzapos/internal/core/ports"
)

// Placeholder readiness figures shown until station telemetry is wired in.
const (
	mockKitchenLoad     = 0.65
	mockDoughLoad       = 0.40
	mockToppingsLoad    = 0.75
	mockOvenLoad        = 0.90
	mockPackingLoad     = 0.30
	baseWaitMinutes     = 5
	waitMinutesPerOrder = 2
)

// GetKitchenStatusQueryHandler assembles the readiness view.
type GetKitchenStatusQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetKitchenStatusQueryHandler creates a handler for the readiness view.
func NewGetKitchenStatusQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
) GetKitchenStatusQueryHandler {
	return GetKitchenStatusQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query.
func (h GetKitchenStatusQueryHandler) Handle(
	ctx context.Context,
	query GetKitchenStatusQuery,
) (GetKitchenStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetKitchenStatusQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GetKitchenStatusQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAllLive(ctx)
	if err != nil {
		return GetKitchenStatusQueryResponse{}, err
	}

	response := GetKitchenStatusQueryResponse{
		KitchenLoad: mockKitchenLoad,
		StationLoads: map[order.Station]float64{
			order.StationDough:    mockDoughLoad,
			order.StationToppings: mockToppingsLoad,
			order.StationOven:     mockOvenLoad,
			order.StationPacking:  mockPackingLoad,
		},
		ActiveOrdersCount: len(orders),
		AverageWaitMin:    len(orders)*waitMinutesPerOrder + baseWaitMinutes,
		Confidence: ConfidenceFlags{
			KitchenLoad: true,
			WaitTime:    false,
			Stations:    true,
		},
	}

	if err = uow.Commit(ctx); err != nil {
		return GetKitchenStatusQueryResponse{}, err
	}

	return response, nil
}
