package queries

import (
	"context"

	"pizzapos/internal/core/ports"
)

// GetToppingsQueryHandler reads the topping list and option sets.
type GetToppingsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetToppingsQueryHandler creates a handler for topping listings.
func NewGetToppingsQueryHandler(uowFactory ports.UnitOfWorkFactory) GetToppingsQueryHandler {
	return GetToppingsQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query.
func (h GetToppingsQueryHandler) Handle(
	ctx context.Context,
	query GetToppingsQuery,
) (GetToppingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetToppingsQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GetToppingsQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cat, err := uow.CatalogRepository().Get(ctx)
	if err != nil {
		return GetToppingsQueryResponse{}, err
	}

	toppings := make([]ToppingResponse, 0, len(cat.Toppings()))
	for _, topping := range cat.Toppings() {
		toppings = append(toppings, ToppingResponse{
			ID:       topping.ID(),
			Name:     topping.Name(),
			Price:    topping.Price(),
			Category: topping.Category(),
			Tier:     topping.Tier(),
			Status:   topping.Status(),
		})
	}

	response := GetToppingsQueryResponse{
		Toppings: toppings,
		Options:  cat.Options(),
	}

	if err = uow.Commit(ctx); err != nil {
		return GetToppingsQueryResponse{}, err
	}

	return response, nil
}
