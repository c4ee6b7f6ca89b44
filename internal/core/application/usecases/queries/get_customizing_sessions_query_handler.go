package queries

import (
	"context"

	"pizzapos/internal/core/ports"
)

// GetCustomizingSessionsQueryHandler reads the open customization sessions.
type GetCustomizingSessionsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetCustomizingSessionsQueryHandler creates a handler for session listings.
func NewGetCustomizingSessionsQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
) GetCustomizingSessionsQueryHandler {
	return GetCustomizingSessionsQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query.
func (h GetCustomizingSessionsQueryHandler) Handle(
	ctx context.Context,
	query GetCustomizingSessionsQuery,
) (GetCustomizingSessionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomizingSessionsQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GetCustomizingSessionsQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	term, err := uow.TerminalRepository().Get(ctx)
	if err != nil {
		return GetCustomizingSessionsQueryResponse{}, err
	}

	response := GetCustomizingSessionsQueryResponse{Sessions: term.Sessions()}
	if active, ok := term.ActiveSession(); ok {
		response.ActiveSession = &active
	}

	if err = uow.Commit(ctx); err != nil {
		return GetCustomizingSessionsQueryResponse{}, err
	}

	return response, nil
}
