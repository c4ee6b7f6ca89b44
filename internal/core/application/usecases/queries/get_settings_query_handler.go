package queries

import (
	"context"

	"pizzapos/internal/core/ports"
)

// GetSettingsQueryHandler reads the terminal settings.
type GetSettingsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetSettingsQueryHandler creates a handler for settings reads.
func NewGetSettingsQueryHandler(uowFactory ports.UnitOfWorkFactory) GetSettingsQueryHandler {
	return GetSettingsQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query.
func (h GetSettingsQueryHandler) Handle(
	ctx context.Context,
	query GetSettingsQuery,
) (GetSettingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSettingsQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GetSettingsQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	term, err := uow.TerminalRepository().Get(ctx)
	if err != nil {
		return GetSettingsQueryResponse{}, err
	}

	settings := term.Settings()
	response := GetSettingsQueryResponse{
		UserRole:          settings.UserRole,
		RushMode:          settings.RushMode,
		ShowReadinessView: settings.ShowReadinessView,
		SearchQuery:       settings.SearchQuery,
		SelectedCategory:  settings.SelectedCategory,
	}

	if err = uow.Commit(ctx); err != nil {
		return GetSettingsQueryResponse{}, err
	}

	return response, nil
}
