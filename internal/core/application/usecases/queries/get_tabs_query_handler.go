package queries

import (
	"context"

	"pizzapos/internal/core/ports"
)

// GetTabsQueryHandler reads the terminal's open tabs.
type GetTabsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetTabsQueryHandler creates a handler for tab listings.
func NewGetTabsQueryHandler(uowFactory ports.UnitOfWorkFactory) GetTabsQueryHandler {
	return GetTabsQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query.
func (h GetTabsQueryHandler) Handle(
	ctx context.Context,
	query GetTabsQuery,
) (GetTabsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTabsQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GetTabsQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	term, err := uow.TerminalRepository().Get(ctx)
	if err != nil {
		return GetTabsQueryResponse{}, err
	}

	tabs := make([]TabResponse, 0, len(term.Tabs()))
	for _, tab := range term.Tabs() {
		tabs = append(tabs, TabResponse{
			ID:        tab.ID(),
			Name:      tab.Name(),
			ItemCount: tab.ItemCount(),
		})
	}

	response := GetTabsQueryResponse{
		Tabs:        tabs,
		ActiveIndex: term.ActiveTabIndex(),
	}

	if err = uow.Commit(ctx); err != nil {
		return GetTabsQueryResponse{}, err
	}

	return response, nil
}
