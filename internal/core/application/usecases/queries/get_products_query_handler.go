package queries

import (
	"context"
	"strings"

	"pizzapos/internal/core/ports"
)

// GetProductsQueryHandler reads the catalog and applies the search and
// category filters.
type GetProductsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetProductsQueryHandler creates a handler for product listings.
func NewGetProductsQueryHandler(uowFactory ports.UnitOfWorkFactory) GetProductsQueryHandler {
	return GetProductsQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query and returns the filtered read model.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) (GetProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProductsQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GetProductsQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cat, err := uow.CatalogRepository().Get(ctx)
	if err != nil {
		return GetProductsQueryResponse{}, err
	}

	term, err := uow.TerminalRepository().Get(ctx)
	if err != nil {
		return GetProductsQueryResponse{}, err
	}

	// Empty filters fall back to the ones stored on the terminal, so a bare
	// listing reflects what the operator last typed and selected.
	settings := term.Settings()
	search := query.Search()
	if search == "" {
		search = settings.SearchQuery
	}
	search = strings.ToLower(search)
	category := query.Category()
	if category == "" {
		category = settings.SelectedCategory
	}
	products := make([]ProductResponse, 0)
	for _, product := range cat.Products() {
		if category != "" && category != "all" && product.Category() != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(product.Name()), search) {
			continue
		}
		products = append(products, ProductResponse{
			ID:              product.ID(),
			Name:            product.Name(),
			Category:        product.Category(),
			Price:           product.Price(),
			Image:           product.Image(),
			Description:     product.Description(),
			Stock:           product.Stock(),
			StockStatus:     product.StockStatus(),
			PrepTimeMin:     product.PrepTimeMin(),
			Customizable:    product.Customizable(),
			BaseIngredients: product.BaseIngredients(),
		})
	}

	response := GetProductsQueryResponse{
		Products:         products,
		RecentProductIDs: term.RecentProductIDs(),
	}

	if err = uow.Commit(ctx); err != nil {
		return GetProductsQueryResponse{}, err
	}

	return response, nil
}
