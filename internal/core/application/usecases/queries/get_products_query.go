// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"pizzapos/internal/core/domain/model/catalog"
	"pizzapos/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery retrieves the product catalog, optionally narrowed by a
// case-insensitive name search and a category. Empty filters fall back to
// the ones stored in the terminal settings; the literal category "all"
// matches everything.
//
// Example:
//
//	query := NewGetProductsQuery("marg", "pizza")
//	handler := NewGetProductsQueryHandler(uowFactory)
//
//	products, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve products: %w", err)
//	}
type GetProductsQuery struct {
	search   string
	category string

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a filtered product listing query.
func NewGetProductsQuery(search, category string) GetProductsQuery {
	return GetProductsQuery{
		search:   search,
		category: category,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// Search returns the name filter.
func (q GetProductsQuery) Search() string {
	return q.search
}

// Category returns the category filter.
func (q GetProductsQuery) Category() string {
	return q.category
}

// ProductResponse is the read model for one catalog product.
type ProductResponse struct {
	ID              string
	Name            string
	Category        string
	Price           float64
	Image           string
	Description     string
	Stock           int
	StockStatus     catalog.StockStatus
	PrepTimeMin     int
	Customizable    bool
	BaseIngredients []string
}

// GetProductsQueryResponse carries the filtered products plus the bounded
// recently-ordered list from the terminal.
type GetProductsQueryResponse struct {
	Products         []ProductResponse
	RecentProductIDs []string
}
