package ports

import (
	"context"

	"pizzapos/internal/core/domain/model/catalog"
)

// CatalogRepository stores the single catalog aggregate.
type CatalogRepository interface {
	// Get retrieves the catalog.
	Get(ctx context.Context) (*catalog.Catalog, error)

	// Update persists changes to the catalog (stock levels, topping statuses).
	Update(ctx context.Context, aggregate *catalog.Catalog) error
}
