package memory

import (
	"context"

	"pizzapos/internal/core/domain/model/catalog"
	"pizzapos/internal/pkg/errs"
)

// CatalogRepository stores the single catalog aggregate.
type CatalogRepository struct {
	store *Store
}

// Get retrieves the catalog.
func (r *CatalogRepository) Get(_ context.Context) (*catalog.Catalog, error) {
	if r.store.catalog == nil {
		return nil, errs.NewObjectNotFoundError("catalog", nil)
	}
	return r.store.catalog, nil
}

// Update persists the catalog.
func (r *CatalogRepository) Update(_ context.Context, aggregate *catalog.Catalog) error {
	if aggregate == nil {
		return errs.NewValueIsRequiredError("aggregate")
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	r.store.catalog = aggregate
	return nil
}
