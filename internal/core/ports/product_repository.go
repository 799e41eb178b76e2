package ports

import (
	"context"

	"github.com/vinimompox/products-service/internal/core/domain"
)

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindAll(ctx context.Context) ([]*domain.Product, error)
	ExistsByID(ctx context.Context, id string) (bool, error)

	// Update performs a single atomic conditional write: all mutable fields
	// of p replace the stored record and the version counter is incremented
	// by one. When expectedVersion is non-nil the write only matches a record
	// whose stored version equals it; a stale value yields
	// domain.ErrVersionConflict and leaves the record untouched. An unknown
	// id yields domain.ErrProductNotFound.
	Update(ctx context.Context, p *domain.Product, expectedVersion *int64) (*domain.Product, error)

	// Delete removes the record unconditionally. No version check: delete is
	// terminal, so staleness cannot corrupt anything.
	Delete(ctx context.Context, id string) error
}
