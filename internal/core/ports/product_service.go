package ports

import (
	"context"

	"github.com/vinimompox/products-service/internal/core/domain"
)

// ProductInput carries every mutable product field. Update applies it as a
// full replace: a field omitted by the caller arrives as its zero value and
// overwrites the stored one. This is the contract of the PUT endpoint, not a
// partial patch.
type ProductInput struct {
	Name        string
	Category    string
	Vintage     int
	Price       float64
	Stock       int
	Description string
}

// ProductService defines use-case operations for catalog products.
type ProductService interface {
	Create(ctx context.Context, in ProductInput) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)

	// Update replaces all mutable fields under optimistic concurrency
	// control. A nil expectedVersion skips the version comparison.
	Update(ctx context.Context, id string, in ProductInput, expectedVersion *int64) (*domain.Product, error)

	Delete(ctx context.Context, id string) error
}
