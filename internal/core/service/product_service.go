package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vinimompox/products-service/internal/core/domain"
	"github.com/vinimompox/products-service/internal/core/ports"
)

// ProductService implements catalog CRUD. Writes delegate concurrency
// control to the repository: the version comparison and the field write
// happen in one atomic store operation, never as read-then-write here.
type ProductService struct {
	repo ports.ProductRepository
	log  zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, log: log}
}

func (s *ProductService) Create(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Name:        in.Name,
		Category:    in.Category,
		Vintage:     in.Vintage,
		Price:       in.Price,
		Stock:       in.Stock,
		Description: in.Description,
		Version:     0,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.FindAll(ctx)
}

// Update overwrites every mutable field from in. This is a full replace: a
// zero-valued input field clears the stored one. On success the stored
// version is exactly expectedVersion+1. A losing writer gets
// domain.ErrVersionConflict immediately; nobody blocks on a lock.
func (s *ProductService) Update(ctx context.Context, id string, in ports.ProductInput, expectedVersion *int64) (*domain.Product, error) {
	product := &domain.Product{
		ID:          id,
		Name:        in.Name,
		Category:    in.Category,
		Vintage:     in.Vintage,
		Price:       in.Price,
		Stock:       in.Stock,
		Description: in.Description,
	}

	updated, err := s.repo.Update(ctx, product, expectedVersion)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("product_id", updated.ID).
		Int64("version", updated.Version).
		Msg("product updated")
	return updated, nil
}

// Delete removes the product after an existence check. There is no version
// check on delete; see the repository contract.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if !exists {
		return domain.ErrProductNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	s.log.Info().Str("product_id", id).Msg("product deleted")
	return nil
}
