package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/vinimompox/products-service/internal/core/domain"
	"github.com/vinimompox/products-service/internal/core/ports"
)

type stubProductRepo struct {
	products map[string]*domain.Product
	nextID   int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	r.nextID++
	clone := *p
	clone.ID = fmt.Sprintf("prod_%d", r.nextID)
	r.products[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) FindAll(_ context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubProductRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := r.products[id]
	return ok, nil
}

// Update mirrors the Mongo repo: one conditional compare-and-write, version
// incremented as part of the same operation.
func (r *stubProductRepo) Update(_ context.Context, p *domain.Product, expectedVersion *int64) (*domain.Product, error) {
	stored, ok := r.products[p.ID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	if expectedVersion != nil && stored.Version != *expectedVersion {
		return nil, domain.ErrVersionConflict
	}
	updated := *p
	updated.Version = stored.Version + 1
	r.products[p.ID] = &updated
	out := updated
	return &out, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func newProductService(repo *stubProductRepo) *ProductService {
	return NewProductService(repo, zerolog.Nop())
}

func seedProduct(t *testing.T, repo *stubProductRepo, version int64) *domain.Product {
	t.Helper()
	p, err := repo.Create(context.Background(), &domain.Product{
		Name:        "Malbec Reserva",
		Category:    "red",
		Vintage:     2019,
		Price:       24.5,
		Stock:       12,
		Description: "estate bottling",
		Version:     0,
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	p.Version = version
	repo.products[p.ID].Version = version
	return p
}

func versionPtr(v int64) *int64 { return &v }

func TestProductService_Create_StartsAtVersionZero(t *testing.T) {
	repo := newStubProductRepo()
	svc := newProductService(repo)

	created, err := svc.Create(context.Background(), ports.ProductInput{Name: "Chardonnay", Price: 9.9})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Version != 0 {
		t.Fatalf("expected version 0, got %d", created.Version)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
}

func TestProductService_Update_IncrementsVersion(t *testing.T) {
	repo := newStubProductRepo()
	svc := newProductService(repo)
	p := seedProduct(t, repo, 3)

	updated, err := svc.Update(context.Background(), p.ID, ports.ProductInput{
		Name:     "Malbec Reserva",
		Category: "red",
		Vintage:  2019,
		Price:    26.0,
		Stock:    10,
	}, versionPtr(3))
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Version != 4 {
		t.Fatalf("expected version 4, got %d", updated.Version)
	}
	if updated.Price != 26.0 || updated.Stock != 10 {
		t.Fatalf("fields not applied: %+v", updated)
	}
}

func TestProductService_Update_StaleVersionConflict(t *testing.T) {
	repo := newStubProductRepo()
	svc := newProductService(repo)
	p := seedProduct(t, repo, 3)

	if _, err := svc.Update(context.Background(), p.ID, ports.ProductInput{Name: "first"}, versionPtr(3)); err != nil {
		t.Fatalf("first update failed: %v", err)
	}

	// Same expected version again: the token is now stale.
	_, err := svc.Update(context.Background(), p.ID, ports.ProductInput{Name: "second"}, versionPtr(3))
	if err != domain.ErrVersionConflict {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), p.ID)
	if stored.Name != "first" || stored.Version != 4 {
		t.Fatalf("losing write must leave the record unchanged, got %+v", stored)
	}
}

func TestProductService_Update_FullReplaceClearsOmittedFields(t *testing.T) {
	repo := newStubProductRepo()
	svc := newProductService(repo)
	p := seedProduct(t, repo, 0)

	updated, err := svc.Update(context.Background(), p.ID, ports.ProductInput{Name: "Malbec"}, versionPtr(0))
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Description != "" || updated.Price != 0 || updated.Stock != 0 || updated.Vintage != 0 {
		t.Fatalf("omitted fields must reset to zero values, got %+v", updated)
	}
}

func TestProductService_Update_WithoutExpectedVersion(t *testing.T) {
	repo := newStubProductRepo()
	svc := newProductService(repo)
	p := seedProduct(t, repo, 7)

	updated, err := svc.Update(context.Background(), p.ID, ports.ProductInput{Name: "unchecked"}, nil)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Version != 8 {
		t.Fatalf("version must still increment, got %d", updated.Version)
	}
}

func TestProductService_Update_NotFound(t *testing.T) {
	svc := newProductService(newStubProductRepo())

	_, err := svc.Update(context.Background(), "missing", ports.ProductInput{}, versionPtr(0))
	if err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Delete_NotFound(t *testing.T) {
	svc := newProductService(newStubProductRepo())

	if err := svc.Delete(context.Background(), "999"); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Delete_Success(t *testing.T) {
	repo := newStubProductRepo()
	svc := newProductService(repo)
	p := seedProduct(t, repo, 0)

	if err := svc.Delete(context.Background(), p.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), p.ID); err != domain.ErrProductNotFound {
		t.Fatalf("expected record gone, got %v", err)
	}
}
