package usecase

import (
	"context"
	"errors"

	"shopp_backend/internal/feature/catalog/domain/entity"
)

const (
	// NewCollectionSize is the number of most recent products served by /newcollections.
	NewCollectionSize = 8
	// PopularCategory is the category served by /popularinwomen.
	PopularCategory = "women"
	// PopularSize is the number of products served by /popularinwomen.
	PopularSize = 4
)

// ProductRepository abstracts the persistence layer for catalog products.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ProductRepository interface {
	// Create persists a new product, assigning it the next sequential id
	// (max existing id + 1, or 1 on an empty catalog) within one transaction.
	Create(ctx context.Context, p *entity.Product) error

	// Delete removes the product with the given id.
	// It returns ErrProductNotFound when no row matched.
	Delete(ctx context.Context, id uint) error

	// ListAll returns every product in id order.
	ListAll(ctx context.Context) ([]entity.Product, error)

	// ListNewest returns the last n products by id order, oldest first.
	ListNewest(ctx context.Context, n int) ([]entity.Product, error)

	// ListByCategory returns the first n products of a category in id order.
	ListByCategory(ctx context.Context, category string, n int) ([]entity.Product, error)
}

// catalogUsecase provides business logic for catalog operations.
type catalogUsecase struct {
	products ProductRepository
}

// NewCatalogUsecase creates a new catalogUsecase with the given repository.
func NewCatalogUsecase(products ProductRepository) *catalogUsecase {
	return &catalogUsecase{products: products}
}

// AddProduct stores a new product. Products start out available.
func (u *catalogUsecase) AddProduct(ctx context.Context, p *entity.Product) error {
	p.Available = true
	return u.products.Create(ctx, p)
}

// RemoveProduct deletes a product by id.
// Removing an id that does not exist is a silent no-op: the admin panel
// expects a success response either way.
func (u *catalogUsecase) RemoveProduct(ctx context.Context, id uint) error {
	if err := u.products.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return nil
		}
		return err
	}
	return nil
}

// ListAll returns the full catalog.
func (u *catalogUsecase) ListAll(ctx context.Context) ([]entity.Product, error) {
	return u.products.ListAll(ctx)
}

// NewCollections returns the last NewCollectionSize products by insertion order.
func (u *catalogUsecase) NewCollections(ctx context.Context) ([]entity.Product, error) {
	return u.products.ListNewest(ctx, NewCollectionSize)
}

// PopularInWomen returns the first PopularSize products in the women category.
func (u *catalogUsecase) PopularInWomen(ctx context.Context) ([]entity.Product, error) {
	return u.products.ListByCategory(ctx, PopularCategory, PopularSize)
}
