package usecase

import (
	"context"

	"gemstore/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines the data required to add a product to the catalog.
type CreateProductInput struct {
	Name        string  `validate:"required,max=255"`
	Description string  `validate:"max=2000"`
	Price       float64 `validate:"gte=0"`
	ImageURL    string  `validate:"omitempty,url"`
	Category    string  `validate:"max=100"`
}

// CatalogUsecase defines the interface for product catalog operations.
type CatalogUsecase interface {
	// ListProducts returns the full catalog.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// GetProduct returns one product by ID.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// GetProductsByIDs returns the products that exist among the given IDs
	// in one lookup. IDs with no matching product are simply absent from
	// the result.
	GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// CreateProduct adds a product to the catalog.
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// InitCatalog resets the catalog to the built-in sample products and
	// returns them. Existing products are removed in the same transaction.
	InitCatalog(ctx context.Context) ([]*entity.Product, error)
}
