package repository

import (
	"context"

	"gemstore/internal/domain/entity"
	"gemstore/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for catalog persistence.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs retrieves the products matching the given IDs in one query.
	// IDs that do not resolve are simply absent from the result; callers that
	// need all-or-nothing semantics must check the returned set themselves.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// FindAll retrieves the full catalog.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// DeleteAll removes every product. Used by catalog initialization.
	DeleteAll(ctx context.Context) error

	// CreateBatch persists the given products in one statement.
	CreateBatch(ctx context.Context, products []*entity.Product) error
}
