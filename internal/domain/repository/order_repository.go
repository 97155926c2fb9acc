package repository

import (
	"context"

	"gemstore/internal/domain/entity"
	"gemstore/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not
// found or is owned by a different user. The two cases are deliberately not
// distinguished so callers cannot probe which order IDs exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// Create persists a new order together with its line items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByUser retrieves all orders owned by the user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// FindByIDAndUser retrieves an order only if it is owned by the user.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Order, error)

	// UpdateStatus replaces the status of an order owned by the user and
	// returns the updated record.
	UpdateStatus(ctx context.Context, id, userID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
}
