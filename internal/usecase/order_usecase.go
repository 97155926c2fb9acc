package usecase

import (
	"context"

	"gemstore/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	ProductID uuid.UUID `validate:"required"`
	Quantity  int       `validate:"required,gte=1"`
}

// CreateOrderInput defines the data required to place an order.
type CreateOrderInput struct {
	UserID          uuid.UUID        `validate:"required"`
	Items           []OrderItemInput `validate:"required,min=1,dive"`
	ShippingAddress string           `validate:"required"`
}

// UpdateOrderStatusInput defines the data required to move an order through
// its lifecycle.
type UpdateOrderStatusInput struct {
	OrderID uuid.UUID
	UserID  uuid.UUID
	Status  entity.OrderStatus `validate:"required"`
}

// OrderUsecase defines the interface for order business operations. Every
// operation is scoped to the requesting user.
type OrderUsecase interface {
	// CreateOrder places an order with prices pinned from the current
	// catalog. If any referenced product is missing, nothing is persisted.
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)

	// ListOrders returns the user's orders, newest first.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// GetOrder returns one order owned by the user.
	GetOrder(ctx context.Context, orderID, userID uuid.UUID) (*entity.Order, error)

	// UpdateOrderStatus moves an order owned by the user to a new status.
	UpdateOrderStatus(ctx context.Context, input *UpdateOrderStatusInput) (*entity.Order, error)
}
