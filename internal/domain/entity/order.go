package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

// Order lifecycle states. Orders start as pending and are never deleted in
// normal operation; only the status field is mutated after creation.
const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid reports whether the status is one of the known lifecycle states.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// OrderItem is one line of an order: a product reference, a quantity and the
// unit price captured at order time. The price is pinned at creation and is
// never re-read from the catalog.
type OrderItem struct {
	ProductID uuid.UUID // Reference to the ordered product.
	Quantity  int       // Number of units. Always >= 1.
	Price     float64   // Unit price snapshot taken when the order was created.
}

// Order belongs to exactly one user. Invariant: TotalPrice equals the sum of
// item price x quantity at creation time.
type Order struct {
	ID              uuid.UUID   // The unique identifier for the order.
	UserID          uuid.UUID   // The owning user.
	Items           []OrderItem // Ordered list of line items.
	TotalPrice      float64     // Sum of quantity x pinned unit price.
	ShippingAddress string      // Free-text shipping address.
	Status          OrderStatus // Current lifecycle state.
	CreatedAt       time.Time   // Timestamp of when this order was placed.
	UpdatedAt       time.Time   // Timestamp of the last modification.
}
