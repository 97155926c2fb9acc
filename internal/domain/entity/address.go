package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShippingAddress is a delivery destination owned by exactly one user.
// Invariant: at most one address per user has IsDefault set.
type ShippingAddress struct {
	ID           uuid.UUID // The unique identifier for the address.
	UserID       uuid.UUID // The owning user.
	FullName     string    // Recipient full name.
	AddressLine1 string    // First street address line.
	AddressLine2 string    // Second street address line. Optional.
	City         string
	State        string
	PostalCode   string
	Country      string
	Phone        string    // Contact phone for the carrier.
	IsDefault    bool      // Marks the user's preferred address.
	CreatedAt    time.Time // Timestamp of when this address was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// ShippingRate is a flat-rate delivery option quoted to the storefront.
type ShippingRate struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	EstimatedDays string  `json:"estimatedDays"`
}
