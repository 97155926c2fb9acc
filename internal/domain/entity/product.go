package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item. There is no uniqueness constraint beyond the
// generated ID; two products may share a name.
type Product struct {
	ID          uuid.UUID // The unique identifier for the product.
	Name        string    // Display name.
	Description string    // Free-form description text.
	Price       float64   // Unit price. Never negative.
	ImageURL    string    // Reference to the product image.
	Category    string    // Grouping label, e.g. "Rings".
	CreatedAt   time.Time // Timestamp of when this product was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
