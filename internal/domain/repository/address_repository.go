package repository

import (
	"context"

	"gemstore/internal/domain/entity"
	"gemstore/internal/errors"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address does not exist or belongs to
// a different user. Ownership mismatch is indistinguishable from absence.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for shipping-address persistence.
// Every operation is scoped to the owning user.
type AddressRepository interface {
	// CreateAddress persists a new address for a user.
	CreateAddress(ctx context.Context, address *entity.ShippingAddress) error

	// FindAddressesByUser retrieves all addresses owned by the user,
	// default address first.
	FindAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ShippingAddress, error)

	// FindAddressByIDAndUser retrieves an address only if the user owns it.
	FindAddressByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.ShippingAddress, error)

	// UpdateAddress updates an existing address record.
	UpdateAddress(ctx context.Context, address *entity.ShippingAddress) error

	// DeleteAddressByIDAndUser removes an address owned by the user.
	DeleteAddressByIDAndUser(ctx context.Context, id, userID uuid.UUID) error

	// ClearDefaultAddresses unsets the default flag on every address owned
	// by the user.
	ClearDefaultAddresses(ctx context.Context, userID uuid.UUID) error

	// MarkDefaultAddress sets the default flag on an address owned by the
	// user and returns the updated record.
	MarkDefaultAddress(ctx context.Context, id, userID uuid.UUID) (*entity.ShippingAddress, error)
}
