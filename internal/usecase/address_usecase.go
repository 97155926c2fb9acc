package usecase

import (
	"context"

	"gemstore/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAddressInput defines the data required to add a shipping address.
type CreateAddressInput struct {
	UserID       uuid.UUID `validate:"required"`
	FullName     string    `validate:"required,max=255"`
	AddressLine1 string    `validate:"required,max=255"`
	AddressLine2 string    `validate:"max=255"`
	City         string    `validate:"required,max=100"`
	State        string    `validate:"max=100"`
	PostalCode   string    `validate:"required,max=20"`
	Country      string    `validate:"required,max=100"`
	Phone        string    `validate:"max=30"`
	IsDefault    bool
}

// UpdateAddressInput defines a partial update of an existing address. Nil
// fields keep their stored value.
type UpdateAddressInput struct {
	AddressID    uuid.UUID
	UserID       uuid.UUID
	FullName     *string `validate:"omitempty,max=255"`
	AddressLine1 *string `validate:"omitempty,max=255"`
	AddressLine2 *string `validate:"omitempty,max=255"`
	City         *string `validate:"omitempty,max=100"`
	State        *string `validate:"omitempty,max=100"`
	PostalCode   *string `validate:"omitempty,max=20"`
	Country      *string `validate:"omitempty,max=100"`
	Phone        *string `validate:"omitempty,max=30"`
	IsDefault    *bool
}

// AddressUsecase defines the interface for shipping-address operations.
// Invariant: a user has at most one default address at any time.
type AddressUsecase interface {
	// ListAddresses returns the user's addresses, default first.
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.ShippingAddress, error)

	// CreateAddress adds an address. When flagged default, all other
	// defaults of the user are cleared in the same transaction.
	CreateAddress(ctx context.Context, input *CreateAddressInput) (*entity.ShippingAddress, error)

	// UpdateAddress merges the given fields into an address owned by the
	// user. Promoting to default clears other defaults atomically.
	UpdateAddress(ctx context.Context, input *UpdateAddressInput) (*entity.ShippingAddress, error)

	// DeleteAddress removes an address owned by the user.
	DeleteAddress(ctx context.Context, addressID, userID uuid.UUID) error

	// SetDefaultAddress makes one owned address the default, clearing any
	// previous default in the same transaction.
	SetDefaultAddress(ctx context.Context, addressID, userID uuid.UUID) (*entity.ShippingAddress, error)

	// GetShippingRates returns the flat delivery options.
	GetShippingRates(ctx context.Context) ([]entity.ShippingRate, error)
}
