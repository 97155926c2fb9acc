package impl

import (
	"context"
	"log/slog"

	deliverycontext "gemstore/internal/delivery/context"
	"gemstore/internal/domain/entity"
	domainerrors "gemstore/internal/domain/errors"
	"gemstore/internal/domain/repository"
	"gemstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager   repository.TransactionManager
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.AddressRepository
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		txManager:   params.TxManager,
		addressRepo: params.AddressRepo,
		logger:      params.Logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAddresses returns the user's addresses, default first.
func (srv *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.ShippingAddress, error) {
	addresses, err := srv.addressRepo.FindAddressesByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list addresses", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// CreateAddress adds an address for the user. When the new address is flagged
// default, every other default of the user is cleared inside the same
// transaction, keeping the single-default invariant.
func (srv *addressService) CreateAddress(ctx context.Context, input *usecase.CreateAddressInput) (*entity.ShippingAddress, error) {
	address := &entity.ShippingAddress{
		UserID:       input.UserID,
		FullName:     input.FullName,
		AddressLine1: input.AddressLine1,
		AddressLine2: input.AddressLine2,
		City:         input.City,
		State:        input.State,
		PostalCode:   input.PostalCode,
		Country:      input.Country,
		Phone:        input.Phone,
		IsDefault:    input.IsDefault,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		if input.IsDefault {
			if err := addressRepo.ClearDefaultAddresses(ctx, input.UserID); err != nil {
				return errors.Wrap(err, "failed to clear previous default addresses")
			}
		}

		if err := addressRepo.CreateAddress(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create address")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create address", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Address created", slog.Any("addressID", address.ID), slog.Any("userID", address.UserID))

	return address, nil
}

// UpdateAddress merges the provided fields into an address owned by the user.
// Promoting the address to default clears other defaults atomically.
func (srv *addressService) UpdateAddress(ctx context.Context, input *usecase.UpdateAddressInput) (*entity.ShippingAddress, error) {
	var updated *entity.ShippingAddress

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		address, err := addressRepo.FindAddressByIDAndUser(ctx, input.AddressID, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return domainerrors.ErrAddressNotFound.WrapMessage("address not found")
			}

			return errors.Wrap(err, "failed to load address for update")
		}

		mergeAddressInput(address, input)

		if address.IsDefault {
			if err := addressRepo.ClearDefaultAddresses(ctx, input.UserID); err != nil {
				return errors.Wrap(err, "failed to clear previous default addresses")
			}
		}

		if err := addressRepo.UpdateAddress(ctx, address); err != nil {
			return errors.Wrap(err, "failed to update address")
		}

		updated = address

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update address", slog.Any("addressID", input.AddressID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// mergeAddressInput applies the non-nil fields of a partial update.
func mergeAddressInput(address *entity.ShippingAddress, input *usecase.UpdateAddressInput) {
	if input.FullName != nil {
		address.FullName = *input.FullName
	}
	if input.AddressLine1 != nil {
		address.AddressLine1 = *input.AddressLine1
	}
	if input.AddressLine2 != nil {
		address.AddressLine2 = *input.AddressLine2
	}
	if input.City != nil {
		address.City = *input.City
	}
	if input.State != nil {
		address.State = *input.State
	}
	if input.PostalCode != nil {
		address.PostalCode = *input.PostalCode
	}
	if input.Country != nil {
		address.Country = *input.Country
	}
	if input.Phone != nil {
		address.Phone = *input.Phone
	}
	if input.IsDefault != nil {
		address.IsDefault = *input.IsDefault
	}
}

// DeleteAddress removes an address owned by the user.
func (srv *addressService) DeleteAddress(ctx context.Context, addressID, userID uuid.UUID) error {
	if err := srv.addressRepo.DeleteAddressByIDAndUser(ctx, addressID, userID); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return domainerrors.ErrAddressNotFound.WrapMessage("address not found")
		}

		srv.log(ctx).Error("Failed to delete address", slog.Any("addressID", addressID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete address")
	}

	srv.log(ctx).Info("Address deleted", slog.Any("addressID", addressID), slog.Any("userID", userID))

	return nil
}

// SetDefaultAddress makes one owned address the default. Ownership is
// verified before any default is cleared, and the verify, clear and mark
// steps share one transaction: concurrent calls cannot leave a user with two
// defaults or zero usable state.
func (srv *addressService) SetDefaultAddress(ctx context.Context, addressID, userID uuid.UUID) (*entity.ShippingAddress, error) {
	var updated *entity.ShippingAddress

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		if _, err := addressRepo.FindAddressByIDAndUser(ctx, addressID, userID); err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return domainerrors.ErrAddressNotFound.WrapMessage("address not found")
			}

			return errors.Wrap(err, "failed to verify address ownership")
		}

		if err := addressRepo.ClearDefaultAddresses(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to clear previous default addresses")
		}

		address, err := addressRepo.MarkDefaultAddress(ctx, addressID, userID)
		if err != nil {
			return errors.Wrap(err, "failed to mark default address")
		}

		updated = address

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to set default address", slog.Any("addressID", addressID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Default address changed", slog.Any("addressID", addressID), slog.Any("userID", userID))

	return updated, nil
}

// GetShippingRates returns the flat delivery options quoted to the storefront.
func (srv *addressService) GetShippingRates(_ context.Context) ([]entity.ShippingRate, error) {
	return []entity.ShippingRate{
		{
			ID:            "standard",
			Name:          "Standard Shipping",
			Price:         10.00,
			EstimatedDays: "3-5 business days",
		},
		{
			ID:            "express",
			Name:          "Express Shipping",
			Price:         20.00,
			EstimatedDays: "1-2 business days",
		},
	}, nil
}
