package postgres

import (
	"context"

	"gemstore/internal/domain/entity"
	domainerrors "gemstore/internal/domain/errors"
	"gemstore/internal/domain/repository"
	"gemstore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// addressRepository implements the domain.AddressRepository interface using GORM.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// CreateAddress persists a new shipping address.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.ShippingAddress) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("address references a missing user")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindAddressesByUser retrieves all shipping addresses of a user, default first.
func (repo *addressRepository) FindAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ShippingAddress, error) {
	var addressModels []model.ShippingAddressModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&addressModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	addresses := make([]*entity.ShippingAddress, 0, len(addressModels))
	for i := range addressModels {
		addresses = append(addresses, toAddressDomain(&addressModels[i]))
	}

	return addresses, nil
}

// FindAddressByIDAndUser retrieves one address scoped to its owner.
func (repo *addressRepository) FindAddressByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.ShippingAddress, error) {
	var addressM model.ShippingAddressModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address")
	}

	return toAddressDomain(&addressM), nil
}

// UpdateAddress saves the full state of an existing address owned by its user.
func (repo *addressRepository) UpdateAddress(ctx context.Context, address *entity.ShippingAddress) error {
	addressM := fromAddressDomain(address)

	result := repo.db.WithContext(ctx).Model(&model.ShippingAddressModel{}).
		Where("id = ? AND user_id = ?", address.ID, address.UserID).
		Updates(map[string]any{
			"full_name":      addressM.FullName,
			"address_line1":  addressM.AddressLine1,
			"address_line2":  addressM.AddressLine2,
			"city":           addressM.City,
			"state":          addressM.State,
			"postal_code":    addressM.PostalCode,
			"country":        addressM.Country,
			"phone":          addressM.Phone,
			"is_default":     addressM.IsDefault,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update address")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// DeleteAddressByIDAndUser removes one address scoped to its owner.
func (repo *addressRepository) DeleteAddressByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ShippingAddressModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete address")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// ClearDefaultAddresses unsets the default flag on every address of a user.
func (repo *addressRepository) ClearDefaultAddresses(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).Model(&model.ShippingAddressModel{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Update("is_default", false).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear default addresses")
	}

	return nil
}

// MarkDefaultAddress sets the default flag on one address of a user and
// returns the updated record.
func (repo *addressRepository) MarkDefaultAddress(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.ShippingAddress, error) {
	result := repo.db.WithContext(ctx).Model(&model.ShippingAddressModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_default", true)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark default address")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrAddressNotFound
	}

	return repo.FindAddressByIDAndUser(ctx, id, userID)
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM ShippingAddressModel to a domain entity.
func toAddressDomain(data *model.ShippingAddressModel) *entity.ShippingAddress {
	if data == nil {
		return nil
	}

	return &entity.ShippingAddress{
		ID:           data.ID,
		UserID:       data.UserID,
		FullName:     data.FullName,
		AddressLine1: data.AddressLine1,
		AddressLine2: data.AddressLine2,
		City:         data.City,
		State:        data.State,
		PostalCode:   data.PostalCode,
		Country:      data.Country,
		Phone:        data.Phone,
		IsDefault:    data.IsDefault,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromAddressDomain converts a domain entity to a GORM ShippingAddressModel.
func fromAddressDomain(data *entity.ShippingAddress) *model.ShippingAddressModel {
	if data == nil {
		return nil
	}

	return &model.ShippingAddressModel{
		ID:           data.ID,
		UserID:       data.UserID,
		FullName:     data.FullName,
		AddressLine1: data.AddressLine1,
		AddressLine2: data.AddressLine2,
		City:         data.City,
		State:        data.State,
		PostalCode:   data.PostalCode,
		Country:      data.Country,
		Phone:        data.Phone,
		IsDefault:    data.IsDefault,
	}
}
