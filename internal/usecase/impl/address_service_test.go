package impl

import (
	"context"
	"testing"

	"gemstore/internal/domain/entity"
	domainerrors "gemstore/internal/domain/errors"
	"gemstore/internal/domain/repository"
	mockRepo "gemstore/internal/mocks/repository"
	"gemstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type addressServiceFixtures struct {
	service     usecase.AddressUsecase
	txManager   *mockRepo.MockTransactionManager
	addressRepo *mockRepo.MockAddressRepository
}

func createTestAddressService(t *testing.T) addressServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)

	service := NewAddressService(AddressServiceParams{
		TxManager:   txManager,
		AddressRepo: addressRepo,
		Logger:      newDiscardLogger(),
	})

	return addressServiceFixtures{
		service:     service,
		txManager:   txManager,
		addressRepo: addressRepo,
	}
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestAddressService_CreateAddress_DefaultClearsOthers(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	userID := uuid.New()

	txAddressRepo := mockRepo.NewMockAddressRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("AddressRepo").Return(txAddressRepo)
	runTx(fx.txManager, factory)

	txAddressRepo.On("ClearDefaultAddresses", mock.Anything, userID).Return(nil)
	txAddressRepo.On("CreateAddress", mock.Anything, mock.AnythingOfType("*entity.ShippingAddress")).
		Run(func(args mock.Arguments) {
			address := args.Get(1).(*entity.ShippingAddress)
			address.ID = uuid.New()
		}).
		Return(nil)

	address, err := fx.service.CreateAddress(ctx, &usecase.CreateAddressInput{
		UserID:       userID,
		FullName:     "Alice Example",
		AddressLine1: "1 Main St",
		City:         "Springfield",
		PostalCode:   "12345",
		Country:      "USA",
		IsDefault:    true,
	})

	require.NoError(t, err)
	assert.True(t, address.IsDefault)
	txAddressRepo.AssertCalled(t, "ClearDefaultAddresses", mock.Anything, userID)
}

func TestAddressService_CreateAddress_NonDefaultSkipsClear(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	userID := uuid.New()

	txAddressRepo := mockRepo.NewMockAddressRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("AddressRepo").Return(txAddressRepo)
	runTx(fx.txManager, factory)

	txAddressRepo.On("CreateAddress", mock.Anything, mock.AnythingOfType("*entity.ShippingAddress")).Return(nil)

	_, err := fx.service.CreateAddress(ctx, &usecase.CreateAddressInput{
		UserID:       userID,
		FullName:     "Alice Example",
		AddressLine1: "1 Main St",
		City:         "Springfield",
		PostalCode:   "12345",
		Country:      "USA",
	})

	require.NoError(t, err)
	txAddressRepo.AssertNotCalled(t, "ClearDefaultAddresses", mock.Anything, mock.Anything)
}

func TestAddressService_UpdateAddress_MergesFields(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	userID := uuid.New()
	addressID := uuid.New()
	stored := &entity.ShippingAddress{
		ID:           addressID,
		UserID:       userID,
		FullName:     "Alice Example",
		AddressLine1: "1 Main St",
		City:         "Springfield",
		PostalCode:   "12345",
		Country:      "USA",
	}

	txAddressRepo := mockRepo.NewMockAddressRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("AddressRepo").Return(txAddressRepo)
	runTx(fx.txManager, factory)

	txAddressRepo.On("FindAddressByIDAndUser", mock.Anything, addressID, userID).Return(stored, nil)
	txAddressRepo.On("UpdateAddress", mock.Anything, mock.AnythingOfType("*entity.ShippingAddress")).Return(nil)

	updated, err := fx.service.UpdateAddress(ctx, &usecase.UpdateAddressInput{
		AddressID: addressID,
		UserID:    userID,
		City:      strPtr("Shelbyville"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Shelbyville", updated.City)
	// Untouched fields keep their stored values
	assert.Equal(t, "Alice Example", updated.FullName)
	assert.Equal(t, "1 Main St", updated.AddressLine1)
}

func TestAddressService_UpdateAddress_PromoteToDefault(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	userID := uuid.New()
	addressID := uuid.New()
	stored := &entity.ShippingAddress{ID: addressID, UserID: userID, IsDefault: false}

	txAddressRepo := mockRepo.NewMockAddressRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("AddressRepo").Return(txAddressRepo)
	runTx(fx.txManager, factory)

	txAddressRepo.On("FindAddressByIDAndUser", mock.Anything, addressID, userID).Return(stored, nil)
	txAddressRepo.On("ClearDefaultAddresses", mock.Anything, userID).Return(nil)
	txAddressRepo.On("UpdateAddress", mock.Anything, mock.AnythingOfType("*entity.ShippingAddress")).Return(nil)

	updated, err := fx.service.UpdateAddress(ctx, &usecase.UpdateAddressInput{
		AddressID: addressID,
		UserID:    userID,
		IsDefault: boolPtr(true),
	})

	require.NoError(t, err)
	assert.True(t, updated.IsDefault)
}

func TestAddressService_SetDefaultAddress(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	userID := uuid.New()
	addressID := uuid.New()
	stored := &entity.ShippingAddress{ID: addressID, UserID: userID}
	marked := &entity.ShippingAddress{ID: addressID, UserID: userID, IsDefault: true}

	txAddressRepo := mockRepo.NewMockAddressRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("AddressRepo").Return(txAddressRepo)
	runTx(fx.txManager, factory)

	txAddressRepo.On("FindAddressByIDAndUser", mock.Anything, addressID, userID).Return(stored, nil)
	txAddressRepo.On("ClearDefaultAddresses", mock.Anything, userID).Return(nil)
	txAddressRepo.On("MarkDefaultAddress", mock.Anything, addressID, userID).Return(marked, nil)

	address, err := fx.service.SetDefaultAddress(ctx, addressID, userID)

	require.NoError(t, err)
	assert.True(t, address.IsDefault)
}

func TestAddressService_SetDefaultAddress_ForeignAddress(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	userID := uuid.New()
	foreignID := uuid.New()

	txAddressRepo := mockRepo.NewMockAddressRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("AddressRepo").Return(txAddressRepo)
	runTx(fx.txManager, factory)

	// Ownership check fails before anything is mutated.
	txAddressRepo.On("FindAddressByIDAndUser", mock.Anything, foreignID, userID).
		Return(nil, repository.ErrAddressNotFound)

	address, err := fx.service.SetDefaultAddress(ctx, foreignID, userID)

	require.Error(t, err)
	assert.Nil(t, address)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
	txAddressRepo.AssertNotCalled(t, "ClearDefaultAddresses", mock.Anything, mock.Anything)
	txAddressRepo.AssertNotCalled(t, "MarkDefaultAddress", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddressService_DeleteAddress_NotFound(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	addressID := uuid.New()
	userID := uuid.New()

	fx.addressRepo.On("DeleteAddressByIDAndUser", ctx, addressID, userID).
		Return(repository.ErrAddressNotFound)

	err := fx.service.DeleteAddress(ctx, addressID, userID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}

func TestAddressService_GetShippingRates(t *testing.T) {
	fx := createTestAddressService(t)

	rates, err := fx.service.GetShippingRates(context.Background())

	require.NoError(t, err)
	require.Len(t, rates, 2)
	assert.Equal(t, "standard", rates[0].ID)
	assert.Equal(t, 10.00, rates[0].Price)
	assert.Equal(t, "express", rates[1].ID)
	assert.Equal(t, 20.00, rates[1].Price)
}
