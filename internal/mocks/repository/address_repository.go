package repository

import (
	"context"
	"testing"

	"gemstore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAddressRepository is a testify mock for repository.AddressRepository.
type MockAddressRepository struct {
	mock.Mock
}

func NewMockAddressRepository(t *testing.T) *MockAddressRepository {
	m := &MockAddressRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAddressRepository) CreateAddress(ctx context.Context, address *entity.ShippingAddress) error {
	args := m.Called(ctx, address)

	return args.Error(0)
}

func (m *MockAddressRepository) FindAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ShippingAddress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.ShippingAddress), args.Error(1)
}

func (m *MockAddressRepository) FindAddressByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.ShippingAddress, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.ShippingAddress), args.Error(1)
}

func (m *MockAddressRepository) UpdateAddress(ctx context.Context, address *entity.ShippingAddress) error {
	args := m.Called(ctx, address)

	return args.Error(0)
}

func (m *MockAddressRepository) DeleteAddressByIDAndUser(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)

	return args.Error(0)
}

func (m *MockAddressRepository) ClearDefaultAddresses(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)

	return args.Error(0)
}

func (m *MockAddressRepository) MarkDefaultAddress(ctx context.Context, id, userID uuid.UUID) (*entity.ShippingAddress, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.ShippingAddress), args.Error(1)
}
