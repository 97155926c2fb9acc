package repository

import (
	"context"
	"testing"

	"gemstore/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a testify mock for repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)

	// Allow tests to drive the transactional closure with their own factory
	// and propagate its error, mirroring the real manager.
	if rf, ok := args.Get(0).(func(context.Context, func(repository.RepositoryFactory) error) error); ok {
		return rf(ctx, fn)
	}

	return args.Error(0)
}

// MockRepositoryFactory is a testify mock for repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func NewMockRepositoryFactory(t *testing.T) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	args := m.Called()

	return args.Get(0).(repository.UserRepository)
}

func (m *MockRepositoryFactory) ProductRepo() repository.ProductRepository {
	args := m.Called()

	return args.Get(0).(repository.ProductRepository)
}

func (m *MockRepositoryFactory) OrderRepo() repository.OrderRepository {
	args := m.Called()

	return args.Get(0).(repository.OrderRepository)
}

func (m *MockRepositoryFactory) AddressRepo() repository.AddressRepository {
	args := m.Called()

	return args.Get(0).(repository.AddressRepository)
}
