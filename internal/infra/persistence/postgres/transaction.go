package postgres

import (
	"context"

	domainerrors "gemstore/internal/domain/errors"
	"gemstore/internal/domain/repository"
	"gemstore/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements repository.TransactionManager using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a new GORM-based transaction manager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function inside a single database transaction.
// Repositories obtained from the factory all share the transaction handle,
// so a returned error rolls back every write the function performed.
func (manager *gormTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	err := manager.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepositoryFactory{tx: tx})
	})
	if err != nil {
		// Domain errors pass through untouched so callers keep their HTTP mapping.
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return err
		}

		return domainerrors.NewDatabaseExecuteError(err, "transaction failed")
	}

	return nil
}

// gormRepositoryFactory hands out repositories bound to one transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (factory *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(factory.tx)
}

func (factory *gormRepositoryFactory) ProductRepo() repository.ProductRepository {
	return NewProductRepository(factory.tx)
}

func (factory *gormRepositoryFactory) OrderRepo() repository.OrderRepository {
	return NewOrderRepository(factory.tx)
}

func (factory *gormRepositoryFactory) AddressRepo() repository.AddressRepository {
	return NewAddressRepository(factory.tx)
}
