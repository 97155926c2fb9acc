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

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	txManager   *mockRepo.MockTransactionManager
	productRepo *mockRepo.MockProductRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewCatalogService(CatalogServiceParams{
		TxManager:   txManager,
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:     service,
		txManager:   txManager,
		productRepo: productRepo,
	}
}

func TestCatalogService_ListProducts(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	catalog := []*entity.Product{
		{ID: uuid.New(), Name: "Diamond Ring", Price: 2999.99},
		{ID: uuid.New(), Name: "Pearl Earrings", Price: 899.99},
	}
	fx.productRepo.On("FindAll", ctx).Return(catalog, nil)

	products, err := fx.service.ListProducts(ctx)

	require.NoError(t, err)
	assert.Equal(t, catalog, products)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	missingID := uuid.New()
	fx.productRepo.On("FindByID", ctx, missingID).Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.GetProduct(ctx, missingID)

	require.Error(t, err)
	assert.Nil(t, product)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), missingID.String())
}

func TestCatalogService_GetProductsByIDs_ReturnsFoundSubset(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	found := &entity.Product{ID: uuid.New(), Name: "Diamond Ring", Price: 2999.99}
	missingID := uuid.New()
	ids := []uuid.UUID{found.ID, missingID}

	// A missing ID shrinks the result, it does not fail the lookup.
	fx.productRepo.On("FindByIDs", ctx, ids).Return([]*entity.Product{found}, nil)

	products, err := fx.service.GetProductsByIDs(ctx, ids)

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, found.ID, products[0].ID)
}

func TestCatalogService_GetProductsByIDs_EmptyInput(t *testing.T) {
	fx := createTestCatalogService(t)

	products, err := fx.service.GetProductsByIDs(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, products)
	fx.productRepo.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
}

func TestCatalogService_CreateProduct(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(args mock.Arguments) {
			product := args.Get(1).(*entity.Product)
			product.ID = uuid.New()
		}).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:     "Opal Pendant",
		Price:    349.50,
		Category: "necklaces",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, "Opal Pendant", product.Name)
	assert.Equal(t, 349.50, product.Price)
}

func TestCatalogService_CreateProduct_NegativePrice(t *testing.T) {
	fx := createTestCatalogService(t)

	product, err := fx.service.CreateProduct(context.Background(), &usecase.CreateProductInput{
		Name:  "Broken Item",
		Price: -1,
	})

	require.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPrice))
	fx.productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCatalogService_InitCatalog(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	txProductRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("ProductRepo").Return(txProductRepo)
	runTx(fx.txManager, factory)

	txProductRepo.On("DeleteAll", mock.Anything).Return(nil)
	txProductRepo.On("CreateBatch", mock.Anything, mock.AnythingOfType("[]*entity.Product")).Return(nil)

	products, err := fx.service.InitCatalog(ctx)

	require.NoError(t, err)
	require.Len(t, products, 5)

	names := make([]string, 0, len(products))
	var total float64
	for _, product := range products {
		names = append(names, product.Name)
		total += product.Price
	}
	assert.Contains(t, names, "Diamond Ring")
	assert.Contains(t, names, "Luxury Watch")
	assert.InDelta(t, 9999.95, total, 0.001)
}

func TestCatalogService_InitCatalog_ClearFails(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	txProductRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("ProductRepo").Return(txProductRepo)
	runTx(fx.txManager, factory)

	txProductRepo.On("DeleteAll", mock.Anything).Return(errors.New("db down"))

	products, err := fx.service.InitCatalog(ctx)

	require.Error(t, err)
	assert.Nil(t, products)
	txProductRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}
