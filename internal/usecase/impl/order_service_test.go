package impl

import (
	"context"
	"testing"
	"time"

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

type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Logger:    newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
	}
}

func TestOrderService_CreateOrder_PinsPrices(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	userID := uuid.New()
	productID := uuid.New()
	product := &entity.Product{ID: productID, Name: "Silver Bracelet", Price: 10.00}

	txProductRepo := mockRepo.NewMockProductRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("ProductRepo").Return(txProductRepo)
	factory.On("OrderRepo").Return(txOrderRepo)
	runTx(fx.txManager, factory)

	txProductRepo.On("FindByIDs", mock.Anything, []uuid.UUID{productID}).
		Return([]*entity.Product{product}, nil)
	txOrderRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Order")).
		Run(func(args mock.Arguments) {
			order := args.Get(1).(*entity.Order)
			order.ID = uuid.New()
		}).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		UserID:          userID,
		Items:           []usecase.OrderItemInput{{ProductID: productID, Quantity: 2}},
		ShippingAddress: "1 Main St, Springfield",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, 20.00, order.TotalPrice)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 10.00, order.Items[0].Price)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestOrderService_CreateOrder_UnknownProduct(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	knownID := uuid.New()
	missingID := uuid.New()
	known := &entity.Product{ID: knownID, Price: 5.00}

	txProductRepo := mockRepo.NewMockProductRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("ProductRepo").Return(txProductRepo)
	factory.On("OrderRepo").Return(txOrderRepo)
	runTx(fx.txManager, factory)

	// Only one of the two requested products resolves.
	txProductRepo.On("FindByIDs", mock.Anything, []uuid.UUID{knownID, missingID}).
		Return([]*entity.Product{known}, nil)

	order, err := fx.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		UserID: uuid.New(),
		Items: []usecase.OrderItemInput{
			{ProductID: knownID, Quantity: 1},
			{ProductID: missingID, Quantity: 3},
		},
		ShippingAddress: "1 Main St, Springfield",
	})

	require.Error(t, err)
	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), missingID.String())

	// Nothing was persisted
	txOrderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.CreateOrder(context.Background(), &usecase.CreateOrderInput{
		UserID:          uuid.New(),
		Items:           nil,
		ShippingAddress: "1 Main St",
	})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyCart))
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestOrderService_ListOrders(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	userID := uuid.New()
	now := time.Now()
	newest := &entity.Order{ID: uuid.New(), UserID: userID, CreatedAt: now}
	older := &entity.Order{ID: uuid.New(), UserID: userID, CreatedAt: now.Add(-time.Hour)}

	fx.orderRepo.On("FindByUser", ctx, userID).Return([]*entity.Order{newest, older}, nil)

	orders, err := fx.service.ListOrders(ctx, userID)

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, newest.ID, orders[0].ID)
}

func TestOrderService_GetOrder_ForeignOrderLooksMissing(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	orderID := uuid.New()
	otherUser := uuid.New()

	fx.orderRepo.On("FindByIDAndUser", ctx, orderID, otherUser).Return(nil, repository.ErrOrderNotFound)

	order, err := fx.service.GetOrder(ctx, orderID, otherUser)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	orderID := uuid.New()
	userID := uuid.New()
	updated := &entity.Order{ID: orderID, UserID: userID, Status: entity.OrderStatusCompleted}

	fx.orderRepo.On("UpdateStatus", ctx, orderID, userID, entity.OrderStatusCompleted).
		Return(updated, nil)

	order, err := fx.service.UpdateOrderStatus(ctx, &usecase.UpdateOrderStatusInput{
		OrderID: orderID,
		UserID:  userID,
		Status:  entity.OrderStatusCompleted,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, order.Status)
}

func TestOrderService_UpdateOrderStatus_InvalidStatus(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.UpdateOrderStatus(context.Background(), &usecase.UpdateOrderStatusInput{
		OrderID: uuid.New(),
		UserID:  uuid.New(),
		Status:  entity.OrderStatus("shipped-to-mars"),
	})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrderStatus))
	fx.orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_UpdateOrderStatus_ForeignOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	orderID := uuid.New()
	intruder := uuid.New()

	fx.orderRepo.On("UpdateStatus", ctx, orderID, intruder, entity.OrderStatusCancelled).
		Return(nil, repository.ErrOrderNotFound)

	order, err := fx.service.UpdateOrderStatus(ctx, &usecase.UpdateOrderStatusInput{
		OrderID: orderID,
		UserID:  intruder,
		Status:  entity.OrderStatusCancelled,
	})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}
