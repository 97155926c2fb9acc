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

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder places an order. Product lookup, price pinning and the insert
// run in one transaction: if any referenced product is missing, the whole
// order is rejected and nothing is persisted.
func (srv *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrEmptyCart.WrapMessage("order has no items")
	}

	srv.log(ctx).Info("Placing order",
		slog.Any("userID", input.UserID),
		slog.Int("itemCount", len(input.Items)),
	)

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()
		orderRepo := repoFactory.OrderRepo()

		priced, total, err := srv.pinItemPrices(ctx, productRepo, input.Items)
		if err != nil {
			return err
		}

		order = &entity.Order{
			UserID:          input.UserID,
			Items:           priced,
			TotalPrice:      total,
			ShippingAddress: input.ShippingAddress,
			Status:          entity.OrderStatusPending,
		}

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order placement failed", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order placed",
		slog.Any("orderID", order.ID),
		slog.Any("userID", order.UserID),
		slog.Float64("totalPrice", order.TotalPrice),
	)

	return order, nil
}

// pinItemPrices resolves every requested product in one bulk lookup and
// snapshots its current unit price into the order line. A request naming an
// unknown product fails the whole order.
func (srv *orderService) pinItemPrices(ctx context.Context, productRepo repository.ProductRepository, items []usecase.OrderItemInput) ([]entity.OrderItem, float64, error) {
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	products, err := productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to load products for order")
	}

	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	priced := make([]entity.OrderItem, 0, len(items))
	var total float64
	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, 0, domainerrors.ErrProductNotFound.WithDetails("Product " + item.ProductID.String() + " not found")
		}

		priced = append(priced, entity.OrderItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			Price:     product.Price,
		})
		total += product.Price * float64(item.Quantity)
	}

	return priced, total, nil
}

// ListOrders returns the user's orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder returns one order owned by the user.
func (srv *orderService) GetOrder(ctx context.Context, orderID, userID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByIDAndUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("order not found")
		}

		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

// UpdateOrderStatus moves an order owned by the user to a new lifecycle
// state. An order owned by someone else looks exactly like a missing one.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus.WithDetails("unknown status: " + string(input.Status))
	}

	order, err := srv.orderRepo.UpdateStatus(ctx, input.OrderID, input.UserID, input.Status)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("order not found")
		}

		srv.log(ctx).Error("Failed to update order status",
			slog.Any("orderID", input.OrderID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated",
		slog.Any("orderID", order.ID),
		slog.String("status", string(order.Status)),
	)

	return order, nil
}
