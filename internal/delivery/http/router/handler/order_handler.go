package handler

import (
	"log/slog"
	"net/http"
	"time"

	"gemstore/internal/delivery/http/middleware"
	"gemstore/internal/delivery/http/response"
	"gemstore/internal/domain/entity"
	"gemstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// requesterID extracts the authenticated user's ID set by the auth middleware.
func requesterID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)

	return userID, ok
}

type orderItemView struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type orderView struct {
	ID              string          `json:"id"`
	Items           []orderItemView `json:"items"`
	TotalPrice      float64         `json:"totalPrice"`
	ShippingAddress string          `json:"shippingAddress"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func toOrderView(order *entity.Order) orderView {
	items := make([]orderItemView, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemView{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return orderView{
		ID:              order.ID.String(),
		Items:           items,
		TotalPrice:      order.TotalPrice,
		ShippingAddress: order.ShippingAddress,
		Status:          string(order.Status),
		CreatedAt:       order.CreatedAt,
	}
}

func toOrderViews(orders []*entity.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, toOrderView(order))
	}

	return views
}

// createOrderRequest is the wire form of an order placement.
type createOrderRequest struct {
	Items []struct {
		ProductID uuid.UUID `json:"productId"`
		Quantity  int       `json:"quantity"`
	} `json:"items"`
	ShippingAddress string `json:"shippingAddress"`
}

// Create places a new order for the authenticated user.
func (h *OrderHandler) Create(c echo.Context) error {
	userID, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user identity in token")
	}

	req := new(createOrderRequest)
	if err := c.Bind(req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	input := &usecase.CreateOrderInput{
		UserID:          userID,
		ShippingAddress: req.ShippingAddress,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, usecase.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderView(order), "Order placed")
}

// ListMine returns the authenticated user's orders, newest first.
func (h *OrderHandler) ListMine(c echo.Context) error {
	userID, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user identity in token")
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderViews(orders), "")
}

// Get returns one of the authenticated user's orders.
func (h *OrderHandler) Get(c echo.Context) error {
	userID, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user identity in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), orderID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderView(order), "")
}

// UpdateStatus moves one of the authenticated user's orders to a new status.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	userID, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user identity in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	req := new(struct {
		Status string `json:"status"`
	})
	if err := c.Bind(req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), &usecase.UpdateOrderStatusInput{
		OrderID: orderID,
		UserID:  userID,
		Status:  entity.OrderStatus(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderView(order), "Order status updated")
}
