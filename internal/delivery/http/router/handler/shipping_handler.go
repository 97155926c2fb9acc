package handler

import (
	"log/slog"
	"net/http"

	"gemstore/internal/delivery/http/response"
	"gemstore/internal/domain/entity"
	"gemstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ShippingHandler holds dependencies for shipping-address handlers.
type ShippingHandler struct {
	uc     usecase.AddressUsecase
	logger *slog.Logger
}

// NewShippingHandler is the constructor for ShippingHandler, injected by Fx.
func NewShippingHandler(uc usecase.AddressUsecase, logger *slog.Logger) *ShippingHandler {
	return &ShippingHandler{
		uc:     uc,
		logger: logger,
	}
}

type addressView struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
	Phone        string `json:"phone,omitempty"`
	IsDefault    bool   `json:"isDefault"`
}

func toAddressView(address *entity.ShippingAddress) addressView {
	return addressView{
		ID:           address.ID.String(),
		FullName:     address.FullName,
		AddressLine1: address.AddressLine1,
		AddressLine2: address.AddressLine2,
		City:         address.City,
		State:        address.State,
		PostalCode:   address.PostalCode,
		Country:      address.Country,
		Phone:        address.Phone,
		IsDefault:    address.IsDefault,
	}
}

func toAddressViews(addresses []*entity.ShippingAddress) []addressView {
	views := make([]addressView, 0, len(addresses))
	for _, address := range addresses {
		views = append(views, toAddressView(address))
	}

	return views
}

// createAddressRequest is the wire form of a new shipping address.
type createAddressRequest struct {
	FullName     string `json:"fullName"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
	IsDefault    bool   `json:"isDefault"`
}

// updateAddressRequest is the wire form of a partial address update.
type updateAddressRequest struct {
	FullName     *string `json:"fullName"`
	AddressLine1 *string `json:"addressLine1"`
	AddressLine2 *string `json:"addressLine2"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	PostalCode   *string `json:"postalCode"`
	Country      *string `json:"country"`
	Phone        *string `json:"phone"`
	IsDefault    *bool   `json:"isDefault"`
}

// List returns the authenticated user's addresses, default first.
func (h *ShippingHandler) List(c echo.Context) error {
	userID, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user identity in token")
	}

	addresses, err := h.uc.ListAddresses(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddressViews(addresses), "")
}

// Create adds an address for the authenticated user.
func (h *ShippingHandler) Create(c echo.Context) error {
	userID, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user identity in token")
	}

	req := new(createAddressRequest)
	if err := c.Bind(req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	input := &usecase.CreateAddressInput{
		UserID:       userID,
		FullName:     req.FullName,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Country:      req.Country,
		Phone:        req.Phone,
		IsDefault:    req.IsDefault,
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	address, err := h.uc.CreateAddress(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAddressView(address), "Address created")
}

// Update merges changed fields into one of the user's addresses.
func (h *ShippingHandler) Update(c echo.Context) error {
	userID, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user identity in token")
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address ID")
	}

	req := new(updateAddressRequest)
	if err := c.Bind(req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	input := &usecase.UpdateAddressInput{
		AddressID:    addressID,
		UserID:       userID,
		FullName:     req.FullName,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Country:      req.Country,
		Phone:        req.Phone,
		IsDefault:    req.IsDefault,
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	address, err := h.uc.UpdateAddress(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddressView(address), "Address updated")
}

// Delete removes one of the user's addresses.
func (h *ShippingHandler) Delete(c echo.Context) error {
	userID, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user identity in token")
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address ID")
	}

	if err := h.uc.DeleteAddress(c.Request().Context(), addressID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Address deleted")
}

// SetDefault makes one of the user's addresses the default.
func (h *ShippingHandler) SetDefault(c echo.Context) error {
	userID, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user identity in token")
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address ID")
	}

	address, err := h.uc.SetDefaultAddress(c.Request().Context(), addressID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddressView(address), "Default address updated")
}

// Rates returns the flat shipping rate options.
func (h *ShippingHandler) Rates(c echo.Context) error {
	rates, err := h.uc.GetShippingRates(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rates, "")
}
