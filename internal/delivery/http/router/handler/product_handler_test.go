package handler

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"gemstore/internal/domain/entity"
	"gemstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCatalogUsecase struct {
	mock.Mock
}

func (m *mockCatalogUsecase) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *mockCatalogUsecase) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *mockCatalogUsecase) GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *mockCatalogUsecase) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *mockCatalogUsecase) InitCatalog(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Product), args.Error(1)
}

func TestProductHandler_List_ByIDsReturnsFoundSubset(t *testing.T) {
	uc := new(mockCatalogUsecase)
	handler := NewProductHandler(uc, slog.Default())

	found := &entity.Product{ID: uuid.New(), Name: "Diamond Ring", Price: 2999.99}
	missingID := uuid.New()

	uc.On("GetProductsByIDs", mock.Anything, []uuid.UUID{found.ID, missingID}).
		Return([]*entity.Product{found}, nil)

	c, rec := newTestContext(t, http.MethodGet,
		"/products?ids="+found.ID.String()+","+missingID.String(), "")

	require.NoError(t, handler.List(c))

	// A missing ID never turns the request into a 404.
	assert.Equal(t, http.StatusOK, rec.Code)
	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, found.ID.String())
	assert.NotContains(t, responseBody, missingID.String())
	uc.AssertExpectations(t)
}

func TestProductHandler_List_InvalidID(t *testing.T) {
	uc := new(mockCatalogUsecase)
	handler := NewProductHandler(uc, slog.Default())

	c, rec := newTestContext(t, http.MethodGet, "/products?ids=not-a-uuid", "")

	require.NoError(t, handler.List(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "GetProductsByIDs", mock.Anything, mock.Anything)
}

func TestProductHandler_Get(t *testing.T) {
	uc := new(mockCatalogUsecase)
	handler := NewProductHandler(uc, slog.Default())

	product := &entity.Product{ID: uuid.New(), Name: "Pearl Earrings", Price: 899.99}
	uc.On("GetProduct", mock.Anything, product.ID).Return(product, nil)

	c, rec := newTestContext(t, http.MethodGet, "/products/"+product.ID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(product.ID.String())

	require.NoError(t, handler.Get(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Pearl Earrings")
}
