package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"gemstore/internal/delivery/http/response"
	"gemstore/internal/domain/entity"
	"gemstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// productView is the API representation of a catalog product.
type productView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`
}

func toProductView(product *entity.Product) productView {
	return productView{
		ID:          product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		ImageURL:    product.ImageURL,
		Category:    product.Category,
	}
}

func toProductViews(products []*entity.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, product := range products {
		views = append(views, toProductView(product))
	}

	return views
}

// List returns the catalog. An optional ids query parameter narrows the
// result to the named products.
func (h *ProductHandler) List(c echo.Context) error {
	if rawIDs := c.QueryParam("ids"); rawIDs != "" {
		return h.listByIDs(c, rawIDs)
	}

	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductViews(products), "")
}

// listByIDs resolves the requested IDs in one lookup and returns whatever
// subset exists. An ID with no product is skipped, not a 404.
func (h *ProductHandler) listByIDs(c echo.Context, rawIDs string) error {
	parts := strings.Split(rawIDs, ",")
	ids := make([]uuid.UUID, 0, len(parts))

	for _, part := range parts {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID: "+part)
		}
		ids = append(ids, id)
	}

	products, err := h.uc.GetProductsByIDs(c.Request().Context(), ids)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductViews(products), "")
}

// Get returns a single product by ID.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "")
}

// Create adds a product to the catalog.
func (h *ProductHandler) Create(c echo.Context) error {
	input := new(usecase.CreateProductInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductView(product), "Product created")
}

// Init resets the catalog to the built-in sample products.
func (h *ProductHandler) Init(c echo.Context) error {
	products, err := h.uc.InitCatalog(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductViews(products), "Catalog initialized")
}
