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

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns the full catalog.
func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct returns one product by ID.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WithDetails("Product " + id.String() + " not found")
		}

		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// GetProductsByIDs returns the subset of the given IDs that resolve to
// products, in a single query. Missing IDs are not an error.
func (srv *catalogService) GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	products, err := srv.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		srv.log(ctx).Error("Failed to look up products", slog.Int("requested", len(ids)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to look up products")
	}

	return products, nil
}

// CreateProduct adds a product to the catalog.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if input.Price < 0 {
		return nil, domainerrors.ErrInvalidPrice.WrapMessage("product price must not be negative")
	}

	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.String("name", product.Name))

	return product, nil
}

// InitCatalog resets the catalog to the built-in sample products. Removal and
// reseeding happen in one transaction so the catalog is never half-empty.
func (srv *catalogService) InitCatalog(ctx context.Context) ([]*entity.Product, error) {
	srv.log(ctx).Info("Initializing catalog with sample products")

	seed := sampleProducts()

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		if err := productRepo.DeleteAll(ctx); err != nil {
			return errors.Wrap(err, "failed to clear catalog")
		}

		if err := productRepo.CreateBatch(ctx, seed); err != nil {
			return errors.Wrap(err, "failed to seed catalog")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to initialize catalog", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Catalog initialized", slog.Int("count", len(seed)))

	return seed, nil
}

// sampleProducts returns the built-in jewelry catalog used to seed new
// deployments.
func sampleProducts() []*entity.Product {
	return []*entity.Product{
		{
			Name:        "Diamond Ring",
			Description: "Beautiful diamond ring with 18k gold band",
			Price:       2999.99,
			ImageURL:    "https://images.unsplash.com/photo-1605100804763-247f67b3557e?w=500",
			Category:    "rings",
		},
		{
			Name:        "Golden Necklace",
			Description: "Elegant 24k gold necklace",
			Price:       1599.99,
			ImageURL:    "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=500",
			Category:    "necklaces",
		},
		{
			Name:        "Pearl Earrings",
			Description: "Classic pearl earrings with silver studs",
			Price:       899.99,
			ImageURL:    "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=500",
			Category:    "earrings",
		},
		{
			Name:        "Silver Bracelet",
			Description: "Sterling silver bracelet with charm details",
			Price:       499.99,
			ImageURL:    "https://images.unsplash.com/photo-1611591437281-460bfbe1220a?w=500",
			Category:    "bracelets",
		},
		{
			Name:        "Luxury Watch",
			Description: "Premium automatic watch with leather strap",
			Price:       3999.99,
			ImageURL:    "https://images.unsplash.com/photo-1524592094714-0f0654e20314?w=500",
			Category:    "watches",
		},
	}
}
