package impl

import (
	"context"
	"log/slog"

	deliverycontext "cannadex/internal/delivery/context"
	"cannadex/internal/domain/entity"
	domainerrors "cannadex/internal/domain/errors"
	"cannadex/internal/domain/repository"
	"cannadex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	strainRepo  repository.StrainRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	StrainRepo  repository.StrainRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		strainRepo:  params.StrainRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProduct returns a single product by ID.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

// ListProducts returns a page of the product catalog.
func (srv *productService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ListProductsOutput, error) {
	limit := clampListLimit(input.Limit)
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	products, total, err := srv.productRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ListProductsOutput{
		Products: products,
		Total:    total,
	}, nil
}

// CreateProduct adds a new product to the catalog.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if input.PriceCents < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	}

	if input.StrainID != nil {
		if err := srv.checkStrainExists(ctx, *input.StrainID); err != nil {
			return nil, err
		}
	}

	product := &entity.Product{
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		PriceCents:  input.PriceCents,
		StrainID:    input.StrainID,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Warn("Failed to create product", slog.String("name", input.Name), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.String("name", product.Name))

	return product, nil
}

// UpdateProduct applies a partial update to an existing product.
func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.PriceCents != nil {
		if *input.PriceCents < 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
		}
		product.PriceCents = *input.PriceCents
	}
	if input.StrainID != nil {
		if err := srv.checkStrainExists(ctx, *input.StrainID); err != nil {
			return nil, err
		}
		product.StrainID = input.StrainID
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}
		srv.log(ctx).Warn("Failed to update product", slog.Any("productID", id), slog.Any("error", err))

		return nil, err
	}

	return product, nil
}

// DeleteProduct removes a product from the catalog.
func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", id))

	return nil
}

func (srv *productService) checkStrainExists(ctx context.Context, strainID uuid.UUID) error {
	if _, err := srv.strainRepo.FindByID(ctx, strainID); err != nil {
		if errors.Is(err, repository.ErrStrainNotFound) {
			return domainerrors.ErrStrainNotFound
		}

		return errors.Wrap(err, "failed to check strain reference")
	}

	return nil
}
