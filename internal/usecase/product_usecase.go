package usecase

import (
	"context"

	"cannadex/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines the data required to add a product to the catalog.
type CreateProductInput struct {
	Name        string
	Category    string
	Description string
	PriceCents  int64
	StrainID    *uuid.UUID
}

// UpdateProductInput defines the data for modifying an existing product.
// Nil fields are left unchanged.
type UpdateProductInput struct {
	Name        *string
	Category    *string
	Description *string
	PriceCents  *int64
	StrainID    *uuid.UUID
}

// ListProductsInput carries pagination parameters for catalog listings.
type ListProductsInput struct {
	Limit  int
	Offset int
}

// ListProductsOutput returns a page of products and the total catalog size.
type ListProductsOutput struct {
	Products []*entity.Product
	Total    int64
}

// ProductUsecase defines the interface for product catalog operations.
type ProductUsecase interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	ListProducts(ctx context.Context, input *ListProductsInput) (*ListProductsOutput, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
