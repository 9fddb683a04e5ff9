package usecase

import (
	"context"

	"cannadex/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateStrainInput defines the data required to add a strain to the catalog.
type CreateStrainInput struct {
	Name        string
	Race        string
	Description string
	Effects     []string
	Flavors     []string
}

// UpdateStrainInput defines the data for modifying an existing strain.
// Nil fields are left unchanged.
type UpdateStrainInput struct {
	Name        *string
	Race        *string
	Description *string
	Effects     []string
	Flavors     []string
}

// ListStrainsInput carries pagination parameters for catalog listings.
type ListStrainsInput struct {
	Limit  int
	Offset int
}

// ListStrainsOutput returns a page of strains and the total catalog size.
type ListStrainsOutput struct {
	Strains []*entity.Strain
	Total   int64
}

// StrainUsecase defines the interface for strain catalog operations.
type StrainUsecase interface {
	GetStrain(ctx context.Context, id uuid.UUID) (*entity.Strain, error)
	ListStrains(ctx context.Context, input *ListStrainsInput) (*ListStrainsOutput, error)
	CreateStrain(ctx context.Context, input *CreateStrainInput) (*entity.Strain, error)
	UpdateStrain(ctx context.Context, id uuid.UUID, input *UpdateStrainInput) (*entity.Strain, error)
	DeleteStrain(ctx context.Context, id uuid.UUID) error
}
