package repository

import (
	"context"
	"errors"

	"cannadex/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStrainNotFound is returned when a strain is not found.
var ErrStrainNotFound = errors.New("strain not found")

// StrainRepository defines the standard operations for strain persistence.
type StrainRepository interface {
	// FindByID retrieves a single strain by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Strain, error)

	// List retrieves a page of strains ordered by name, plus the total count.
	List(ctx context.Context, limit, offset int) ([]*entity.Strain, int64, error)

	// Create persists a new strain.
	Create(ctx context.Context, strain *entity.Strain) error

	// Update modifies an existing strain.
	Update(ctx context.Context, strain *entity.Strain) error

	// Delete removes a strain by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
