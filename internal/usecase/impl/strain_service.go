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

// Listing page size bounds.
const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// strainService implements the StrainUsecase interface.
type strainService struct {
	strainRepo repository.StrainRepository
	logger     *slog.Logger
}

// StrainServiceParams holds dependencies for strainService, injected by Fx.
type StrainServiceParams struct {
	fx.In

	StrainRepo repository.StrainRepository
	Logger     *slog.Logger
}

// NewStrainService is the constructor for strainService.
func NewStrainService(params StrainServiceParams) usecase.StrainUsecase {
	return &strainService{
		strainRepo: params.StrainRepo,
		logger:     params.Logger,
	}
}

func (srv *strainService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// clampListLimit normalizes pagination input to sane bounds.
func clampListLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}

	return limit
}

// GetStrain returns a single strain by ID.
func (srv *strainService) GetStrain(ctx context.Context, id uuid.UUID) (*entity.Strain, error) {
	strain, err := srv.strainRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStrainNotFound) {
			return nil, domainerrors.ErrStrainNotFound
		}

		return nil, errors.Wrap(err, "failed to load strain")
	}

	return strain, nil
}

// ListStrains returns a page of the strain catalog.
func (srv *strainService) ListStrains(ctx context.Context, input *usecase.ListStrainsInput) (*usecase.ListStrainsOutput, error) {
	limit := clampListLimit(input.Limit)
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	strains, total, err := srv.strainRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list strains")
	}

	return &usecase.ListStrainsOutput{
		Strains: strains,
		Total:   total,
	}, nil
}

// CreateStrain adds a new strain to the catalog.
func (srv *strainService) CreateStrain(ctx context.Context, input *usecase.CreateStrainInput) (*entity.Strain, error) {
	race := entity.Race(input.Race)
	if !race.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("race must be one of indica, sativa or hybrid")
	}

	strain := &entity.Strain{
		Name:        input.Name,
		Race:        race,
		Description: input.Description,
		Effects:     input.Effects,
		Flavors:     input.Flavors,
	}

	if err := srv.strainRepo.Create(ctx, strain); err != nil {
		srv.log(ctx).Warn("Failed to create strain", slog.String("name", input.Name), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Strain created", slog.Any("strainID", strain.ID), slog.String("name", strain.Name))

	return strain, nil
}

// UpdateStrain applies a partial update to an existing strain.
func (srv *strainService) UpdateStrain(ctx context.Context, id uuid.UUID, input *usecase.UpdateStrainInput) (*entity.Strain, error) {
	strain, err := srv.GetStrain(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		strain.Name = *input.Name
	}
	if input.Race != nil {
		race := entity.Race(*input.Race)
		if !race.Valid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("race must be one of indica, sativa or hybrid")
		}
		strain.Race = race
	}
	if input.Description != nil {
		strain.Description = *input.Description
	}
	if input.Effects != nil {
		strain.Effects = input.Effects
	}
	if input.Flavors != nil {
		strain.Flavors = input.Flavors
	}

	if err := srv.strainRepo.Update(ctx, strain); err != nil {
		if errors.Is(err, repository.ErrStrainNotFound) {
			return nil, domainerrors.ErrStrainNotFound
		}
		srv.log(ctx).Warn("Failed to update strain", slog.Any("strainID", id), slog.Any("error", err))

		return nil, err
	}

	return strain, nil
}

// DeleteStrain removes a strain from the catalog. Its reviews go with it.
func (srv *strainService) DeleteStrain(ctx context.Context, id uuid.UUID) error {
	if err := srv.strainRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrStrainNotFound) {
			return domainerrors.ErrStrainNotFound
		}

		return errors.Wrap(err, "failed to delete strain")
	}

	srv.log(ctx).Info("Strain deleted", slog.Any("strainID", id))

	return nil
}
