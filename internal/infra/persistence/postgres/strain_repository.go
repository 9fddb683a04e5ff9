package postgres

import (
	"context"

	"cannadex/internal/domain/entity"
	domainerrors "cannadex/internal/domain/errors"
	"cannadex/internal/domain/repository"
	"cannadex/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// strainRepository implements the domain.StrainRepository interface using GORM.
type strainRepository struct {
	db *gorm.DB
}

// NewStrainRepository is the constructor for strainRepository.
func NewStrainRepository(db *gorm.DB) repository.StrainRepository {
	return &strainRepository{db: db}
}

// FindByID retrieves a single strain by its unique ID.
func (repo *strainRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Strain, error) {
	var strainM model.StrainModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&strainM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStrainNotFound
		}

		return nil, errors.Wrap(err, "failed to find strain by id")
	}

	return toStrainDomain(&strainM), nil
}

// List retrieves a page of strains ordered by name, plus the total count.
func (repo *strainRepository) List(ctx context.Context, limit, offset int) ([]*entity.Strain, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.StrainModel{}).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count strains")
	}

	var strainMs []model.StrainModel
	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&strainMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list strains")
	}

	strains := make([]*entity.Strain, 0, len(strainMs))
	for i := range strainMs {
		strains = append(strains, toStrainDomain(&strainMs[i]))
	}

	return strains, total, nil
}

// Create persists a new strain. A duplicate name surfaces as ErrStrainAlreadyExists.
func (repo *strainRepository) Create(ctx context.Context, strain *entity.Strain) error {
	strainM := fromStrainDomain(strain)

	if err := repo.db.WithContext(ctx).Create(strainM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrStrainAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create strain")
	}

	strain.ID = strainM.ID
	strain.CreatedAt = strainM.CreatedAt
	strain.UpdatedAt = strainM.UpdatedAt

	return nil
}

// Update modifies an existing strain.
func (repo *strainRepository) Update(ctx context.Context, strain *entity.Strain) error {
	strainM := fromStrainDomain(strain)

	// Struct-based update with an explicit column list so zero values are
	// written and the jsonb serializer still applies to effects/flavors.
	result := repo.db.WithContext(ctx).
		Model(&model.StrainModel{}).
		Where("id = ?", strain.ID).
		Select("name", "race", "description", "effects", "flavors").
		Updates(strainM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrStrainAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update strain")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStrainNotFound
	}

	return nil
}

// Delete removes a strain by its ID. Dependent reviews cascade at the database level.
func (repo *strainRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.StrainModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete strain")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStrainNotFound
	}

	return nil
}

// toStrainDomain converts a GORM StrainModel to a domain Strain entity.
func toStrainDomain(data *model.StrainModel) *entity.Strain {
	if data == nil {
		return nil
	}

	return &entity.Strain{
		ID:          data.ID,
		Name:        data.Name,
		Race:        entity.Race(data.Race),
		Description: data.Description,
		Effects:     data.Effects,
		Flavors:     data.Flavors,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromStrainDomain converts a domain Strain entity to a GORM StrainModel.
func fromStrainDomain(data *entity.Strain) *model.StrainModel {
	if data == nil {
		return nil
	}

	return &model.StrainModel{
		ID:          data.ID,
		Name:        data.Name,
		Race:        string(data.Race),
		Description: data.Description,
		Effects:     data.Effects,
		Flavors:     data.Flavors,
	}
}
