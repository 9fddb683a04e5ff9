package impl

import (
	"context"
	"testing"

	domainerrors "cannadex/internal/domain/errors"
	"cannadex/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStrainService(t *testing.T) (usecase.StrainUsecase, *fakeStore) {
	t.Helper()

	store := newFakeStore()

	return NewStrainService(StrainServiceParams{
		StrainRepo: &fakeStrainRepo{store: store},
		Logger:     discardLogger(),
	}), store
}

func createTestStrain(t *testing.T, svc usecase.StrainUsecase, name string) *usecase.CreateStrainInput {
	t.Helper()

	input := &usecase.CreateStrainInput{
		Name:        name,
		Race:        "hybrid",
		Description: "A balanced cross with a sweet berry profile.",
		Effects:     []string{"relaxed", "creative"},
		Flavors:     []string{"berry", "earthy"},
	}
	_, err := svc.CreateStrain(context.Background(), input)
	require.NoError(t, err)

	return input
}

func TestCreateStrain(t *testing.T) {
	t.Run("creates strain", func(t *testing.T) {
		svc, _ := newTestStrainService(t)

		strain, err := svc.CreateStrain(context.Background(), &usecase.CreateStrainInput{
			Name:    "Blue Dream",
			Race:    "sativa",
			Effects: []string{"uplifted"},
		})
		require.NoError(t, err)
		assert.NotZero(t, strain.ID)
		assert.Equal(t, "Blue Dream", strain.Name)
	})

	t.Run("rejects unknown race", func(t *testing.T) {
		svc, _ := newTestStrainService(t)

		_, err := svc.CreateStrain(context.Background(), &usecase.CreateStrainInput{
			Name: "Mystery Kush",
			Race: "ruderalis",
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		svc, _ := newTestStrainService(t)
		createTestStrain(t, svc, "Blue Dream")

		_, err := svc.CreateStrain(context.Background(), &usecase.CreateStrainInput{
			Name: "Blue Dream",
			Race: "indica",
		})
		assert.ErrorIs(t, err, domainerrors.ErrStrainAlreadyExists)
	})
}

func TestListStrains(t *testing.T) {
	svc, _ := newTestStrainService(t)
	createTestStrain(t, svc, "Blue Dream")
	createTestStrain(t, svc, "Northern Lights")
	createTestStrain(t, svc, "Sour Diesel")

	t.Run("returns total alongside page", func(t *testing.T) {
		out, err := svc.ListStrains(context.Background(), &usecase.ListStrainsInput{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, out.Strains, 2)
		assert.Equal(t, int64(3), out.Total)
	})

	t.Run("applies default limit for zero", func(t *testing.T) {
		out, err := svc.ListStrains(context.Background(), &usecase.ListStrainsInput{})
		require.NoError(t, err)
		assert.Len(t, out.Strains, 3)
	})

	t.Run("negative offset treated as zero", func(t *testing.T) {
		out, err := svc.ListStrains(context.Background(), &usecase.ListStrainsInput{Offset: -5})
		require.NoError(t, err)
		assert.Len(t, out.Strains, 3)
	})
}

func TestUpdateStrain(t *testing.T) {
	t.Run("updates only provided fields", func(t *testing.T) {
		svc, store := newTestStrainService(t)
		createTestStrain(t, svc, "Blue Dream")

		var id uuid.UUID
		for strainID := range store.strains {
			id = strainID
		}

		newDescription := "Updated description."
		updated, err := svc.UpdateStrain(context.Background(), id, &usecase.UpdateStrainInput{
			Description: &newDescription,
		})
		require.NoError(t, err)
		assert.Equal(t, "Blue Dream", updated.Name)
		assert.Equal(t, newDescription, updated.Description)
	})

	t.Run("unknown strain", func(t *testing.T) {
		svc, _ := newTestStrainService(t)

		_, err := svc.UpdateStrain(context.Background(), uuid.New(), &usecase.UpdateStrainInput{})
		assert.ErrorIs(t, err, domainerrors.ErrStrainNotFound)
	})
}

func TestDeleteStrain(t *testing.T) {
	t.Run("removes the strain", func(t *testing.T) {
		svc, store := newTestStrainService(t)
		createTestStrain(t, svc, "Blue Dream")

		var id uuid.UUID
		for strainID := range store.strains {
			id = strainID
		}

		require.NoError(t, svc.DeleteStrain(context.Background(), id))
		assert.Empty(t, store.strains)
	})

	t.Run("unknown strain", func(t *testing.T) {
		svc, _ := newTestStrainService(t)

		err := svc.DeleteStrain(context.Background(), uuid.New())
		assert.ErrorIs(t, err, domainerrors.ErrStrainNotFound)
	})
}
