package impl

import (
	"context"
	"testing"
	"time"

	"cannadex/internal/domain/entity"
	domainerrors "cannadex/internal/domain/errors"
	"cannadex/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReviewService(t *testing.T) (usecase.ReviewUsecase, *fakeStore) {
	t.Helper()

	store := newFakeStore()

	return NewReviewService(ReviewServiceParams{
		TxManager:  &fakeTxManager{store: store},
		ReviewRepo: &fakeReviewRepo{store: store},
		StrainRepo: &fakeStrainRepo{store: store},
		Logger:     discardLogger(),
	}), store
}

func seedStrain(t *testing.T, store *fakeStore) uuid.UUID {
	t.Helper()

	id := uuid.New()
	store.strains[id] = &entity.Strain{
		ID:        id,
		Name:      "Blue Dream",
		Race:      entity.RaceHybrid,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	return id
}

func TestCreateReview(t *testing.T) {
	t.Run("creates review", func(t *testing.T) {
		svc, store := newTestReviewService(t)
		strainID := seedStrain(t, store)

		review, err := svc.CreateReview(context.Background(), &usecase.CreateReviewInput{
			UserID:   uuid.New(),
			StrainID: strainID,
			Rating:   4,
			Body:     "Smooth and mellow.",
		})
		require.NoError(t, err)
		assert.NotZero(t, review.ID)
		assert.Equal(t, 4, review.Rating)
	})

	t.Run("rejects rating out of bounds", func(t *testing.T) {
		svc, store := newTestReviewService(t)
		strainID := seedStrain(t, store)

		for _, rating := range []int{0, 6, -1} {
			_, err := svc.CreateReview(context.Background(), &usecase.CreateReviewInput{
				UserID:   uuid.New(),
				StrainID: strainID,
				Rating:   rating,
			})
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		}
	})

	t.Run("rejects unknown strain", func(t *testing.T) {
		svc, _ := newTestReviewService(t)

		_, err := svc.CreateReview(context.Background(), &usecase.CreateReviewInput{
			UserID:   uuid.New(),
			StrainID: uuid.New(),
			Rating:   3,
		})
		assert.ErrorIs(t, err, domainerrors.ErrStrainNotFound)
	})

	t.Run("rejects second review by same user", func(t *testing.T) {
		svc, store := newTestReviewService(t)
		strainID := seedStrain(t, store)
		userID := uuid.New()

		_, err := svc.CreateReview(context.Background(), &usecase.CreateReviewInput{
			UserID:   userID,
			StrainID: strainID,
			Rating:   5,
		})
		require.NoError(t, err)

		_, err = svc.CreateReview(context.Background(), &usecase.CreateReviewInput{
			UserID:   userID,
			StrainID: strainID,
			Rating:   2,
		})
		assert.ErrorIs(t, err, domainerrors.ErrReviewAlreadyExists)
	})
}

func TestListReviewsByStrain(t *testing.T) {
	t.Run("returns reviews for the strain", func(t *testing.T) {
		svc, store := newTestReviewService(t)
		strainID := seedStrain(t, store)

		for range 3 {
			_, err := svc.CreateReview(context.Background(), &usecase.CreateReviewInput{
				UserID:   uuid.New(),
				StrainID: strainID,
				Rating:   4,
			})
			require.NoError(t, err)
		}

		reviews, err := svc.ListReviewsByStrain(context.Background(), strainID)
		require.NoError(t, err)
		assert.Len(t, reviews, 3)
	})

	t.Run("unknown strain", func(t *testing.T) {
		svc, _ := newTestReviewService(t)

		_, err := svc.ListReviewsByStrain(context.Background(), uuid.New())
		assert.ErrorIs(t, err, domainerrors.ErrStrainNotFound)
	})
}

func TestDeleteReview(t *testing.T) {
	t.Run("author can delete", func(t *testing.T) {
		svc, store := newTestReviewService(t)
		strainID := seedStrain(t, store)
		userID := uuid.New()

		review, err := svc.CreateReview(context.Background(), &usecase.CreateReviewInput{
			UserID:   userID,
			StrainID: strainID,
			Rating:   3,
		})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteReview(context.Background(), &usecase.DeleteReviewInput{
			UserID:   userID,
			ReviewID: review.ID,
		}))
		assert.Empty(t, store.reviews)
	})

	t.Run("other users are forbidden", func(t *testing.T) {
		svc, store := newTestReviewService(t)
		strainID := seedStrain(t, store)

		review, err := svc.CreateReview(context.Background(), &usecase.CreateReviewInput{
			UserID:   uuid.New(),
			StrainID: strainID,
			Rating:   3,
		})
		require.NoError(t, err)

		err = svc.DeleteReview(context.Background(), &usecase.DeleteReviewInput{
			UserID:   uuid.New(),
			ReviewID: review.ID,
		})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
		assert.Len(t, store.reviews, 1)
	})

	t.Run("unknown review", func(t *testing.T) {
		svc, _ := newTestReviewService(t)

		err := svc.DeleteReview(context.Background(), &usecase.DeleteReviewInput{
			UserID:   uuid.New(),
			ReviewID: uuid.New(),
		})
		assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
	})
}
