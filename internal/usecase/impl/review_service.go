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

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	strainRepo repository.StrainRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	StrainRepo repository.StrainRepository
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		reviewRepo: params.ReviewRepo,
		strainRepo: params.StrainRepo,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReview submits a new review for a strain.
// The (user_id, strain_id) unique index settles concurrent duplicate
// submissions; the strain check only improves the error for the common case.
func (srv *reviewService) CreateReview(ctx context.Context, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if input.Rating < entity.MinRating || input.Rating > entity.MaxRating {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
	}

	var created *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, findErr := srv.strainRepo.FindByID(ctx, input.StrainID); findErr != nil {
			if errors.Is(findErr, repository.ErrStrainNotFound) {
				return domainerrors.ErrStrainNotFound
			}

			return errors.Wrap(findErr, "failed to check strain for review")
		}

		review := &entity.Review{
			UserID:   input.UserID,
			StrainID: input.StrainID,
			Rating:   input.Rating,
			Body:     input.Body,
		}

		if createErr := repoFactory.ReviewRepo().Create(ctx, review); createErr != nil {
			return createErr
		}

		created = review

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to create review",
			slog.Any("userID", input.UserID), slog.Any("strainID", input.StrainID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Review created", slog.Any("reviewID", created.ID), slog.Any("strainID", created.StrainID))

	return created, nil
}

// ListReviewsByStrain returns all reviews for a strain, newest first.
func (srv *reviewService) ListReviewsByStrain(ctx context.Context, strainID uuid.UUID) ([]*entity.Review, error) {
	if _, err := srv.strainRepo.FindByID(ctx, strainID); err != nil {
		if errors.Is(err, repository.ErrStrainNotFound) {
			return nil, domainerrors.ErrStrainNotFound
		}

		return nil, errors.Wrap(err, "failed to check strain for review listing")
	}

	reviews, err := srv.reviewRepo.ListByStrainID(ctx, strainID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// DeleteReview removes a review. Only the author may delete their own review.
func (srv *reviewService) DeleteReview(ctx context.Context, input *usecase.DeleteReviewInput) error {
	review, err := srv.reviewRepo.FindByID(ctx, input.ReviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}

		return errors.Wrap(err, "failed to load review for deletion")
	}

	if review.UserID != input.UserID {
		srv.log(ctx).Warn("Rejected deletion of another user's review",
			slog.Any("reviewID", input.ReviewID), slog.Any("userID", input.UserID))

		return domainerrors.ErrForbidden
	}

	if err := srv.reviewRepo.Delete(ctx, input.ReviewID); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}

		return errors.Wrap(err, "failed to delete review")
	}

	srv.log(ctx).Info("Review deleted", slog.Any("reviewID", input.ReviewID))

	return nil
}
