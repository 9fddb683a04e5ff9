package usecase

import (
	"context"

	"cannadex/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput defines the data required to submit a review for a strain.
// UserID comes from the authenticated session, never from the request body.
type CreateReviewInput struct {
	UserID   uuid.UUID
	StrainID uuid.UUID
	Rating   int
	Body     string
}

// DeleteReviewInput identifies a review and the user requesting its deletion.
// Only the review's author may delete it.
type DeleteReviewInput struct {
	UserID   uuid.UUID
	ReviewID uuid.UUID
}

// ReviewUsecase defines the interface for strain review operations.
type ReviewUsecase interface {
	CreateReview(ctx context.Context, input *CreateReviewInput) (*entity.Review, error)
	ListReviewsByStrain(ctx context.Context, strainID uuid.UUID) ([]*entity.Review, error)
	DeleteReview(ctx context.Context, input *DeleteReviewInput) error
}
