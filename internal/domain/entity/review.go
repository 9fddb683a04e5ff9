package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a user-submitted rating and write-up for a strain.
// A user may review a given strain at most once.
type Review struct {
	ID        uuid.UUID // The unique identifier for the review.
	UserID    uuid.UUID // The author of the review.
	StrainID  uuid.UUID // The strain being reviewed.
	Rating    int       // Star rating between MinRating and MaxRating inclusive.
	Body      string    // Free-form review text.
	CreatedAt time.Time
	UpdatedAt time.Time
}
