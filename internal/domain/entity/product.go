package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a purchasable catalog item, optionally tied to a strain.
type Product struct {
	ID          uuid.UUID  // The unique identifier for the product.
	Name        string     // The product's display name.
	Category    string     // Coarse product category, e.g. "flower", "edible", "concentrate".
	Description string     // Free-form description of the product.
	PriceCents  int64      // List price in cents, avoiding floating point money.
	StrainID    *uuid.UUID // The strain this product is derived from, if any.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
