package repository

import (
	"context"
	"errors"

	"cannadex/internal/domain/entity"
)

// ErrAuthNotFound is returned when an authentication method is not found.
var ErrAuthNotFound = errors.New("authentication method not found")

// AuthRepository defines the standard operations for credential persistence.
type AuthRepository interface {
	// CreateAuthentication persists a new authentication method for a user.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication retrieves an authentication method by its provider and
	// provider-specific ID (the email address for the email provider).
	FindAuthentication(ctx context.Context, provider string, providerUserID string) (*entity.Authentication, error)
}
