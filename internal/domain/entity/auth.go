// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderTypeEmail is the credential provider for email/password login.
// The model leaves room for other providers, but only email exists today.
const ProviderTypeEmail = "email"

// Authentication represents a single method of logging in (a credential).
// The password plaintext is never stored anywhere; only the bcrypt hash is kept.
type Authentication struct {
	ID             uuid.UUID // The unique ID for this specific authentication record.
	UserID         uuid.UUID // Links this credential to the User it belongs to.
	Provider       string    // The authentication provider, e.g. "email".
	ProviderUserID string    // The provider-scoped identifier; the email address for the email provider.
	PasswordHash   string    // The bcrypt hash of the password, only set for the email provider.
	CreatedAt      time.Time // Timestamp of when this credential was created.
}

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new access token after the old one expires, without credentials.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this specific refresh token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token; the raw token is never stored.
	ExpiresAt time.Time // The exact time when this refresh token becomes invalid.
	CreatedAt time.Time // Timestamp of when this session was created.
}
