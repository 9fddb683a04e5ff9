// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system, representing a registered account.
// It carries only public identity information; credentials live in Authentication.
type User struct {
	ID        uuid.UUID // The unique identifier for the user.
	Username  string    // The unique public handle shown next to reviews.
	Email     string    // The unique primary contact email, used as the login identifier.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this account.
}
