package entity

import (
	"time"

	"github.com/google/uuid"
)

// Race classifies a strain's lineage.
type Race string

// Supported strain races.
const (
	RaceIndica Race = "indica"
	RaceSativa Race = "sativa"
	RaceHybrid Race = "hybrid"
)

// Valid reports whether the race is one of the supported values.
func (r Race) Valid() bool {
	switch r {
	case RaceIndica, RaceSativa, RaceHybrid:
		return true
	default:
		return false
	}
}

// Strain is an informational catalog record describing a cannabis strain.
type Strain struct {
	ID          uuid.UUID // The unique identifier for the strain.
	Name        string    // The unique display name, e.g. "Blue Dream".
	Race        Race      // Lineage classification: indica, sativa or hybrid.
	Description string    // Free-form description of the strain.
	Effects     []string  // Reported effects, e.g. "relaxed", "creative".
	Flavors     []string  // Reported flavors, e.g. "berry", "earthy".
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
