package model

import (
	"time"

	"github.com/google/uuid"
)

// StrainModel mirrors the 'strains' table.
// Effects and flavors are stored as JSONB arrays via GORM's json serializer.
type StrainModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);unique;not null"`
	Race        string    `gorm:"type:varchar(20);not null"`
	Description string    `gorm:"type:text"`
	Effects     []string  `gorm:"type:jsonb;serializer:json"`
	Flavors     []string  `gorm:"type:jsonb;serializer:json"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Reviews []ReviewModel `gorm:"foreignKey:StrainID"`
}

// TableName explicitly sets the table name for GORM.
func (StrainModel) TableName() string {
	return "strains"
}
