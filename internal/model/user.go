package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ExternalID string    `gorm:"uniqueIndex;not null"`
	Email      string    `gorm:"not null"`
	Name       string    `gorm:"not null"`
	ImageURL   string
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}
