package model

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	OrganizationID string    `gorm:"not null;index"`
	Name           string    `gorm:"not null"`
	Key            string    `gorm:"not null"`
	Description    string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	IssueCount  int64 `gorm:"->;-:migration"`
	SprintCount int64 `gorm:"->;-:migration"`
}
