package model

import (
	"time"

	"github.com/google/uuid"
)

type Sprint struct {
	ID        uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ProjectID uuid.UUID    `gorm:"type:uuid;not null;index"`
	Name      string       `gorm:"not null"`
	StartDate time.Time    `gorm:"not null"`
	EndDate   time.Time    `gorm:"not null"`
	Status    SprintStatus `gorm:"type:varchar(16);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Project Project `gorm:"foreignKey:ProjectID"`
}

// Within reports whether t falls inside [StartDate, EndDate], both ends inclusive.
func (s Sprint) Within(t time.Time) bool {
	return !t.Before(s.StartDate) && !t.After(s.EndDate)
}
