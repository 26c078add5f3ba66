package model

import (
	"time"

	"github.com/google/uuid"
)

type Issue struct {
	ID          uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ProjectID   uuid.UUID     `gorm:"type:uuid;not null;index"`
	SprintID    *uuid.UUID    `gorm:"type:uuid;index"`
	Title       string        `gorm:"not null"`
	Description string
	Status      IssueStatus   `gorm:"type:varchar(16);not null"`
	Order       int           `gorm:"column:sort_order;not null"`
	Priority    IssuePriority `gorm:"type:varchar(16);not null"`
	ReporterID  uuid.UUID     `gorm:"type:uuid;not null"`
	AssigneeID  *uuid.UUID    `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Project  *Project `gorm:"foreignKey:ProjectID"`
	Reporter *User    `gorm:"foreignKey:ReporterID"`
	Assignee *User    `gorm:"foreignKey:AssigneeID"`
}

// OrderUpdate is one (id, status, order) triple of a batch reorder.
type OrderUpdate struct {
	ID     uuid.UUID
	Status IssueStatus
	Order  int
}
