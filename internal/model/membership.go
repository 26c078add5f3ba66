package model

import (
	"time"

	"github.com/google/uuid"
)

// Membership records that a user belongs to an organization with a role.
type Membership struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	OrganizationID string    `gorm:"not null;uniqueIndex:idx_membership_org_user"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_membership_org_user"`
	Role           OrgRole   `gorm:"type:varchar(16);not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`

	User User `gorm:"foreignKey:UserID"`
}
