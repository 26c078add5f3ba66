package repository

import (
	"context"
	"errors"

	"scrumboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Record stores the user's role in the organization, updating it if it changed.
func (r *MembershipRepository) Record(ctx context.Context, orgID string, userID uuid.UUID, role model.OrgRole) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Membership
		err := tx.Where("organization_id = ? AND user_id = ?", orgID, userID).First(&existing).Error

		if err == nil {
			if existing.Role == role {
				return nil
			}
			return tx.Model(&existing).Update("role", role).Error
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Create(&model.Membership{
			OrganizationID: orgID,
			UserID:         userID,
			Role:           role,
		}).Error
	})
}

// IsMember reports whether the user belongs to the organization.
func (r *MembershipRepository) IsMember(ctx context.Context, orgID string, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Membership{}).
		Where("organization_id = ? AND user_id = ?", orgID, userID).
		Count(&count).Error
	return count > 0, err
}

// ListMembers returns the organization's memberships with their users, by name.
func (r *MembershipRepository) ListMembers(ctx context.Context, orgID string) ([]model.Membership, error) {
	var members []model.Membership
	err := r.db.WithContext(ctx).
		Joins("User").
		Where("memberships.organization_id = ?", orgID).
		Order(`"User"."name"`).
		Find(&members).Error
	return members, err
}
