package repository

import (
	"context"
	"errors"

	"scrumboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts the project unless the organization already uses its key.
func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Project{}).
			Where("organization_id = ? AND key = ?", project.OrganizationID, project.Key).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateProjectKey
		}
		return tx.Create(project).Error
	})
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

// ListByOrganization returns the organization's projects, newest first, with issue and
// sprint counts filled in.
func (r *ProjectRepository) ListByOrganization(ctx context.Context, orgID string) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).
		Model(&model.Project{}).
		Select(`projects.*,
			(SELECT COUNT(*) FROM issues WHERE issues.project_id = projects.id) AS issue_count,
			(SELECT COUNT(*) FROM sprints WHERE sprints.project_id = projects.id) AS sprint_count`).
		Where("projects.organization_id = ?", orgID).
		Order("projects.created_at DESC").
		Find(&projects).Error
	return projects, err
}
