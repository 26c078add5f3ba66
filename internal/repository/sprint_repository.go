package repository

import (
	"context"
	"errors"

	"scrumboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SprintRepository struct {
	db *gorm.DB
}

func NewSprintRepository(db *gorm.DB) *SprintRepository {
	return &SprintRepository{db: db}
}

func (r *SprintRepository) Create(ctx context.Context, sprint *model.Sprint) error {
	return r.db.WithContext(ctx).Create(sprint).Error
}

// GetByID returns the sprint with its project loaded.
func (r *SprintRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Sprint, error) {
	var sprint model.Sprint
	err := r.db.WithContext(ctx).Joins("Project").Where("sprints.id = ?", id).First(&sprint).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSprintNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sprint, nil
}

// ListByProject returns the project's sprints, newest first.
func (r *SprintRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Sprint, error) {
	var sprints []model.Sprint
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&sprints).Error
	return sprints, err
}

// Transition moves the sprint from one status to another. It fails with
// ErrSprintStatusChanged when the stored status is no longer from. When to is ACTIVE no
// other sprint of the project may be active.
func (r *SprintRepository) Transition(ctx context.Context, sprint *model.Sprint, from, to model.SprintStatus) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if to == model.SprintActive {
			var active int64
			if err := tx.Model(&model.Sprint{}).
				Where("project_id = ? AND status = ? AND id <> ?", sprint.ProjectID, model.SprintActive, sprint.ID).
				Count(&active).Error; err != nil {
				return err
			}
			if active > 0 {
				return ErrSprintAlreadyActive
			}
		}

		result := tx.Model(&model.Sprint{}).
			Where("id = ? AND status = ?", sprint.ID, from).
			Update("status", to)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrSprintStatusChanged
		}

		sprint.Status = to
		return nil
	})
}
