package repository

import (
	"context"
	"errors"
	"fmt"

	"scrumboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IssueRepository struct {
	db *gorm.DB
}

func NewIssueRepository(db *gorm.DB) *IssueRepository {
	return &IssueRepository{db: db}
}

// column scopes a query to one board column: a project, its sprint (or backlog) and a status.
func column(projectID uuid.UUID, sprintID *uuid.UUID, status model.IssueStatus) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("project_id = ? AND status = ?", projectID, status)
		if sprintID == nil {
			return db.Where("sprint_id IS NULL")
		}
		return db.Where("sprint_id = ?", *sprintID)
	}
}

// columnKey names a board column for advisory locking.
func columnKey(projectID uuid.UUID, sprintID *uuid.UUID, status model.IssueStatus) string {
	sprint := "backlog"
	if sprintID != nil {
		sprint = sprintID.String()
	}
	return fmt.Sprintf("issues:%s:%s:%s", projectID, sprint, status)
}

// Create appends the issue to the end of its column. Order is computed inside the insert
// transaction: max order of the column plus one, or 0 for an empty column. Concurrent
// creates in one column queue on a transaction scoped advisory lock.
func (r *IssueRepository) Create(ctx context.Context, issue *model.Issue) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		key := columnKey(issue.ProjectID, issue.SprintID, issue.Status)
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error; err != nil {
			return err
		}
		next, err := nextOrder(tx, issue.ProjectID, issue.SprintID, issue.Status)
		if err != nil {
			return err
		}
		issue.Order = next
		return tx.Create(issue).Error
	})
}

// NextOrder returns the order a new issue appended to the column would get. It takes no
// lock, so a concurrent append can claim the same order; the later write wins.
func (r *IssueRepository) NextOrder(ctx context.Context, projectID uuid.UUID, sprintID *uuid.UUID, status model.IssueStatus) (int, error) {
	return nextOrder(r.db.WithContext(ctx), projectID, sprintID, status)
}

func nextOrder(db *gorm.DB, projectID uuid.UUID, sprintID *uuid.UUID, status model.IssueStatus) (int, error) {
	var next struct {
		Next int
	}
	err := db.Model(&model.Issue{}).
		Select("COALESCE(MAX(sort_order) + 1, 0) AS next").
		Scopes(column(projectID, sprintID, status)).
		Scan(&next).Error
	return next.Next, err
}

// GetByID returns the issue with project, reporter and assignee loaded.
func (r *IssueRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Issue, error) {
	var issue model.Issue
	result := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Reporter").
		Preload("Assignee").
		First(&issue, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrIssueNotFound
		}
		return nil, result.Error
	}
	return &issue, nil
}

// ListBySprint returns the sprint's issues ordered by status then order.
func (r *IssueRepository) ListBySprint(ctx context.Context, sprintID uuid.UUID) ([]model.Issue, error) {
	var issues []model.Issue
	result := r.db.WithContext(ctx).
		Preload("Reporter").
		Preload("Assignee").
		Where("sprint_id = ?", sprintID).
		Order("status").
		Order("sort_order").
		Find(&issues)
	if result.Error != nil {
		return nil, result.Error
	}
	return issues, nil
}

// ListBacklog returns the project's issues that belong to no sprint.
func (r *IssueRepository) ListBacklog(ctx context.Context, projectID uuid.UUID) ([]model.Issue, error) {
	var issues []model.Issue
	result := r.db.WithContext(ctx).
		Preload("Reporter").
		Preload("Assignee").
		Where("project_id = ? AND sprint_id IS NULL", projectID).
		Order("status").
		Order("sort_order").
		Find(&issues)
	if result.Error != nil {
		return nil, result.Error
	}
	return issues, nil
}

// ListForUser returns issues assigned to or reported by the user inside the organization,
// most recently updated first.
func (r *IssueRepository) ListForUser(ctx context.Context, orgID string, userID uuid.UUID) ([]model.Issue, error) {
	var issues []model.Issue
	result := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Reporter").
		Preload("Assignee").
		Joins("JOIN projects ON projects.id = issues.project_id").
		Where("projects.organization_id = ?", orgID).
		Where("issues.assignee_id = ? OR issues.reporter_id = ?", userID, userID).
		Order("issues.updated_at DESC").
		Find(&issues)
	if result.Error != nil {
		return nil, result.Error
	}
	return issues, nil
}

// ListByIDs returns the issues with the given ids together with their projects.
func (r *IssueRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Issue, error) {
	var issues []model.Issue
	if len(ids) == 0 {
		return issues, nil
	}
	err := r.db.WithContext(ctx).Preload("Project").Where("id IN ?", ids).Find(&issues).Error
	return issues, err
}

// Update saves the editable fields of the issue.
func (r *IssueRepository) Update(ctx context.Context, issue *model.Issue) error {
	result := r.db.WithContext(ctx).Model(issue).
		Select("title", "description", "priority", "assignee_id", "status", "sort_order", "updated_at").
		Updates(issue)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrIssueNotFound
	}
	return nil
}

// Delete removes the issue if it was reported by reporterID.
func (r *IssueRepository) Delete(ctx context.Context, id, reporterID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND reporter_id = ?", id, reporterID).
		Delete(&model.Issue{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrIssueNotFound
	}
	return nil
}

// UpdateOrder writes a batch of (status, order) pairs atomically. Either every update
// commits or none does.
func (r *IssueRepository) UpdateOrder(ctx context.Context, updates []model.OrderUpdate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			result := tx.Model(&model.Issue{}).
				Where("id = ?", u.ID).
				Updates(map[string]interface{}{
					"status":     u.Status,
					"sort_order": u.Order,
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrIssueNotFound
			}
		}
		return nil
	})
}
