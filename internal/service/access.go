package service

import (
	"context"
	"errors"

	"scrumboard/internal/model"
	"scrumboard/internal/repository"

	"github.com/google/uuid"
)

// Loaders below hide records of other organizations behind ErrNotFound.

func loadProject(ctx context.Context, store ProjectStore, caller model.Caller, id uuid.UUID) (*model.Project, error) {
	project, err := store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if project.OrganizationID != caller.OrganizationID {
		return nil, ErrNotFound
	}
	return project, nil
}

func loadSprint(ctx context.Context, store SprintStore, caller model.Caller, id uuid.UUID) (*model.Sprint, error) {
	sprint, err := store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSprintNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if sprint.Project.OrganizationID != caller.OrganizationID {
		return nil, ErrNotFound
	}
	return sprint, nil
}

func loadIssue(ctx context.Context, store IssueStore, caller model.Caller, id uuid.UUID) (*model.Issue, error) {
	issue, err := store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrIssueNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if issue.Project == nil || issue.Project.OrganizationID != caller.OrganizationID {
		return nil, ErrNotFound
	}
	return issue, nil
}
