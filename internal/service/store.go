package service

import (
	"context"

	"scrumboard/internal/model"

	"github.com/google/uuid"
)

// Stores are satisfied by the repositories in internal/repository.

type UserStore interface {
	Upsert(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type MembershipStore interface {
	Record(ctx context.Context, orgID string, userID uuid.UUID, role model.OrgRole) error
	IsMember(ctx context.Context, orgID string, userID uuid.UUID) (bool, error)
	ListMembers(ctx context.Context, orgID string) ([]model.Membership, error)
}

type ProjectStore interface {
	Create(ctx context.Context, project *model.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	ListByOrganization(ctx context.Context, orgID string) ([]model.Project, error)
}

type SprintStore interface {
	Create(ctx context.Context, sprint *model.Sprint) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Sprint, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Sprint, error)
	Transition(ctx context.Context, sprint *model.Sprint, from, to model.SprintStatus) error
}

type IssueStore interface {
	Create(ctx context.Context, issue *model.Issue) error
	NextOrder(ctx context.Context, projectID uuid.UUID, sprintID *uuid.UUID, status model.IssueStatus) (int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Issue, error)
	ListBySprint(ctx context.Context, sprintID uuid.UUID) ([]model.Issue, error)
	ListBacklog(ctx context.Context, projectID uuid.UUID) ([]model.Issue, error)
	ListForUser(ctx context.Context, orgID string, userID uuid.UUID) ([]model.Issue, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Issue, error)
	Update(ctx context.Context, issue *model.Issue) error
	Delete(ctx context.Context, id, reporterID uuid.UUID) error
	UpdateOrder(ctx context.Context, updates []model.OrderUpdate) error
}
