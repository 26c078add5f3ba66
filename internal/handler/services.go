package handler

import (
	"context"

	"scrumboard/internal/board"
	"scrumboard/internal/model"
	"scrumboard/internal/service"

	"github.com/google/uuid"
)

// The interfaces below are implemented by the types in internal/service.

type ProjectService interface {
	Create(ctx context.Context, caller model.Caller, in service.ProjectInput) (*model.Project, error)
	List(ctx context.Context, caller model.Caller) ([]model.Project, error)
	Overview(ctx context.Context, caller model.Caller, id uuid.UUID) (*service.Overview, error)
}

type SprintService interface {
	Create(ctx context.Context, caller model.Caller, projectID uuid.UUID, in service.SprintInput) (*model.Sprint, error)
	List(ctx context.Context, caller model.Caller, projectID uuid.UUID) ([]model.Sprint, error)
	Get(ctx context.Context, caller model.Caller, id uuid.UUID) (*model.Sprint, error)
	Start(ctx context.Context, caller model.Caller, id uuid.UUID) (*model.Sprint, error)
	Complete(ctx context.Context, caller model.Caller, id uuid.UUID) (*model.Sprint, error)
	Board(ctx context.Context, caller model.Caller, id uuid.UUID) (*service.Board, error)
}

type IssueService interface {
	ListForSprint(ctx context.Context, caller model.Caller, sprintID uuid.UUID) ([]model.Issue, error)
	ListBacklog(ctx context.Context, caller model.Caller, projectID uuid.UUID) ([]model.Issue, error)
	ListForUser(ctx context.Context, caller model.Caller, userID uuid.UUID) ([]model.Issue, error)
	Get(ctx context.Context, caller model.Caller, id uuid.UUID) (*model.Issue, error)
	Create(ctx context.Context, caller model.Caller, projectID uuid.UUID, in service.IssueInput) (*model.Issue, error)
	Update(ctx context.Context, caller model.Caller, id uuid.UUID, in service.IssueInput) (*model.Issue, error)
	Delete(ctx context.Context, caller model.Caller, id uuid.UUID) error
	Move(ctx context.Context, caller model.Caller, sprintID uuid.UUID, drop board.Drop) (board.Columns, board.Result, error)
	ApplyOrder(ctx context.Context, caller model.Caller, updates []model.OrderUpdate) error
}

type UserService interface {
	Me(ctx context.Context, caller model.Caller) (*model.User, error)
	Members(ctx context.Context, caller model.Caller) ([]model.Membership, error)
}
