package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"scrumboard/internal/board"
	"scrumboard/internal/lifecycle"
	"scrumboard/internal/metrics"
	"scrumboard/internal/model"
	"scrumboard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SprintService struct {
	sprints  SprintStore
	projects ProjectStore
	issues   IssueStore
	log      *zap.SugaredLogger
	now      func() time.Time
}

// NewSprintService builds the service. A nil now uses time.Now.
func NewSprintService(sprints SprintStore, projects ProjectStore, issues IssueStore, log *zap.SugaredLogger, now func() time.Time) *SprintService {
	if now == nil {
		now = time.Now
	}
	return &SprintService{sprints: sprints, projects: projects, issues: issues, log: log, now: now}
}

// Board is a sprint's issues laid out in status columns.
type Board struct {
	Sprint  *model.Sprint
	Columns board.Columns
	Badge   lifecycle.Badge
}

// Create plans a new sprint in the project. New sprints start out PLANNED.
func (s *SprintService) Create(ctx context.Context, caller model.Caller, projectID uuid.UUID, in SprintInput) (*model.Sprint, error) {
	if !caller.Role.IsAdmin() {
		return nil, forbidden("only organization admins can create sprints")
	}
	project, err := loadProject(ctx, s.projects, caller, projectID)
	if err != nil {
		return nil, err
	}
	if err := check(in); err != nil {
		return nil, err
	}

	if in.Name == "" {
		existing, err := s.sprints.ListByProject(ctx, project.ID)
		if err != nil {
			return nil, err
		}
		in.Name = fmt.Sprintf("%s-Sprint-%d", project.Key, len(existing)+1)
	}

	sprint := &model.Sprint{
		ProjectID: project.ID,
		Name:      in.Name,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Status:    model.SprintPlanned,
	}
	if err := s.sprints.Create(ctx, sprint); err != nil {
		return nil, err
	}
	sprint.Project = *project

	s.log.Infow("sprint created", "sprint", sprint.ID, "project", project.ID, "name", sprint.Name)
	return sprint, nil
}

// List returns the project's sprints, newest first.
func (s *SprintService) List(ctx context.Context, caller model.Caller, projectID uuid.UUID) ([]model.Sprint, error) {
	project, err := loadProject(ctx, s.projects, caller, projectID)
	if err != nil {
		return nil, err
	}
	return s.sprints.ListByProject(ctx, project.ID)
}

// Get returns the sprint if its project belongs to the caller's organization.
func (s *SprintService) Get(ctx context.Context, caller model.Caller, id uuid.UUID) (*model.Sprint, error) {
	return loadSprint(ctx, s.sprints, caller, id)
}

// Start moves a PLANNED sprint to ACTIVE.
func (s *SprintService) Start(ctx context.Context, caller model.Caller, id uuid.UUID) (*model.Sprint, error) {
	return s.transition(ctx, caller, id, model.SprintActive)
}

// Complete moves an ACTIVE sprint to COMPLETED.
func (s *SprintService) Complete(ctx context.Context, caller model.Caller, id uuid.UUID) (*model.Sprint, error) {
	return s.transition(ctx, caller, id, model.SprintCompleted)
}

func (s *SprintService) transition(ctx context.Context, caller model.Caller, id uuid.UUID, to model.SprintStatus) (*model.Sprint, error) {
	// Decide on the stored sprint, never on client state.
	sprint, err := s.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	decision := lifecycle.Evaluate(*sprint, to, caller.Role, s.now())
	metrics.RegisterTransition(string(to), decision.Allowed)
	if !decision.Allowed {
		s.log.Infow("sprint transition rejected",
			"sprint", sprint.ID, "from", sprint.Status, "to", to, "reason", decision.Reason)
		if !caller.Role.IsAdmin() {
			return nil, forbidden(decision.Reason)
		}
		return nil, reject(decision.Reason)
	}

	from := sprint.Status
	if err := s.sprints.Transition(ctx, sprint, from, to); err != nil {
		switch {
		case errors.Is(err, repository.ErrSprintStatusChanged):
			return nil, reject("sprint status was changed by someone else")
		case errors.Is(err, repository.ErrSprintAlreadyActive):
			return nil, reject("another sprint of this project is already active")
		}
		return nil, err
	}

	s.log.Infow("sprint transitioned", "sprint", sprint.ID, "from", from, "to", to, "user", caller.UserID)
	return sprint, nil
}

// Board returns the sprint's issues arranged into columns with the sprint's status badge.
func (s *SprintService) Board(ctx context.Context, caller model.Caller, id uuid.UUID) (*Board, error) {
	sprint, err := s.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	issues, err := s.issues.ListBySprint(ctx, sprint.ID)
	if err != nil {
		return nil, err
	}
	return &Board{
		Sprint:  sprint,
		Columns: board.Arrange(issues),
		Badge:   lifecycle.Describe(*sprint, s.now()),
	}, nil
}
