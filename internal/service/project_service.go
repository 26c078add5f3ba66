package service

import (
	"context"
	"errors"

	"scrumboard/internal/board"
	"scrumboard/internal/lifecycle"
	"scrumboard/internal/model"
	"scrumboard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type ProjectService struct {
	projects ProjectStore
	sprints  SprintStore
	issues   IssueStore
	log      *zap.SugaredLogger
}

func NewProjectService(projects ProjectStore, sprints SprintStore, issues IssueStore, log *zap.SugaredLogger) *ProjectService {
	return &ProjectService{projects: projects, sprints: sprints, issues: issues, log: log}
}

// Overview is a project together with its sprints and backlog.
type Overview struct {
	Project *model.Project
	Sprints []model.Sprint
	Backlog board.Columns
	// Current is the sprint shown by default, nil when the project has none.
	Current *model.Sprint
}

// Create adds a project to the caller's organization. Only admins may create projects.
func (s *ProjectService) Create(ctx context.Context, caller model.Caller, in ProjectInput) (*model.Project, error) {
	if !caller.Role.IsAdmin() {
		return nil, forbidden("only organization admins can create projects")
	}
	in.normalize()
	if err := check(in); err != nil {
		return nil, err
	}

	project := &model.Project{
		OrganizationID: caller.OrganizationID,
		Name:           in.Name,
		Key:            in.Key,
		Description:    in.Description,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		if errors.Is(err, repository.ErrDuplicateProjectKey) {
			return nil, reject("project key already in use")
		}
		return nil, err
	}

	s.log.Infow("project created", "project", project.ID, "org", caller.OrganizationID, "key", project.Key)
	return project, nil
}

func (s *ProjectService) List(ctx context.Context, caller model.Caller) ([]model.Project, error) {
	return s.projects.ListByOrganization(ctx, caller.OrganizationID)
}

// Get returns the project if it belongs to the caller's organization.
func (s *ProjectService) Get(ctx context.Context, caller model.Caller, id uuid.UUID) (*model.Project, error) {
	return loadProject(ctx, s.projects, caller, id)
}

// Overview loads the project, its sprints and its backlog. Sprints and backlog are read
// concurrently.
func (s *ProjectService) Overview(ctx context.Context, caller model.Caller, id uuid.UUID) (*Overview, error) {
	project, err := s.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	var (
		sprints []model.Sprint
		backlog []model.Issue
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sprints, err = s.sprints.ListByProject(gctx, project.ID)
		return err
	})
	g.Go(func() error {
		var err error
		backlog, err = s.issues.ListBacklog(gctx, project.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	overview := &Overview{
		Project: project,
		Sprints: sprints,
		Backlog: board.Arrange(backlog),
	}
	if current, ok := lifecycle.Current(sprints); ok {
		overview.Current = &current
	}
	return overview, nil
}
