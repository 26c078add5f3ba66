package service

import (
	"context"
	"errors"

	"scrumboard/internal/board"
	"scrumboard/internal/metrics"
	"scrumboard/internal/model"
	"scrumboard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type IssueService struct {
	issues   IssueStore
	projects ProjectStore
	sprints  SprintStore
	members  MembershipStore
	log      *zap.SugaredLogger
}

func NewIssueService(issues IssueStore, projects ProjectStore, sprints SprintStore, members MembershipStore, log *zap.SugaredLogger) *IssueService {
	return &IssueService{issues: issues, projects: projects, sprints: sprints, members: members, log: log}
}

func (s *IssueService) ListForSprint(ctx context.Context, caller model.Caller, sprintID uuid.UUID) ([]model.Issue, error) {
	sprint, err := loadSprint(ctx, s.sprints, caller, sprintID)
	if err != nil {
		return nil, err
	}
	return s.issues.ListBySprint(ctx, sprint.ID)
}

func (s *IssueService) ListBacklog(ctx context.Context, caller model.Caller, projectID uuid.UUID) ([]model.Issue, error) {
	project, err := loadProject(ctx, s.projects, caller, projectID)
	if err != nil {
		return nil, err
	}
	return s.issues.ListBacklog(ctx, project.ID)
}

// ListForUser returns the issues assigned to or reported by userID in the caller's
// organization. userID must be a member of that organization.
func (s *IssueService) ListForUser(ctx context.Context, caller model.Caller, userID uuid.UUID) ([]model.Issue, error) {
	if userID != caller.UserID {
		ok, err := s.members.IsMember(ctx, caller.OrganizationID, userID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrNotFound
		}
	}
	return s.issues.ListForUser(ctx, caller.OrganizationID, userID)
}

func (s *IssueService) Get(ctx context.Context, caller model.Caller, id uuid.UUID) (*model.Issue, error) {
	return loadIssue(ctx, s.issues, caller, id)
}

// Create appends a new issue to the end of its column in the project, or in the given
// sprint of the project.
func (s *IssueService) Create(ctx context.Context, caller model.Caller, projectID uuid.UUID, in IssueInput) (*model.Issue, error) {
	project, err := loadProject(ctx, s.projects, caller, projectID)
	if err != nil {
		return nil, err
	}
	in.normalize(model.StatusTodo, model.PriorityMedium)
	if err := check(in); err != nil {
		return nil, err
	}
	if err := s.checkPlacement(ctx, caller, project.ID, in); err != nil {
		return nil, err
	}

	issue := &model.Issue{
		ProjectID:   project.ID,
		SprintID:    in.SprintID,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		ReporterID:  caller.UserID,
		AssigneeID:  in.AssigneeID,
	}
	if err := s.issues.Create(ctx, issue); err != nil {
		return nil, err
	}
	issue.Project = project

	s.log.Infow("issue created", "issue", issue.ID, "project", project.ID, "status", issue.Status, "order", issue.Order)
	return issue, nil
}

// Update replaces the editable fields of an issue. Omitted status and priority keep their
// stored values. A status change appends the issue to the end of its new column. The issue
// stays in its sprint.
func (s *IssueService) Update(ctx context.Context, caller model.Caller, id uuid.UUID, in IssueInput) (*model.Issue, error) {
	issue, err := loadIssue(ctx, s.issues, caller, id)
	if err != nil {
		return nil, err
	}
	in.normalize(issue.Status, issue.Priority)
	in.SprintID = issue.SprintID
	if err := check(in); err != nil {
		return nil, err
	}
	if err := s.checkAssignee(ctx, caller, in.AssigneeID); err != nil {
		return nil, err
	}

	if in.Status != issue.Status {
		next, err := s.issues.NextOrder(ctx, issue.ProjectID, issue.SprintID, in.Status)
		if err != nil {
			return nil, err
		}
		issue.Status = in.Status
		issue.Order = next
	}
	issue.Title = in.Title
	issue.Description = in.Description
	issue.Priority = in.Priority
	issue.AssigneeID = in.AssigneeID
	issue.Assignee = nil

	if err := s.issues.Update(ctx, issue); err != nil {
		if errors.Is(err, repository.ErrIssueNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.reload(ctx, issue.ID)
}

// reload reads the issue back so its associations match the stored ids.
func (s *IssueService) reload(ctx context.Context, id uuid.UUID) (*model.Issue, error) {
	issue, err := s.issues.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrIssueNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return issue, nil
}

// Delete removes an issue. Only its reporter may delete it.
func (s *IssueService) Delete(ctx context.Context, caller model.Caller, id uuid.UUID) error {
	issue, err := loadIssue(ctx, s.issues, caller, id)
	if err != nil {
		return err
	}
	if issue.ReporterID != caller.UserID {
		return forbidden("only the reporter can delete an issue")
	}
	if err := s.issues.Delete(ctx, issue.ID, caller.UserID); err != nil {
		if errors.Is(err, repository.ErrIssueNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.log.Infow("issue deleted", "issue", issue.ID, "user", caller.UserID)
	return nil
}

// Move applies a drag and drop to the sprint board. The board is read from the store,
// the changed issues are written in one batch and the board is read back. On failure
// nothing is written and the error is returned.
func (s *IssueService) Move(ctx context.Context, caller model.Caller, sprintID uuid.UUID, drop board.Drop) (board.Columns, board.Result, error) {
	if !drop.Destination.Status.Valid() {
		return nil, board.Result{}, invalid("unknown destination status %q", drop.Destination.Status)
	}
	sprint, err := loadSprint(ctx, s.sprints, caller, sprintID)
	if err != nil {
		return nil, board.Result{}, err
	}
	issues, err := s.issues.ListBySprint(ctx, sprint.ID)
	if err != nil {
		return nil, board.Result{}, err
	}

	session := board.NewSession(issues)
	confirmed, res, err := session.Move(ctx, drop, board.CommitFunc(func(ctx context.Context, changed []model.Issue) ([]model.Issue, error) {
		if err := s.issues.UpdateOrder(ctx, orderUpdates(changed)); err != nil {
			return nil, err
		}
		return s.issues.ListBySprint(ctx, sprint.ID)
	}))
	if err != nil {
		s.log.Errorw("board move failed", "sprint", sprint.ID, "issue", drop.IssueID, "error", err)
		return nil, res, err
	}

	metrics.RegisterMove(moveKind(issues, drop, res))
	s.log.Debugw("board move", "sprint", sprint.ID, "issue", drop.IssueID,
		"to", drop.Destination.Status, "index", drop.Destination.Index, "changed", len(res.Changed))
	return board.Arrange(confirmed), res, nil
}

// ApplyOrder writes a batch of (id, status, order) triples atomically. Every id must be an
// issue of the caller's organization.
func (s *IssueService) ApplyOrder(ctx context.Context, caller model.Caller, updates []model.OrderUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(updates))
	seen := make(map[uuid.UUID]struct{}, len(updates))
	for _, u := range updates {
		if !u.Status.Valid() {
			return invalid("unknown status %q", u.Status)
		}
		if u.Order < 0 {
			return invalid("order must not be negative")
		}
		if _, dup := seen[u.ID]; dup {
			return invalid("issue %s listed twice", u.ID)
		}
		seen[u.ID] = struct{}{}
		ids = append(ids, u.ID)
	}

	issues, err := s.issues.ListByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(issues) != len(ids) {
		return ErrNotFound
	}
	for _, issue := range issues {
		if issue.Project == nil || issue.Project.OrganizationID != caller.OrganizationID {
			return ErrNotFound
		}
	}

	if err := s.issues.UpdateOrder(ctx, updates); err != nil {
		if errors.Is(err, repository.ErrIssueNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *IssueService) checkPlacement(ctx context.Context, caller model.Caller, projectID uuid.UUID, in IssueInput) error {
	if in.SprintID != nil {
		sprint, err := loadSprint(ctx, s.sprints, caller, *in.SprintID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return invalid("sprint %s does not exist", *in.SprintID)
			}
			return err
		}
		if sprint.ProjectID != projectID {
			return invalid("sprint %s belongs to another project", sprint.ID)
		}
	}
	return s.checkAssignee(ctx, caller, in.AssigneeID)
}

func (s *IssueService) checkAssignee(ctx context.Context, caller model.Caller, assigneeID *uuid.UUID) error {
	if assigneeID == nil {
		return nil
	}
	ok, err := s.members.IsMember(ctx, caller.OrganizationID, *assigneeID)
	if err != nil {
		return err
	}
	if !ok {
		return invalid("assignee is not a member of the organization")
	}
	return nil
}

func orderUpdates(issues []model.Issue) []model.OrderUpdate {
	updates := make([]model.OrderUpdate, len(issues))
	for i, issue := range issues {
		updates[i] = model.OrderUpdate{ID: issue.ID, Status: issue.Status, Order: issue.Order}
	}
	return updates
}

func moveKind(before []model.Issue, drop board.Drop, res board.Result) string {
	if !res.Moved {
		return "noop"
	}
	for _, issue := range before {
		if issue.ID == drop.IssueID && issue.Status != drop.Destination.Status {
			return "transfer"
		}
	}
	return "reorder"
}
