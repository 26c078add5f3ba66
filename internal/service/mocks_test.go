package service_test

import (
	"context"

	"scrumboard/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Upsert(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

type MockMembershipStore struct {
	mock.Mock
}

func (m *MockMembershipStore) Record(ctx context.Context, orgID string, userID uuid.UUID, role model.OrgRole) error {
	args := m.Called(ctx, orgID, userID, role)
	return args.Error(0)
}

func (m *MockMembershipStore) IsMember(ctx context.Context, orgID string, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, orgID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMembershipStore) ListMembers(ctx context.Context, orgID string) ([]model.Membership, error) {
	args := m.Called(ctx, orgID)
	members, _ := args.Get(0).([]model.Membership)
	return members, args.Error(1)
}

type MockProjectStore struct {
	mock.Mock
}

func (m *MockProjectStore) Create(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id)
	project := args.Get(0)
	if project == nil {
		return nil, args.Error(1)
	}
	return project.(*model.Project), args.Error(1)
}

func (m *MockProjectStore) ListByOrganization(ctx context.Context, orgID string) ([]model.Project, error) {
	args := m.Called(ctx, orgID)
	projects, _ := args.Get(0).([]model.Project)
	return projects, args.Error(1)
}

type MockSprintStore struct {
	mock.Mock
}

func (m *MockSprintStore) Create(ctx context.Context, sprint *model.Sprint) error {
	args := m.Called(ctx, sprint)
	return args.Error(0)
}

func (m *MockSprintStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Sprint, error) {
	args := m.Called(ctx, id)
	sprint := args.Get(0)
	if sprint == nil {
		return nil, args.Error(1)
	}
	return sprint.(*model.Sprint), args.Error(1)
}

func (m *MockSprintStore) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Sprint, error) {
	args := m.Called(ctx, projectID)
	sprints, _ := args.Get(0).([]model.Sprint)
	return sprints, args.Error(1)
}

func (m *MockSprintStore) Transition(ctx context.Context, sprint *model.Sprint, from, to model.SprintStatus) error {
	args := m.Called(ctx, sprint, from, to)
	err := args.Error(0)
	if err == nil {
		sprint.Status = to
	}
	return err
}

type MockIssueStore struct {
	mock.Mock
}

func (m *MockIssueStore) Create(ctx context.Context, issue *model.Issue) error {
	args := m.Called(ctx, issue)
	return args.Error(0)
}

func (m *MockIssueStore) NextOrder(ctx context.Context, projectID uuid.UUID, sprintID *uuid.UUID, status model.IssueStatus) (int, error) {
	args := m.Called(ctx, projectID, sprintID, status)
	return args.Int(0), args.Error(1)
}

func (m *MockIssueStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Issue, error) {
	args := m.Called(ctx, id)
	issue := args.Get(0)
	if issue == nil {
		return nil, args.Error(1)
	}
	return issue.(*model.Issue), args.Error(1)
}

func (m *MockIssueStore) ListBySprint(ctx context.Context, sprintID uuid.UUID) ([]model.Issue, error) {
	args := m.Called(ctx, sprintID)
	issues, _ := args.Get(0).([]model.Issue)
	return issues, args.Error(1)
}

func (m *MockIssueStore) ListBacklog(ctx context.Context, projectID uuid.UUID) ([]model.Issue, error) {
	args := m.Called(ctx, projectID)
	issues, _ := args.Get(0).([]model.Issue)
	return issues, args.Error(1)
}

func (m *MockIssueStore) ListForUser(ctx context.Context, orgID string, userID uuid.UUID) ([]model.Issue, error) {
	args := m.Called(ctx, orgID, userID)
	issues, _ := args.Get(0).([]model.Issue)
	return issues, args.Error(1)
}

func (m *MockIssueStore) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Issue, error) {
	args := m.Called(ctx, ids)
	issues, _ := args.Get(0).([]model.Issue)
	return issues, args.Error(1)
}

func (m *MockIssueStore) Update(ctx context.Context, issue *model.Issue) error {
	args := m.Called(ctx, issue)
	return args.Error(0)
}

func (m *MockIssueStore) Delete(ctx context.Context, id, reporterID uuid.UUID) error {
	args := m.Called(ctx, id, reporterID)
	return args.Error(0)
}

func (m *MockIssueStore) UpdateOrder(ctx context.Context, updates []model.OrderUpdate) error {
	args := m.Called(ctx, updates)
	return args.Error(0)
}

const orgID = "org_1"

func admin() model.Caller {
	return model.Caller{UserID: uuid.New(), OrganizationID: orgID, Role: model.RoleAdmin}
}

func member() model.Caller {
	return model.Caller{UserID: uuid.New(), OrganizationID: orgID, Role: model.RoleMember}
}

func project() *model.Project {
	return &model.Project{ID: uuid.New(), OrganizationID: orgID, Name: "Payments", Key: "PAY"}
}
