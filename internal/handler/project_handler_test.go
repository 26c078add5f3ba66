package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"scrumboard/internal/board"
	"scrumboard/internal/handler"
	"scrumboard/internal/model"
	"scrumboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) Create(ctx context.Context, caller model.Caller, in service.ProjectInput) (*model.Project, error) {
	args := m.Called(ctx, caller, in)
	project := args.Get(0)
	if project == nil {
		return nil, args.Error(1)
	}
	return project.(*model.Project), args.Error(1)
}

func (m *MockProjectService) List(ctx context.Context, caller model.Caller) ([]model.Project, error) {
	args := m.Called(ctx, caller)
	projects, _ := args.Get(0).([]model.Project)
	return projects, args.Error(1)
}

func (m *MockProjectService) Overview(ctx context.Context, caller model.Caller, id uuid.UUID) (*service.Overview, error) {
	args := m.Called(ctx, caller, id)
	overview := args.Get(0)
	if overview == nil {
		return nil, args.Error(1)
	}
	return overview.(*service.Overview), args.Error(1)
}

func setupProjectRouter() (*gin.Engine, *MockProjectService) {
	projects := new(MockProjectService)
	h := handler.NewProjectHandler(projects)
	r := newRouter(testCaller)
	r.POST("/projects", h.Create)
	r.GET("/projects", h.GetAll)
	r.GET("/projects/:id", h.GetByID)
	return r, projects
}

func TestProjectCreate(t *testing.T) {
	// Arrange
	router, projects := setupProjectRouter()
	in := service.ProjectInput{Name: "Payments", Key: "PAY"}
	projects.On("Create", mock.Anything, testCaller, in).
		Return(&model.Project{ID: uuid.New(), OrganizationID: "org_1", Name: "Payments", Key: "PAY"}, nil)

	req := jsonRequest("POST", "/projects", map[string]any{"name": "Payments", "key": "PAY"})

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	require.Equal(t, http.StatusCreated, resp.Code)
	var got handler.ProjectResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, "PAY", got.Key)
}

func TestProjectCreate_MissingKey(t *testing.T) {
	router, projects := setupProjectRouter()

	req := jsonRequest("POST", "/projects", map[string]any{"name": "Payments"})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	projects.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestProjectCreate_DuplicateKey(t *testing.T) {
	router, projects := setupProjectRouter()
	projects.On("Create", mock.Anything, testCaller, mock.Anything).
		Return(nil, &service.RejectionError{Reason: "project key already in use"})

	req := jsonRequest("POST", "/projects", map[string]any{"name": "Payments", "key": "PAY"})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestProjectOverview(t *testing.T) {
	// Arrange
	router, projects := setupProjectRouter()
	p := &model.Project{ID: uuid.New(), Name: "Payments", Key: "PAY"}
	active := model.Sprint{ID: uuid.New(), ProjectID: p.ID, Status: model.SprintActive}
	projects.On("Overview", mock.Anything, testCaller, p.ID).Return(&service.Overview{
		Project: p,
		Sprints: []model.Sprint{active},
		Current: &active,
		Backlog: board.Columns{},
	}, nil)

	req, _ := http.NewRequest("GET", "/projects/"+p.ID.String(), nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	require.Equal(t, http.StatusOK, resp.Code)
	var got handler.OverviewResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	require.NotNil(t, got.CurrentSprint)
	assert.Equal(t, active.ID.String(), got.CurrentSprint.ID)
	assert.Len(t, got.Backlog, 4)
}
