package handler

import (
	"net/http"

	"scrumboard/internal/service"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projects ProjectService
}

func NewProjectHandler(projects ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Key         string `json:"key" binding:"required"`
	Description string `json:"description"`
}

// Create godoc
// @Summary      Create a project
// @Description  Organization admins only. The key must be unique inside the organization.
// @Tags         Projects
// @Accept       json
// @Produce      json
// @Param        project  body      CreateProjectRequest  true  "Project"
// @Success      201      {object}  ProjectResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      403      {object}  ErrorResponse
// @Failure      409      {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project, err := h.projects.Create(c.Request.Context(), caller, service.ProjectInput{
		Name:        req.Name,
		Key:         req.Key,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err, "Project", "create project")
		return
	}

	c.JSON(http.StatusCreated, toProjectResponse(project))
}

// GetAll godoc
// @Summary  List the organization's projects
// @Tags     Projects
// @Produce  json
// @Success  200  {array}  ProjectResponse
// @Security BearerAuth
// @Router   /projects [get]
func (h *ProjectHandler) GetAll(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	projects, err := h.projects.List(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err, "Project", "retrieve projects")
		return
	}

	response := make([]ProjectResponse, len(projects))
	for i := range projects {
		response[i] = toProjectResponse(&projects[i])
	}
	c.JSON(http.StatusOK, response)
}

// GetByID godoc
// @Summary  Project overview with sprints, current sprint and backlog
// @Tags     Projects
// @Produce  json
// @Param    id   path      string  true  "Project ID"
// @Success  200  {object}  OverviewResponse
// @Failure  404  {object}  ErrorResponse
// @Security BearerAuth
// @Router   /projects/{id} [get]
func (h *ProjectHandler) GetByID(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "project")
	if !ok {
		return
	}

	overview, err := h.projects.Overview(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err, "Project", "retrieve project")
		return
	}

	response := OverviewResponse{
		Project: toProjectResponse(overview.Project),
		Sprints: toSprintResponses(overview.Sprints),
		Backlog: toColumnResponses(overview.Backlog),
	}
	if overview.Current != nil {
		current := toSprintResponse(overview.Current)
		response.CurrentSprint = &current
	}
	c.JSON(http.StatusOK, response)
}

