package handler

import (
	"net/http"
	"time"

	"scrumboard/internal/service"

	"github.com/gin-gonic/gin"
)

type SprintHandler struct {
	sprints SprintService
}

func NewSprintHandler(sprints SprintService) *SprintHandler {
	return &SprintHandler{sprints: sprints}
}

type CreateSprintRequest struct {
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
}

// Create godoc
// @Summary      Plan a sprint
// @Description  Organization admins only. The sprint starts out PLANNED. An empty name becomes KEY-Sprint-N.
// @Tags         Sprints
// @Accept       json
// @Produce      json
// @Param        id      path      string               true  "Project ID"
// @Param        sprint  body      CreateSprintRequest  true  "Sprint"
// @Success      201     {object}  SprintResponse
// @Failure      400     {object}  ErrorResponse
// @Failure      403     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /projects/{id}/sprints [post]
func (h *SprintHandler) Create(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	projectID, ok := parseID(c, "id", "project")
	if !ok {
		return
	}

	var req CreateSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	sprint, err := h.sprints.Create(c.Request.Context(), caller, projectID, service.SprintInput{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		respondError(c, err, "Project", "create sprint")
		return
	}

	c.JSON(http.StatusCreated, toSprintResponse(sprint))
}

// GetByProject godoc
// @Summary  List a project's sprints, newest first
// @Tags     Sprints
// @Produce  json
// @Param    id   path     string  true  "Project ID"
// @Success  200  {array}  SprintResponse
// @Security BearerAuth
// @Router   /projects/{id}/sprints [get]
func (h *SprintHandler) GetByProject(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	projectID, ok := parseID(c, "id", "project")
	if !ok {
		return
	}

	sprints, err := h.sprints.List(c.Request.Context(), caller, projectID)
	if err != nil {
		respondError(c, err, "Project", "retrieve sprints")
		return
	}
	c.JSON(http.StatusOK, toSprintResponses(sprints))
}

// GetByID godoc
// @Summary  Get a sprint
// @Tags     Sprints
// @Produce  json
// @Param    id   path      string  true  "Sprint ID"
// @Success  200  {object}  SprintResponse
// @Failure  404  {object}  ErrorResponse
// @Security BearerAuth
// @Router   /sprints/{id} [get]
func (h *SprintHandler) GetByID(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "sprint")
	if !ok {
		return
	}

	sprint, err := h.sprints.Get(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err, "Sprint", "retrieve sprint")
		return
	}
	c.JSON(http.StatusOK, toSprintResponse(sprint))
}

// Start godoc
// @Summary      Start a sprint
// @Description  Organization admins only, and only while the current time is inside the sprint's dates.
// @Tags         Sprints
// @Produce      json
// @Param        id   path      string  true  "Sprint ID"
// @Success      200  {object}  SprintResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /sprints/{id}/start [post]
func (h *SprintHandler) Start(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "sprint")
	if !ok {
		return
	}

	sprint, err := h.sprints.Start(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err, "Sprint", "start sprint")
		return
	}
	c.JSON(http.StatusOK, toSprintResponse(sprint))
}

// Complete godoc
// @Summary  Complete an active sprint
// @Tags     Sprints
// @Produce  json
// @Param    id   path      string  true  "Sprint ID"
// @Success  200  {object}  SprintResponse
// @Failure  403  {object}  ErrorResponse
// @Failure  409  {object}  ErrorResponse
// @Security BearerAuth
// @Router   /sprints/{id}/complete [post]
func (h *SprintHandler) Complete(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "sprint")
	if !ok {
		return
	}

	sprint, err := h.sprints.Complete(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err, "Sprint", "complete sprint")
		return
	}
	c.JSON(http.StatusOK, toSprintResponse(sprint))
}

// Board godoc
// @Summary  Sprint board: issues by status column plus a status badge
// @Tags     Sprints
// @Produce  json
// @Param    id   path      string  true  "Sprint ID"
// @Success  200  {object}  BoardResponse
// @Failure  404  {object}  ErrorResponse
// @Security BearerAuth
// @Router   /sprints/{id}/board [get]
func (h *SprintHandler) Board(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "sprint")
	if !ok {
		return
	}

	b, err := h.sprints.Board(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err, "Sprint", "retrieve board")
		return
	}
	c.JSON(http.StatusOK, BoardResponse{
		Sprint:  toSprintResponse(b.Sprint),
		Badge:   toBadgeResponse(b.Badge),
		Columns: toColumnResponses(b.Columns),
	})
}
