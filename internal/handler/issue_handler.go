package handler

import (
	"net/http"

	"scrumboard/internal/board"
	"scrumboard/internal/model"
	"scrumboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type IssueHandler struct {
	issues IssueService
}

func NewIssueHandler(issues IssueService) *IssueHandler {
	return &IssueHandler{issues: issues}
}

type IssueRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	SprintID    *string `json:"sprint_id"`
	AssigneeID  *string `json:"assignee_id"`
}

type PositionRequest struct {
	Status string `json:"status"`
	Index  int    `json:"index"`
}

type MoveRequest struct {
	IssueID     string          `json:"issue_id" binding:"required"`
	Source      PositionRequest `json:"source"`
	Destination PositionRequest `json:"destination"`
}

type MoveResponse struct {
	Moved   bool             `json:"moved"`
	Changed int              `json:"changed"`
	Columns []ColumnResponse `json:"columns"`
}

type OrderItem struct {
	ID     string `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
	Order  int    `json:"order" binding:"min=0"`
}

type OrderRequest struct {
	Updates []OrderItem `json:"updates" binding:"required,dive"`
}

func (r IssueRequest) input() (service.IssueInput, error) {
	sprintID, err := optionalID(r.SprintID)
	if err != nil {
		return service.IssueInput{}, err
	}
	assigneeID, err := optionalID(r.AssigneeID)
	if err != nil {
		return service.IssueInput{}, err
	}
	return service.IssueInput{
		Title:       r.Title,
		Description: r.Description,
		Status:      model.IssueStatus(r.Status),
		Priority:    model.IssuePriority(r.Priority),
		SprintID:    sprintID,
		AssigneeID:  assigneeID,
	}, nil
}

// Create godoc
// @Summary      Create an issue
// @Description  The issue is appended to the end of its status column. Leave sprint_id empty for the backlog.
// @Tags         Issues
// @Accept       json
// @Produce      json
// @Param        id     path      string        true  "Project ID"
// @Param        issue  body      IssueRequest  true  "Issue"
// @Success      201    {object}  IssueResponse
// @Failure      400    {object}  ErrorResponse
// @Failure      404    {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /projects/{id}/issues [post]
func (h *IssueHandler) Create(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	projectID, ok := parseID(c, "id", "project")
	if !ok {
		return
	}

	var req IssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	in, err := req.input()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	issue, err := h.issues.Create(c.Request.Context(), caller, projectID, in)
	if err != nil {
		respondError(c, err, "Project", "create issue")
		return
	}
	c.JSON(http.StatusCreated, toIssueResponse(issue))
}

// GetBacklog godoc
// @Summary  Issues of the project that belong to no sprint
// @Tags     Issues
// @Produce  json
// @Param    id   path     string  true  "Project ID"
// @Success  200  {array}  ColumnResponse
// @Security BearerAuth
// @Router   /projects/{id}/backlog [get]
func (h *IssueHandler) GetBacklog(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	projectID, ok := parseID(c, "id", "project")
	if !ok {
		return
	}

	issues, err := h.issues.ListBacklog(c.Request.Context(), caller, projectID)
	if err != nil {
		respondError(c, err, "Project", "retrieve backlog")
		return
	}
	c.JSON(http.StatusOK, toColumnResponses(board.Arrange(issues)))
}

// GetBySprint godoc
// @Summary  Issues of a sprint ordered by status and order
// @Tags     Issues
// @Produce  json
// @Param    id   path     string  true  "Sprint ID"
// @Success  200  {array}  IssueResponse
// @Security BearerAuth
// @Router   /sprints/{id}/issues [get]
func (h *IssueHandler) GetBySprint(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	sprintID, ok := parseID(c, "id", "sprint")
	if !ok {
		return
	}

	issues, err := h.issues.ListForSprint(c.Request.Context(), caller, sprintID)
	if err != nil {
		respondError(c, err, "Sprint", "retrieve issues")
		return
	}
	c.JSON(http.StatusOK, toIssueResponses(issues))
}

// GetByUser godoc
// @Summary  Issues assigned to or reported by a user, most recently updated first
// @Tags     Issues
// @Produce  json
// @Param    id   path     string  true  "User ID"
// @Success  200  {array}  IssueResponse
// @Security BearerAuth
// @Router   /users/{id}/issues [get]
func (h *IssueHandler) GetByUser(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	userID, ok := parseID(c, "id", "user")
	if !ok {
		return
	}

	issues, err := h.issues.ListForUser(c.Request.Context(), caller, userID)
	if err != nil {
		respondError(c, err, "User", "retrieve issues")
		return
	}
	c.JSON(http.StatusOK, toIssueResponses(issues))
}

// GetByID godoc
// @Summary  Get an issue
// @Tags     Issues
// @Produce  json
// @Param    id   path      string  true  "Issue ID"
// @Success  200  {object}  IssueResponse
// @Failure  404  {object}  ErrorResponse
// @Security BearerAuth
// @Router   /issues/{id} [get]
func (h *IssueHandler) GetByID(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "issue")
	if !ok {
		return
	}

	issue, err := h.issues.Get(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err, "Issue", "retrieve issue")
		return
	}
	c.JSON(http.StatusOK, toIssueResponse(issue))
}

// Update godoc
// @Summary      Update an issue
// @Description  Changing the status appends the issue to the end of the new column.
// @Tags         Issues
// @Accept       json
// @Produce      json
// @Param        id     path      string        true  "Issue ID"
// @Param        issue  body      IssueRequest  true  "Issue"
// @Success      200    {object}  IssueResponse
// @Failure      400    {object}  ErrorResponse
// @Failure      404    {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /issues/{id} [put]
func (h *IssueHandler) Update(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "issue")
	if !ok {
		return
	}

	var req IssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	in, err := req.input()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	issue, err := h.issues.Update(c.Request.Context(), caller, id, in)
	if err != nil {
		respondError(c, err, "Issue", "update issue")
		return
	}
	c.JSON(http.StatusOK, toIssueResponse(issue))
}

// Delete godoc
// @Summary  Delete an issue. Only its reporter may delete it.
// @Tags     Issues
// @Param    id  path  string  true  "Issue ID"
// @Success  204
// @Failure  403  {object}  ErrorResponse
// @Failure  404  {object}  ErrorResponse
// @Security BearerAuth
// @Router   /issues/{id} [delete]
func (h *IssueHandler) Delete(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "issue")
	if !ok {
		return
	}

	if err := h.issues.Delete(c.Request.Context(), caller, id); err != nil {
		respondError(c, err, "Issue", "delete issue")
		return
	}
	c.Status(http.StatusNoContent)
}

// Move godoc
// @Summary      Drag and drop an issue on the sprint board
// @Description  Recomputes the order of the affected columns and persists the changed issues in one batch.
// @Tags         Issues
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "Sprint ID"
// @Param        move  body      MoveRequest  true  "Drop"
// @Success      200   {object}  MoveResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /sprints/{id}/board/move [post]
func (h *IssueHandler) Move(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	sprintID, ok := parseID(c, "id", "sprint")
	if !ok {
		return
	}

	var req MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	issueID, err := uuid.Parse(req.IssueID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID format"})
		return
	}

	cols, res, err := h.issues.Move(c.Request.Context(), caller, sprintID, board.Drop{
		IssueID:     issueID,
		Source:      board.Position{Status: model.IssueStatus(req.Source.Status), Index: req.Source.Index},
		Destination: board.Position{Status: model.IssueStatus(req.Destination.Status), Index: req.Destination.Index},
	})
	if err != nil {
		respondError(c, err, "Sprint", "move issue")
		return
	}

	c.JSON(http.StatusOK, MoveResponse{
		Moved:   res.Moved,
		Changed: len(res.Changed),
		Columns: toColumnResponses(cols),
	})
}

// UpdateOrder godoc
// @Summary      Persist a batch of issue positions
// @Description  Every update is applied or none is.
// @Tags         Issues
// @Accept       json
// @Param        order  body  OrderRequest  true  "Positions"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /issues/order [put]
func (h *IssueHandler) UpdateOrder(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	updates := make([]model.OrderUpdate, len(req.Updates))
	for i, item := range req.Updates {
		id, err := uuid.Parse(item.ID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID format"})
			return
		}
		updates[i] = model.OrderUpdate{ID: id, Status: model.IssueStatus(item.Status), Order: item.Order}
	}

	if err := h.issues.ApplyOrder(c.Request.Context(), caller, updates); err != nil {
		respondError(c, err, "Issue", "update issue order")
		return
	}
	c.Status(http.StatusNoContent)
}
