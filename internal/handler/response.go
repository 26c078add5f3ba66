package handler

import (
	"net/http"
	"time"

	"scrumboard/internal/board"
	"scrumboard/internal/lifecycle"
	"scrumboard/internal/markdown"
	"scrumboard/internal/model"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url,omitempty"`
}

type MemberResponse struct {
	UserResponse
	Role string `json:"role"`
}

type ProjectResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Key         string `json:"key"`
	Description string `json:"description"`
	IssueCount  int64  `json:"issue_count"`
	SprintCount int64  `json:"sprint_count"`
	CreatedAt   string `json:"created_at"`
}

type SprintResponse struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type IssueResponse struct {
	ID              string        `json:"id"`
	ProjectID       string        `json:"project_id"`
	SprintID        *string       `json:"sprint_id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	DescriptionHTML string        `json:"description_html"`
	Status          string        `json:"status"`
	Order           int           `json:"order"`
	Priority        string        `json:"priority"`
	ReporterID      string        `json:"reporter_id"`
	AssigneeID      *string       `json:"assignee_id"`
	Reporter        *UserResponse `json:"reporter,omitempty"`
	Assignee        *UserResponse `json:"assignee,omitempty"`
	ProjectName     string        `json:"project_name,omitempty"`
	CreatedAt       string        `json:"created_at"`
	UpdatedAt       string        `json:"updated_at"`
}

type ColumnResponse struct {
	Status string          `json:"status"`
	Issues []IssueResponse `json:"issues"`
}

type BadgeResponse struct {
	Text string `json:"text"`
	Tone string `json:"tone"`
}

type BoardResponse struct {
	Sprint  SprintResponse   `json:"sprint"`
	Badge   BadgeResponse    `json:"badge"`
	Columns []ColumnResponse `json:"columns"`
}

type OverviewResponse struct {
	Project       ProjectResponse  `json:"project"`
	Sprints       []SprintResponse `json:"sprints"`
	CurrentSprint *SprintResponse  `json:"current_sprint"`
	Backlog       []ColumnResponse `json:"backlog"`
}

func toUserResponse(u *model.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{ID: u.ID.String(), Name: u.Name, Email: u.Email, ImageURL: u.ImageURL}
}

func toProjectResponse(p *model.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Key:         p.Key,
		Description: p.Description,
		IssueCount:  p.IssueCount,
		SprintCount: p.SprintCount,
		CreatedAt:   p.CreatedAt.Format(http.TimeFormat),
	}
}

func toSprintResponse(s *model.Sprint) SprintResponse {
	return SprintResponse{
		ID:        s.ID.String(),
		ProjectID: s.ProjectID.String(),
		Name:      s.Name,
		StartDate: s.StartDate.Format(time.RFC3339),
		EndDate:   s.EndDate.Format(time.RFC3339),
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt.Format(http.TimeFormat),
	}
}

func toSprintResponses(sprints []model.Sprint) []SprintResponse {
	out := make([]SprintResponse, len(sprints))
	for i := range sprints {
		out[i] = toSprintResponse(&sprints[i])
	}
	return out
}

func idString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func toIssueResponse(issue *model.Issue) IssueResponse {
	// A description that fails to render is still returned as markdown.
	html, _ := markdown.Render(issue.Description)
	resp := IssueResponse{
		ID:              issue.ID.String(),
		ProjectID:       issue.ProjectID.String(),
		SprintID:        idString(issue.SprintID),
		Title:           issue.Title,
		Description:     issue.Description,
		DescriptionHTML: html,
		Status:          string(issue.Status),
		Order:           issue.Order,
		Priority:        string(issue.Priority),
		ReporterID:      issue.ReporterID.String(),
		AssigneeID:      idString(issue.AssigneeID),
		Reporter:        toUserResponse(issue.Reporter),
		Assignee:        toUserResponse(issue.Assignee),
		CreatedAt:       issue.CreatedAt.Format(http.TimeFormat),
		UpdatedAt:       issue.UpdatedAt.Format(http.TimeFormat),
	}
	if issue.Project != nil {
		resp.ProjectName = issue.Project.Name
	}
	return resp
}

func toIssueResponses(issues []model.Issue) []IssueResponse {
	out := make([]IssueResponse, len(issues))
	for i := range issues {
		out[i] = toIssueResponse(&issues[i])
	}
	return out
}

// toColumnResponses lists every status column in board order, empty ones included.
func toColumnResponses(cols board.Columns) []ColumnResponse {
	out := make([]ColumnResponse, len(model.IssueStatuses))
	for i, status := range model.IssueStatuses {
		out[i] = ColumnResponse{Status: string(status), Issues: toIssueResponses(cols[status])}
	}
	return out
}

func toBadgeResponse(b lifecycle.Badge) BadgeResponse {
	return BadgeResponse{Text: b.Text, Tone: string(b.Tone)}
}
