package service

import (
	"strings"
	"time"

	"scrumboard/internal/model"

	"github.com/google/uuid"
)

type ProjectInput struct {
	Name        string `validate:"required,max=100"`
	Key         string `validate:"required,max=100"`
	Description string `validate:"max=1000"`
}

func (in *ProjectInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Key = strings.TrimSpace(in.Key)
	in.Description = strings.TrimSpace(in.Description)
}

// SprintInput describes a new sprint. An empty Name becomes "<project key>-Sprint-<n>".
type SprintInput struct {
	Name      string    `validate:"max=100"`
	StartDate time.Time `validate:"required"`
	EndDate   time.Time `validate:"required,gtefield=StartDate"`
}

// IssueInput carries the editable fields of an issue. Empty Status and Priority mean
// TODO and MEDIUM for a new issue and the stored values for an edit.
type IssueInput struct {
	Title       string              `validate:"required,max=200"`
	Description string              `validate:"max=2000"`
	Status      model.IssueStatus   `validate:"omitempty,oneof=TODO IN_PROGRESS IN_REVIEW DONE"`
	Priority    model.IssuePriority `validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	SprintID    *uuid.UUID
	AssigneeID  *uuid.UUID
}

func (in *IssueInput) normalize(status model.IssueStatus, priority model.IssuePriority) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Status == "" {
		in.Status = status
	}
	if in.Priority == "" {
		in.Priority = priority
	}
}
