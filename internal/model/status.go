package model

import "fmt"

// IssueStatus is the board column an issue sits in.
type IssueStatus string

const (
	StatusTodo       IssueStatus = "TODO"
	StatusInProgress IssueStatus = "IN_PROGRESS"
	StatusInReview   IssueStatus = "IN_REVIEW"
	StatusDone       IssueStatus = "DONE"
)

// IssueStatuses lists the columns in board order.
var IssueStatuses = []IssueStatus{StatusTodo, StatusInProgress, StatusInReview, StatusDone}

// Column returns the zero-based board position of the status, or -1 if unknown.
func (s IssueStatus) Column() int {
	switch s {
	case StatusTodo:
		return 0
	case StatusInProgress:
		return 1
	case StatusInReview:
		return 2
	case StatusDone:
		return 3
	default:
		return -1
	}
}

func (s IssueStatus) Valid() bool {
	return s.Column() >= 0
}

func ParseIssueStatus(v string) (IssueStatus, error) {
	s := IssueStatus(v)
	if !s.Valid() {
		return "", fmt.Errorf("unknown issue status %q", v)
	}
	return s, nil
}

// IssuePriority is the urgency of an issue.
type IssuePriority string

const (
	PriorityLow    IssuePriority = "LOW"
	PriorityMedium IssuePriority = "MEDIUM"
	PriorityHigh   IssuePriority = "HIGH"
	PriorityUrgent IssuePriority = "URGENT"
)

func (p IssuePriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

func ParseIssuePriority(v string) (IssuePriority, error) {
	p := IssuePriority(v)
	if !p.Valid() {
		return "", fmt.Errorf("unknown issue priority %q", v)
	}
	return p, nil
}

// SprintStatus is the lifecycle state of a sprint. COMPLETED is terminal.
type SprintStatus string

const (
	SprintPlanned   SprintStatus = "PLANNED"
	SprintActive    SprintStatus = "ACTIVE"
	SprintCompleted SprintStatus = "COMPLETED"
)

func (s SprintStatus) Valid() bool {
	switch s {
	case SprintPlanned, SprintActive, SprintCompleted:
		return true
	default:
		return false
	}
}

func ParseSprintStatus(v string) (SprintStatus, error) {
	s := SprintStatus(v)
	if !s.Valid() {
		return "", fmt.Errorf("unknown sprint status %q", v)
	}
	return s, nil
}
