package repository

import "errors"

// Common repository errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrSprintNotFound  = errors.New("sprint not found")
	ErrIssueNotFound   = errors.New("issue not found")

	// ErrSprintStatusChanged is returned when a sprint no longer has the status a
	// transition was decided on.
	ErrSprintStatusChanged = errors.New("sprint status changed concurrently")

	// ErrSprintAlreadyActive is returned when starting a sprint while another sprint of the
	// same project is active.
	ErrSprintAlreadyActive = errors.New("another sprint is already active")

	// ErrDuplicateProjectKey is returned when the organization already has a project with the key.
	ErrDuplicateProjectKey = errors.New("project key already in use")
)
