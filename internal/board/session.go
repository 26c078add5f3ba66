package board

import (
	"context"
	"sync"

	"scrumboard/internal/model"
)

// Committer persists the changed issues of a move as one atomic batch and returns the
// board as the store now sees it.
type Committer interface {
	Commit(ctx context.Context, changed []model.Issue) ([]model.Issue, error)
}

// CommitFunc adapts a function to Committer.
type CommitFunc func(ctx context.Context, changed []model.Issue) ([]model.Issue, error)

func (f CommitFunc) Commit(ctx context.Context, changed []model.Issue) ([]model.Issue, error) {
	return f(ctx, changed)
}

// Session holds the last confirmed state of a board. A move is computed locally, committed,
// and only then adopted; a failed commit leaves the confirmed state as it was.
type Session struct {
	mu        sync.Mutex
	confirmed []model.Issue
}

func NewSession(issues []model.Issue) *Session {
	return &Session{confirmed: Dedupe(issues)}
}

// Snapshot returns a copy of the confirmed issues.
func (s *Session) Snapshot() []model.Issue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Issue(nil), s.confirmed...)
}

// Move applies drop and commits the changed issues. It returns the confirmed state after
// the call together with the computed result. The commit runs while the session is locked,
// so moves on one session are serialised.
func (s *Session) Move(ctx context.Context, drop Drop, c Committer) ([]model.Issue, Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := Reorder(s.confirmed, drop)
	if !res.Moved || len(res.Changed) == 0 {
		return append([]model.Issue(nil), s.confirmed...), res, nil
	}

	confirmed, err := c.Commit(ctx, res.Changed)
	if err != nil {
		return append([]model.Issue(nil), s.confirmed...), res, err
	}
	if confirmed == nil {
		confirmed = res.Issues
	}
	s.confirmed = Dedupe(confirmed)
	return append([]model.Issue(nil), s.confirmed...), res, nil
}
