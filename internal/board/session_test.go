package board_test

import (
	"context"
	"errors"
	"testing"

	"scrumboard/internal/board"
	"scrumboard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_MoveAdoptsConfirmedState(t *testing.T) {
	// Arrange
	issues := sampleBoard()
	session := board.NewSession(issues)

	var committed []model.Issue
	commit := board.CommitFunc(func(_ context.Context, changed []model.Issue) ([]model.Issue, error) {
		committed = changed
		return nil, nil
	})

	// Act
	confirmed, res, err := session.Move(context.Background(), board.Drop{
		IssueID:     issues[0].ID,
		Destination: board.Position{Status: model.StatusDone, Index: 1},
	}, commit)

	// Assert
	require.NoError(t, err)
	assert.True(t, res.Moved)
	assert.Equal(t, res.Changed, committed)
	assert.Equal(t, confirmed, session.Snapshot())

	done := board.Arrange(session.Snapshot())[model.StatusDone]
	require.Len(t, done, 2)
	assert.Equal(t, issues[0].ID, done[1].ID)
}

func TestSession_FailedCommitRollsBack(t *testing.T) {
	// Arrange
	issues := sampleBoard()
	session := board.NewSession(issues)
	before := session.Snapshot()
	boom := errors.New("store unavailable")

	// Act
	confirmed, _, err := session.Move(context.Background(), board.Drop{
		IssueID:     issues[3].ID,
		Destination: board.Position{Status: model.StatusTodo, Index: 0},
	}, board.CommitFunc(func(context.Context, []model.Issue) ([]model.Issue, error) {
		return nil, boom
	}))

	// Assert
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, before, confirmed)
	assert.Equal(t, before, session.Snapshot())
}

func TestSession_NoopSkipsCommit(t *testing.T) {
	issues := sampleBoard()
	session := board.NewSession(issues)

	called := false
	_, res, err := session.Move(context.Background(), board.Drop{
		IssueID:     issues[0].ID,
		Destination: board.Position{Status: model.StatusTodo, Index: 0},
	}, board.CommitFunc(func(context.Context, []model.Issue) ([]model.Issue, error) {
		called = true
		return nil, nil
	}))

	require.NoError(t, err)
	assert.False(t, res.Moved)
	assert.False(t, called)
}

func TestSession_UsesStoreReturnedState(t *testing.T) {
	issues := sampleBoard()
	session := board.NewSession(issues)
	fromStore := []model.Issue{issue(model.StatusTodo, 0)}

	confirmed, _, err := session.Move(context.Background(), board.Drop{
		IssueID:     issues[0].ID,
		Destination: board.Position{Status: model.StatusInReview, Index: 0},
	}, board.CommitFunc(func(context.Context, []model.Issue) ([]model.Issue, error) {
		return fromStore, nil
	}))

	require.NoError(t, err)
	assert.Equal(t, fromStore, confirmed)
}
