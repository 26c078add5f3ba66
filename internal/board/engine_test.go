package board_test

import (
	"testing"

	"scrumboard/internal/board"
	"scrumboard/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issue(status model.IssueStatus, order int) model.Issue {
	return model.Issue{ID: uuid.New(), Status: status, Order: order, Title: string(status)}
}

func orders(col []model.Issue) []int {
	out := make([]int, len(col))
	for i, is := range col {
		out[i] = is.Order
	}
	return out
}

func ids(col []model.Issue) []uuid.UUID {
	out := make([]uuid.UUID, len(col))
	for i, is := range col {
		out[i] = is.ID
	}
	return out
}

func sampleBoard() []model.Issue {
	return []model.Issue{
		issue(model.StatusTodo, 0),
		issue(model.StatusTodo, 1),
		issue(model.StatusTodo, 2),
		issue(model.StatusInProgress, 0),
		issue(model.StatusInProgress, 1),
		issue(model.StatusDone, 7),
	}
}

func TestReorder_SamePositionIsNoop(t *testing.T) {
	// Arrange
	issues := sampleBoard()
	drop := board.Drop{
		IssueID:     issues[1].ID,
		Source:      board.Position{Status: model.StatusTodo, Index: 1},
		Destination: board.Position{Status: model.StatusTodo, Index: 1},
	}

	// Act
	res := board.Reorder(issues, drop)

	// Assert
	assert.False(t, res.Moved)
	assert.Empty(t, res.Changed)
	assert.Equal(t, issues, res.Issues)
}

func TestReorder_UnknownIssueIsNoop(t *testing.T) {
	issues := sampleBoard()
	drop := board.Drop{
		IssueID:     uuid.New(),
		Destination: board.Position{Status: model.StatusDone, Index: 0},
	}

	res := board.Reorder(issues, drop)

	assert.False(t, res.Moved)
	assert.Equal(t, issues, res.Issues)
}

func TestReorder_SameColumn(t *testing.T) {
	// Arrange
	issues := sampleBoard()
	first := issues[0]
	drop := board.Drop{
		IssueID:     first.ID,
		Source:      board.Position{Status: model.StatusTodo, Index: 0},
		Destination: board.Position{Status: model.StatusTodo, Index: 2},
	}

	// Act
	res := board.Reorder(issues, drop)

	// Assert
	require.True(t, res.Moved)
	cols := board.Arrange(res.Issues)
	todo := cols[model.StatusTodo]
	assert.Equal(t, []uuid.UUID{issues[1].ID, issues[2].ID, first.ID}, ids(todo))
	assert.Equal(t, []int{0, 1, 2}, orders(todo))

	// Other columns untouched
	assert.Equal(t, []int{0, 1}, orders(cols[model.StatusInProgress]))
	assert.Equal(t, []int{7}, orders(cols[model.StatusDone]))

	// Every issue of the column moved, none elsewhere
	assert.Len(t, res.Changed, 3)
	for _, c := range res.Changed {
		assert.Equal(t, model.StatusTodo, c.Status)
	}
}

func TestReorder_CrossColumn(t *testing.T) {
	// Arrange
	issues := sampleBoard()
	moved := issues[1]
	drop := board.Drop{
		IssueID:     moved.ID,
		Source:      board.Position{Status: model.StatusTodo, Index: 1},
		Destination: board.Position{Status: model.StatusInProgress, Index: 1},
	}

	// Act
	res := board.Reorder(issues, drop)

	// Assert
	require.True(t, res.Moved)
	cols := board.Arrange(res.Issues)

	assert.Equal(t, []uuid.UUID{issues[0].ID, issues[2].ID}, ids(cols[model.StatusTodo]))
	assert.Equal(t, []int{0, 1}, orders(cols[model.StatusTodo]))

	inProgress := cols[model.StatusInProgress]
	assert.Equal(t, []uuid.UUID{issues[3].ID, moved.ID, issues[4].ID}, ids(inProgress))
	assert.Equal(t, []int{0, 1, 2}, orders(inProgress))
	assert.Equal(t, model.StatusInProgress, inProgress[1].Status)

	assert.Equal(t, []int{7}, orders(cols[model.StatusDone]))

	// issues[2] went 2 -> 1, moved changed status, issues[4] went 1 -> 2
	assert.ElementsMatch(t, []uuid.UUID{issues[2].ID, moved.ID, issues[4].ID}, ids(res.Changed))
}

func TestReorder_IntoEmptyColumnClampsIndex(t *testing.T) {
	issues := sampleBoard()
	drop := board.Drop{
		IssueID:     issues[0].ID,
		Source:      board.Position{Status: model.StatusTodo, Index: 0},
		Destination: board.Position{Status: model.StatusInReview, Index: 5},
	}

	res := board.Reorder(issues, drop)

	require.True(t, res.Moved)
	review := board.Arrange(res.Issues)[model.StatusInReview]
	require.Len(t, review, 1)
	assert.Equal(t, issues[0].ID, review[0].ID)
	assert.Equal(t, 0, review[0].Order)
}

func TestReorder_ReplayAfterCommitIsNoop(t *testing.T) {
	// Arrange
	issues := sampleBoard()
	drop := board.Drop{
		IssueID:     issues[0].ID,
		Source:      board.Position{Status: model.StatusTodo, Index: 0},
		Destination: board.Position{Status: model.StatusDone, Index: 0},
	}
	first := board.Reorder(issues, drop)
	require.True(t, first.Moved)

	// Act
	second := board.Reorder(first.Issues, drop)

	// Assert
	assert.False(t, second.Moved)
	assert.Empty(t, second.Changed)
}

func TestReorder_DoesNotMutateInput(t *testing.T) {
	issues := sampleBoard()
	snapshot := append([]model.Issue(nil), issues...)

	board.Reorder(issues, board.Drop{
		IssueID:     issues[0].ID,
		Destination: board.Position{Status: model.StatusDone, Index: 0},
	})

	assert.Equal(t, snapshot, issues)
}

func TestReorder_DeduplicatesIssues(t *testing.T) {
	// Arrange
	issues := sampleBoard()
	dup := issues[1]
	dup.Title = "stale copy"
	withDup := append(append([]model.Issue(nil), issues...), dup)

	// Act
	res := board.Reorder(withDup, board.Drop{
		IssueID:     issues[0].ID,
		Source:      board.Position{Status: model.StatusTodo, Index: 0},
		Destination: board.Position{Status: model.StatusTodo, Index: 1},
	})

	// Assert
	require.True(t, res.Moved)
	assert.Len(t, res.Issues, len(issues))
	for _, is := range res.Issues {
		assert.NotEqual(t, "stale copy", is.Title)
	}
}

func TestArrange_TieBreakKeepsInputPosition(t *testing.T) {
	a := issue(model.StatusTodo, 3)
	b := issue(model.StatusTodo, 3)
	c := issue(model.StatusTodo, 1)

	for i := 0; i < 5; i++ {
		cols := board.Arrange([]model.Issue{a, b, c})
		assert.Equal(t, []uuid.UUID{c.ID, a.ID, b.ID}, ids(cols[model.StatusTodo]))
	}
}

func TestReorder_CorruptOrdersBecomeDense(t *testing.T) {
	a := issue(model.StatusTodo, 4)
	b := issue(model.StatusTodo, 4)
	c := issue(model.StatusTodo, 9)

	res := board.Reorder([]model.Issue{a, b, c}, board.Drop{
		IssueID:     c.ID,
		Source:      board.Position{Status: model.StatusTodo, Index: 2},
		Destination: board.Position{Status: model.StatusTodo, Index: 0},
	})

	require.True(t, res.Moved)
	todo := board.Arrange(res.Issues)[model.StatusTodo]
	assert.Equal(t, []uuid.UUID{c.ID, a.ID, b.ID}, ids(todo))
	assert.Equal(t, []int{0, 1, 2}, orders(todo))
}

func TestNextOrder(t *testing.T) {
	assert.Equal(t, 0, board.NextOrder(nil))
	assert.Equal(t, 1, board.NextOrder([]model.Issue{issue(model.StatusTodo, 0)}))
	assert.Equal(t, 8, board.NextOrder([]model.Issue{issue(model.StatusDone, 7), issue(model.StatusDone, 2)}))
}
