// Package board keeps issues of a sprint in per-status columns and recomputes their
// order after a drag and drop.
package board

import (
	"sort"

	"github.com/google/uuid"

	"scrumboard/internal/model"
)

// Position is a slot on the board: a status column and a zero-based index inside it.
type Position struct {
	Status model.IssueStatus
	Index  int
}

// Drop describes a finished drag of one issue.
type Drop struct {
	IssueID     uuid.UUID
	Source      Position
	Destination Position
}

// Result is the outcome of Reorder. When Moved is false Issues is the input slice itself.
type Result struct {
	Issues  []model.Issue
	Changed []model.Issue
	Moved   bool
}

// Columns holds the issues of each status in board order.
type Columns map[model.IssueStatus][]model.Issue

// Flatten returns the issues column by column, in board order.
func (c Columns) Flatten() []model.Issue {
	var out []model.Issue
	for _, status := range model.IssueStatuses {
		out = append(out, c[status]...)
	}
	return out
}

// Dedupe drops every issue whose id was already seen, keeping the first occurrence.
func Dedupe(issues []model.Issue) []model.Issue {
	seen := make(map[uuid.UUID]struct{}, len(issues))
	out := make([]model.Issue, 0, len(issues))
	for _, issue := range issues {
		if _, ok := seen[issue.ID]; ok {
			continue
		}
		seen[issue.ID] = struct{}{}
		out = append(out, issue)
	}
	return out
}

// Arrange groups issues by status and sorts every column by Order. Issues sharing an
// Order keep their relative input position. Issues with an unknown status are dropped.
func Arrange(issues []model.Issue) Columns {
	cols := make(Columns, len(model.IssueStatuses))
	for _, issue := range Dedupe(issues) {
		if !issue.Status.Valid() {
			continue
		}
		cols[issue.Status] = append(cols[issue.Status], issue)
	}
	for _, col := range cols {
		sort.SliceStable(col, func(i, j int) bool { return col[i].Order < col[j].Order })
	}
	return cols
}

// NextOrder is the order a new issue gets when appended to column.
func NextOrder(column []model.Issue) int {
	if len(column) == 0 {
		return 0
	}
	max := column[0].Order
	for _, issue := range column[1:] {
		if issue.Order > max {
			max = issue.Order
		}
	}
	return max + 1
}

// Reorder applies drop to issues. The dragged issue's stored column and index win over
// drop.Source, so replaying a drop that was already committed changes nothing.
func Reorder(issues []model.Issue, drop Drop) Result {
	unchanged := Result{Issues: issues}

	if !drop.Destination.Status.Valid() {
		return unchanged
	}

	cols := Arrange(issues)

	var (
		from    model.IssueStatus
		fromIdx = -1
	)
	for _, status := range model.IssueStatuses {
		for i, issue := range cols[status] {
			if issue.ID == drop.IssueID {
				from, fromIdx = status, i
			}
		}
	}
	if fromIdx < 0 {
		return unchanged
	}

	to := drop.Destination.Status
	toIdx := drop.Destination.Index
	if toIdx < 0 {
		toIdx = 0
	}

	source := cols[from]
	dragged := source[fromIdx]
	source = append(source[:fromIdx:fromIdx], source[fromIdx+1:]...)

	if from == to {
		if toIdx > len(source) {
			toIdx = len(source)
		}
		if toIdx == fromIdx {
			return unchanged
		}
		cols[from] = insertAt(source, toIdx, dragged)
	} else {
		target := cols[to]
		if toIdx > len(target) {
			toIdx = len(target)
		}
		dragged.Status = to
		cols[from] = source
		cols[to] = insertAt(target, toIdx, dragged)
	}

	before := make(map[uuid.UUID]model.Issue, len(issues))
	for _, issue := range Dedupe(issues) {
		before[issue.ID] = issue
	}

	var changed []model.Issue
	for _, status := range []model.IssueStatus{from, to} {
		col := cols[status]
		for i := range col {
			col[i].Order = i
			prev := before[col[i].ID]
			if prev.Order != col[i].Order || prev.Status != col[i].Status {
				changed = append(changed, col[i])
			}
		}
		if from == to {
			break
		}
	}

	return Result{Issues: cols.Flatten(), Changed: changed, Moved: true}
}

func insertAt(col []model.Issue, idx int, issue model.Issue) []model.Issue {
	out := make([]model.Issue, 0, len(col)+1)
	out = append(out, col[:idx]...)
	out = append(out, issue)
	return append(out, col[idx:]...)
}
