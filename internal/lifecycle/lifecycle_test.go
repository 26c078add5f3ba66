package lifecycle_test

import (
	"testing"
	"time"

	"scrumboard/internal/lifecycle"
	"scrumboard/internal/model"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sprint(status model.SprintStatus) model.Sprint {
	return model.Sprint{
		Name:      "Sprint 1",
		StartDate: day(2024, time.January, 1),
		EndDate:   day(2024, time.January, 14),
		Status:    status,
	}
}

func TestEvaluate_StartWithinWindow(t *testing.T) {
	d := lifecycle.Evaluate(sprint(model.SprintPlanned), model.SprintActive, model.RoleAdmin, day(2024, time.January, 7))

	assert.True(t, d.Allowed)
	assert.Empty(t, d.Reason)
}

func TestEvaluate_StartWindowIsInclusive(t *testing.T) {
	s := sprint(model.SprintPlanned)

	assert.True(t, lifecycle.Evaluate(s, model.SprintActive, model.RoleAdmin, s.StartDate).Allowed)
	assert.True(t, lifecycle.Evaluate(s, model.SprintActive, model.RoleAdmin, s.EndDate).Allowed)
}

func TestEvaluate_StartOutsideWindow(t *testing.T) {
	s := sprint(model.SprintPlanned)

	late := lifecycle.Evaluate(s, model.SprintActive, model.RoleAdmin, day(2024, time.January, 20))
	assert.False(t, late.Allowed)
	assert.Equal(t, "cannot start sprint after its end date", late.Reason)

	early := lifecycle.Evaluate(s, model.SprintActive, model.RoleAdmin, day(2023, time.December, 31))
	assert.False(t, early.Allowed)
	assert.Equal(t, "cannot start sprint before its start date", early.Reason)
}

func TestEvaluate_MemberIsRejected(t *testing.T) {
	d := lifecycle.Evaluate(sprint(model.SprintPlanned), model.SprintActive, model.RoleMember, day(2024, time.January, 7))

	assert.False(t, d.Allowed)
	assert.Contains(t, d.Reason, "admins")
}

func TestEvaluate_Complete(t *testing.T) {
	active := sprint(model.SprintActive)

	assert.True(t, lifecycle.Evaluate(active, model.SprintCompleted, model.RoleAdmin, day(2024, time.January, 7)).Allowed)
	// Overrun sprints may still be completed
	assert.True(t, lifecycle.Evaluate(active, model.SprintCompleted, model.RoleAdmin, day(2024, time.March, 1)).Allowed)
	assert.False(t, lifecycle.Evaluate(active, model.SprintCompleted, model.RoleMember, day(2024, time.January, 7)).Allowed)
}

func TestEvaluate_RejectedTransitions(t *testing.T) {
	now := day(2024, time.January, 7)
	cases := []struct {
		name string
		from model.SprintStatus
		to   model.SprintStatus
	}{
		{"planned to completed", model.SprintPlanned, model.SprintCompleted},
		{"active to planned", model.SprintActive, model.SprintPlanned},
		{"active to active", model.SprintActive, model.SprintActive},
		{"completed to active", model.SprintCompleted, model.SprintActive},
		{"completed to completed", model.SprintCompleted, model.SprintCompleted},
		{"completed to planned", model.SprintCompleted, model.SprintPlanned},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := lifecycle.Evaluate(sprint(tc.from), tc.to, model.RoleAdmin, now)
			assert.False(t, d.Allowed)
			assert.NotEmpty(t, d.Reason)
		})
	}
}

func TestEvaluate_OverrunActiveCannotBeRestarted(t *testing.T) {
	d := lifecycle.Evaluate(sprint(model.SprintActive), model.SprintActive, model.RoleAdmin, day(2024, time.February, 1))

	assert.False(t, d.Allowed)
	assert.Equal(t, "sprint has run out of time", d.Reason)
}

func TestCurrent(t *testing.T) {
	planned := sprint(model.SprintPlanned)
	planned.Name = "first"
	active := sprint(model.SprintActive)
	active.Name = "active"

	got, ok := lifecycle.Current([]model.Sprint{planned, active})
	assert.True(t, ok)
	assert.Equal(t, "active", got.Name)

	got, ok = lifecycle.Current([]model.Sprint{planned})
	assert.True(t, ok)
	assert.Equal(t, "first", got.Name)

	_, ok = lifecycle.Current(nil)
	assert.False(t, ok)
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		status model.SprintStatus
		now    time.Time
		text   string
		tone   lifecycle.Tone
	}{
		{model.SprintPlanned, day(2023, time.December, 29), "Starts in 3 days", lifecycle.ToneSecondary},
		{model.SprintPlanned, day(2024, time.January, 5), "Ready to start", lifecycle.ToneSecondary},
		{model.SprintPlanned, day(2024, time.February, 1), "Overdue - Not started", lifecycle.ToneDestructive},
		{model.SprintActive, day(2024, time.January, 10), "4 days remaining", lifecycle.ToneDefault},
		{model.SprintActive, day(2024, time.February, 1), "Overdue - Should be completed", lifecycle.ToneDestructive},
		{model.SprintCompleted, day(2024, time.February, 1), "Completed", lifecycle.ToneOutline},
	}

	for _, tc := range cases {
		b := lifecycle.Describe(sprint(tc.status), tc.now)
		assert.Equal(t, tc.text, b.Text)
		assert.Equal(t, tc.tone, b.Tone)
	}
}
