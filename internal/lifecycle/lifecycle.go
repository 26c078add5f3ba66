// Package lifecycle decides which sprint status changes are allowed.
package lifecycle

import (
	"fmt"
	"math"
	"time"

	"scrumboard/internal/model"
)

// Decision is the verdict on a transition. Reason is set when Allowed is false.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision { return Decision{Allowed: true} }

func reject(format string, args ...any) Decision {
	return Decision{Reason: fmt.Sprintf(format, args...)}
}

// Evaluate checks whether a caller with role may move sprint to status to at time now.
// The sprint must be the stored record, not client state.
func Evaluate(sprint model.Sprint, to model.SprintStatus, role model.OrgRole, now time.Time) Decision {
	if !role.IsAdmin() {
		return reject("only organization admins can change sprint status")
	}

	switch sprint.Status {
	case model.SprintPlanned:
		switch to {
		case model.SprintActive:
			if now.Before(sprint.StartDate) {
				return reject("cannot start sprint before its start date")
			}
			if now.After(sprint.EndDate) {
				return reject("cannot start sprint after its end date")
			}
			return allow()
		case model.SprintPlanned:
			return reject("sprint is already planned")
		case model.SprintCompleted:
			return reject("can only complete an active sprint")
		}
	case model.SprintActive:
		switch to {
		case model.SprintCompleted:
			return allow()
		case model.SprintActive:
			if now.After(sprint.EndDate) {
				return reject("sprint has run out of time")
			}
			return reject("sprint is already active")
		case model.SprintPlanned:
			return reject("an active sprint cannot go back to planned")
		}
	case model.SprintCompleted:
		return reject("sprint is already completed")
	}
	return reject("unknown sprint transition %s -> %s", sprint.Status, to)
}

// Current picks the sprint a board shows by default: the active one, else the first.
func Current(sprints []model.Sprint) (model.Sprint, bool) {
	for _, s := range sprints {
		if s.Status == model.SprintActive {
			return s, true
		}
	}
	if len(sprints) == 0 {
		return model.Sprint{}, false
	}
	return sprints[0], true
}

// Tone is a hint for how a badge should be styled.
type Tone string

const (
	ToneDefault     Tone = "default"
	ToneSecondary   Tone = "secondary"
	ToneDestructive Tone = "destructive"
	ToneOutline     Tone = "outline"
)

// Badge is a short human readable summary of where a sprint stands.
type Badge struct {
	Text string
	Tone Tone
}

// Describe summarises the sprint relative to now.
func Describe(sprint model.Sprint, now time.Time) Badge {
	switch sprint.Status {
	case model.SprintPlanned:
		switch {
		case now.Before(sprint.StartDate):
			return Badge{Text: fmt.Sprintf("Starts in %d days", daysUntil(now, sprint.StartDate)), Tone: ToneSecondary}
		case now.After(sprint.EndDate):
			return Badge{Text: "Overdue - Not started", Tone: ToneDestructive}
		default:
			return Badge{Text: "Ready to start", Tone: ToneSecondary}
		}
	case model.SprintActive:
		if now.After(sprint.EndDate) {
			return Badge{Text: "Overdue - Should be completed", Tone: ToneDestructive}
		}
		return Badge{Text: fmt.Sprintf("%d days remaining", daysUntil(now, sprint.EndDate)), Tone: ToneDefault}
	case model.SprintCompleted:
		return Badge{Text: "Completed", Tone: ToneOutline}
	default:
		return Badge{Tone: ToneSecondary}
	}
}

func daysUntil(from, to time.Time) int {
	return int(math.Ceil(to.Sub(from).Hours() / 24))
}
