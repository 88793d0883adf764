package testutil

import (
	"fmt"
	"time"

	"github.com/alexanderramin/journey/internal/domain"
)

// FixedNow is the default clock for fixtures.
var FixedNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

// Goal options
type GoalOption func(*domain.Goal)

func WithUserID(id string) GoalOption {
	return func(g *domain.Goal) {
		g.UserID = id
	}
}

func WithEstimate(h float64) GoalOption {
	return func(g *domain.Goal) {
		g.EstimatedHours = h
	}
}

func WithActualHours(h float64) GoalOption {
	return func(g *domain.Goal) {
		g.ActualHours = h
	}
}

func WithDeadline(d time.Time) GoalOption {
	return func(g *domain.Goal) {
		g.Deadline = domain.TruncateToDate(d)
	}
}

func WithCreatedAt(t time.Time) GoalOption {
	return func(g *domain.Goal) {
		g.CreatedAt = t
	}
}

func WithTags(tags ...string) GoalOption {
	return func(g *domain.Goal) {
		g.SetTags(tags)
	}
}

// WithMilestones appends total milestones, the first done of them completed.
func WithMilestones(total, done int) GoalOption {
	return func(g *domain.Goal) {
		for i := 0; i < total; i++ {
			m := g.AddMilestone(fmt.Sprintf("Step %d", len(g.Milestones)+1), "", "")
			if i < done {
				g.ToggleMilestone(m.ID, g.CreatedAt.Add(time.Duration(i+1)*time.Hour))
			}
		}
	}
}

func WithLinkedMilestone(title, link string) GoalOption {
	return func(g *domain.Goal) {
		g.AddMilestone(title, "", link)
	}
}

func WithNote(content string) GoalOption {
	return func(g *domain.Goal) {
		g.AddNote(content, nil, domain.NoteReflection, domain.ImpactNeutral, g.CreatedAt.Add(time.Minute))
	}
}

func WithFailure(reason string) GoalOption {
	return func(g *domain.Goal) {
		g.LogFailure(reason, g.CreatedAt.Add(2*time.Minute))
	}
}

func WithLog(t domain.LogType, reason string) GoalOption {
	return func(g *domain.Goal) {
		g.AppendLog(t, reason, g.CreatedAt.Add(3*time.Minute))
	}
}

func WithComment(user, content string) GoalOption {
	return func(g *domain.Goal) {
		g.AddComment(user, content, g.CreatedAt.Add(4*time.Minute))
	}
}

// WithCompleted marks the goal completed with the given reflection.
func WithCompleted(worked string) GoalOption {
	return func(g *domain.Goal) {
		_ = g.MarkCompleted(domain.Reflection{Worked: worked, DidntWork: "-", Differently: "-"}, g.CreatedAt.Add(24*time.Hour))
	}
}

// NewTestGoal builds an active goal with a 10 hour estimate and a deadline
// 30 days after FixedNow. Options apply in order.
func NewTestGoal(title string, opts ...GoalOption) *domain.Goal {
	g := domain.NewGoal("user-1", title, "", FixedNow.AddDate(0, 0, 30), 10, nil, FixedNow)
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func NewTestUser(name string) *domain.User {
	return domain.NewUser(name, "", "", FixedNow)
}
