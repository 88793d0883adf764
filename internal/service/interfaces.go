package service

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/journey/internal/blob"
	"github.com/alexanderramin/journey/internal/domain"
	"github.com/alexanderramin/journey/internal/metrics"
)

// GoalService holds every command that changes a goal. Each command loads a
// copy of the goal, applies the change and hands the copy to the repository;
// nothing is applied when validation or storage fails.
type GoalService interface {
	CreateGoal(ctx context.Context, in NewGoalInput) (*domain.Goal, error)
	GetGoal(ctx context.Context, goalID string) (*domain.Goal, error)
	ListGoals(ctx context.Context) ([]*domain.Goal, error)
	UpdateGoal(ctx context.Context, goalID string, edit GoalEdit) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, goalID string) error
	// ImportGoal creates a goal together with its planned milestones in a
	// single write.
	ImportGoal(ctx context.Context, in NewGoalInput, milestones []MilestoneInput) (*domain.Goal, error)

	AddMilestone(ctx context.Context, goalID, title, description, link string) (domain.Milestone, error)
	ToggleMilestone(ctx context.Context, goalID, milestoneID string) (domain.Milestone, error)
	AddNote(ctx context.Context, goalID string, in NoteInput) (domain.Note, error)
	LogTime(ctx context.Context, goalID string, hours float64) (*domain.Goal, error)
	LogFailure(ctx context.Context, goalID, reason string) (domain.LogEntry, error)
	LogEntry(ctx context.Context, goalID string, logType domain.LogType, reason string) (domain.LogEntry, error)
	AddComment(ctx context.Context, goalID, userName, content string) (domain.Comment, error)
	SimulateComment(ctx context.Context, goalID string) (domain.Comment, error)
	MarkCompleted(ctx context.Context, goalID string, r domain.Reflection) (*domain.Goal, error)
}

// NewGoalInput carries the fields of the goal creation form.
type NewGoalInput struct {
	Title          string
	Description    string
	Deadline       time.Time
	EstimatedHours float64
	Tags           []string
}

// GoalEdit lists the goal fields that may be replaced after creation.
// Nil fields keep their current value.
type GoalEdit struct {
	Title          *string
	Description    *string
	Deadline       *time.Time
	EstimatedHours *float64
	Tags           []string
	ReplaceTags    bool
}

type MilestoneInput struct {
	Title       string
	Description string
	Link        string
}

type NoteInput struct {
	Content     string
	Attachments []domain.AttachmentRef
	Type        domain.NoteType
	Impact      domain.NoteImpact
}

type ProfileService interface {
	// Save creates the profile, or replaces name, bio and avatar of the
	// current one.
	Save(ctx context.Context, name, bio, avatar string) (*domain.User, error)
	Current(ctx context.Context) (*domain.User, bool, error)
	Logout(ctx context.Context) error
}

// InsightService computes read-only views. Nothing it returns is stored.
type InsightService interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
	Reality(ctx context.Context) (*RealityView, error)
	Roadmap(ctx context.Context) (metrics.RoadmapView, error)
	Notes(ctx context.Context) ([]metrics.FeedNote, error)
	Failures(ctx context.Context) ([]metrics.FailureEntry, error)
	Timeline(ctx context.Context) ([]metrics.TimelineEvent, error)
	GoalDetail(ctx context.Context, goalID string, now time.Time) (*GoalDetail, error)
}

type Dashboard struct {
	User        *domain.User
	Stats       metrics.GoalStats
	Goals       []GoalSummary
	Suggestions []metrics.Suggestion
}

// GoalSummary is one card of the dashboard goal list.
type GoalSummary struct {
	Goal     *domain.Goal
	Progress int
	Health   metrics.HealthReport
}

type RealityView struct {
	Aggregate metrics.Reality
	Rows      []metrics.GoalRealityRow
}

type GoalDetail struct {
	Goal      *domain.Goal
	Progress  int
	Health    metrics.HealthReport
	Reality   metrics.Reality
	Countdown metrics.CountdownResult
	Timeline  []metrics.TimelineEvent
}

// AttachmentService moves note attachment payloads in and out of the blob
// store. Payload lifetime is shorter than note lifetime.
type AttachmentService interface {
	Upload(ctx context.Context, name string, r io.Reader) (domain.AttachmentRef, error)
	// Open returns false when the payload is no longer held.
	Open(ctx context.Context, id string) (*blob.Blob, bool, error)
}
