package service

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/journey/internal/domain"
	"github.com/alexanderramin/journey/internal/repository"
)

var (
	simulatedUsers = []string{"Alice", "Bob", "Charlie", "Coach_Mike", "Sarah_Dev"}

	simulatedMessages = []string{
		"Keep going! You got this.",
		"Have you tried breaking this down further?",
		"I struggled with this too, let me know if you need help.",
		"Great progress so far!",
		"What is your plan for the next milestone?",
	}
)

type goalService struct {
	goals    repository.Goals
	users    repository.UserStore
	observer UseCaseObserver
	now      func() time.Time
	pick     func(n int) int
}

func NewGoalService(goals repository.Goals, users repository.UserStore, observers ...UseCaseObserver) GoalService {
	return &goalService{
		goals:    goals,
		users:    users,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
		pick:     rand.IntN,
	}
}

// ParseHours converts user input into a positive, finite number of hours.
func ParseHours(s string) (float64, error) {
	s = strings.TrimSpace(s)
	h, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, domain.Invalid("hours", fmt.Sprintf("%q is not a number", s))
	}
	if err := validateHours(h); err != nil {
		return 0, err
	}
	return h, nil
}

func validateHours(h float64) error {
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		return domain.Invalid("hours", "must be a positive number")
	}
	return nil
}

func validateEstimate(h float64) error {
	if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		return domain.Invalid("estimated_hours", "must be zero or more")
	}
	return nil
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return domain.Invalid(field, "is required")
	}
	return nil
}

// mutate applies fn to a copy of the goal and persists the copy.
func (s *goalService) mutate(ctx context.Context, goalID string, fn func(g *domain.Goal) error) (*domain.Goal, error) {
	g, err := s.goals.GetByID(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if err := fn(g); err != nil {
		return nil, err
	}
	if err := s.goals.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *goalService) CreateGoal(ctx context.Context, in NewGoalInput) (g *domain.Goal, err error) {
	defer observe(ctx, s.observer, "create-goal", map[string]any{"title": in.Title})(&err)

	if g, err = s.newGoal(ctx, in); err != nil {
		return nil, err
	}
	if err = s.goals.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *goalService) ImportGoal(ctx context.Context, in NewGoalInput, milestones []MilestoneInput) (g *domain.Goal, err error) {
	defer observe(ctx, s.observer, "import-goal", map[string]any{"title": in.Title, "milestones": len(milestones)})(&err)

	for _, m := range milestones {
		if err = required("title", m.Title); err != nil {
			return nil, err
		}
		if err = domain.ValidateExternalLink(strings.TrimSpace(m.Link)); err != nil {
			return nil, err
		}
	}
	if g, err = s.newGoal(ctx, in); err != nil {
		return nil, err
	}
	for _, m := range milestones {
		g.AddMilestone(strings.TrimSpace(m.Title), m.Description, strings.TrimSpace(m.Link))
	}
	if err = s.goals.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// newGoal validates in and builds an unsaved goal owned by the current user.
func (s *goalService) newGoal(ctx context.Context, in NewGoalInput) (*domain.Goal, error) {
	if err := required("title", in.Title); err != nil {
		return nil, err
	}
	if in.Deadline.IsZero() {
		return nil, domain.Invalid("deadline", "is required")
	}
	if err := validateEstimate(in.EstimatedHours); err != nil {
		return nil, err
	}

	user, ok, err := s.users.LoadUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w: %w", domain.ErrStorage, err)
	}
	if !ok {
		return nil, domain.Invalid("profile", "create a profile before adding goals")
	}
	return domain.NewGoal(user.ID, strings.TrimSpace(in.Title), in.Description, in.Deadline, in.EstimatedHours, in.Tags, s.now()), nil
}

func (s *goalService) GetGoal(ctx context.Context, goalID string) (*domain.Goal, error) {
	return s.goals.GetByID(ctx, goalID)
}

func (s *goalService) ListGoals(ctx context.Context) ([]*domain.Goal, error) {
	return s.goals.List(ctx)
}

func (s *goalService) UpdateGoal(ctx context.Context, goalID string, edit GoalEdit) (g *domain.Goal, err error) {
	defer observe(ctx, s.observer, "update-goal", map[string]any{"goal_id": goalID})(&err)

	return s.mutate(ctx, goalID, func(g *domain.Goal) error {
		title := strings.TrimSpace(domain.StrFromPtrWithDefault(g.Title, edit.Title))
		if err := required("title", title); err != nil {
			return err
		}
		est := domain.Float64FromPtrWithDefault(g.EstimatedHours, edit.EstimatedHours)
		if err := validateEstimate(est); err != nil {
			return err
		}
		g.Title = title
		g.Description = domain.StrFromPtrWithDefault(g.Description, edit.Description)
		g.Deadline = domain.TruncateToDate(domain.TimeFromPtrWithDefault(g.Deadline, edit.Deadline))
		g.EstimatedHours = est
		if edit.ReplaceTags {
			g.SetTags(edit.Tags)
		}
		return nil
	})
}

func (s *goalService) DeleteGoal(ctx context.Context, goalID string) (err error) {
	defer observe(ctx, s.observer, "delete-goal", map[string]any{"goal_id": goalID})(&err)
	return s.goals.Delete(ctx, goalID)
}

func (s *goalService) AddMilestone(ctx context.Context, goalID, title, description, link string) (m domain.Milestone, err error) {
	defer observe(ctx, s.observer, "add-milestone", map[string]any{"goal_id": goalID})(&err)

	if err = required("title", title); err != nil {
		return m, err
	}
	link = strings.TrimSpace(link)
	if err = domain.ValidateExternalLink(link); err != nil {
		return m, err
	}
	_, err = s.mutate(ctx, goalID, func(g *domain.Goal) error {
		m = g.AddMilestone(strings.TrimSpace(title), description, link)
		return nil
	})
	return m, err
}

func (s *goalService) ToggleMilestone(ctx context.Context, goalID, milestoneID string) (m domain.Milestone, err error) {
	defer observe(ctx, s.observer, "toggle-milestone", map[string]any{"goal_id": goalID, "milestone_id": milestoneID})(&err)

	_, err = s.mutate(ctx, goalID, func(g *domain.Goal) error {
		var ok bool
		m, ok = g.ToggleMilestone(milestoneID, s.now())
		if !ok {
			return domain.NotFoundf("milestone %s on goal %s", milestoneID, goalID)
		}
		return nil
	})
	return m, err
}

func (s *goalService) AddNote(ctx context.Context, goalID string, in NoteInput) (n domain.Note, err error) {
	defer observe(ctx, s.observer, "add-note", map[string]any{"goal_id": goalID, "attachments": len(in.Attachments)})(&err)

	if err = required("content", in.Content); err != nil {
		return n, err
	}
	if in.Type != "" && !slices.Contains(domain.ValidNoteTypes, in.Type) {
		return n, domain.Invalid("type", fmt.Sprintf("unknown note type %q", in.Type))
	}
	if in.Impact != "" && !slices.Contains(domain.ValidNoteImpacts, in.Impact) {
		return n, domain.Invalid("impact", fmt.Sprintf("unknown note impact %q", in.Impact))
	}
	_, err = s.mutate(ctx, goalID, func(g *domain.Goal) error {
		n = g.AddNote(in.Content, in.Attachments, in.Type, in.Impact, s.now())
		return nil
	})
	return n, err
}

func (s *goalService) LogTime(ctx context.Context, goalID string, hours float64) (g *domain.Goal, err error) {
	defer observe(ctx, s.observer, "log-time", map[string]any{"goal_id": goalID, "hours": hours})(&err)

	if err = validateHours(hours); err != nil {
		return nil, err
	}
	return s.mutate(ctx, goalID, func(g *domain.Goal) error {
		g.AddHours(hours)
		return nil
	})
}

func (s *goalService) LogFailure(ctx context.Context, goalID, reason string) (domain.LogEntry, error) {
	return s.LogEntry(ctx, goalID, domain.LogFailure, reason)
}

func (s *goalService) LogEntry(ctx context.Context, goalID string, logType domain.LogType, reason string) (e domain.LogEntry, err error) {
	defer observe(ctx, s.observer, "log-entry", map[string]any{"goal_id": goalID, "type": string(logType)})(&err)

	if err = required("reason", reason); err != nil {
		return e, err
	}
	if !slices.Contains(domain.ValidLogTypes, logType) {
		return e, domain.Invalid("type", fmt.Sprintf("unknown log type %q", logType))
	}
	_, err = s.mutate(ctx, goalID, func(g *domain.Goal) error {
		e = g.AppendLog(logType, reason, s.now())
		return nil
	})
	return e, err
}

func (s *goalService) AddComment(ctx context.Context, goalID, userName, content string) (c domain.Comment, err error) {
	defer observe(ctx, s.observer, "add-comment", map[string]any{"goal_id": goalID})(&err)

	_, err = s.mutate(ctx, goalID, func(g *domain.Goal) error {
		c = g.AddComment(userName, content, s.now())
		return nil
	})
	return c, err
}

// SimulateComment posts a canned encouragement from one of the sample users.
func (s *goalService) SimulateComment(ctx context.Context, goalID string) (domain.Comment, error) {
	user := simulatedUsers[s.pick(len(simulatedUsers))]
	msg := simulatedMessages[s.pick(len(simulatedMessages))]
	return s.AddComment(ctx, goalID, user, msg)
}

func (s *goalService) MarkCompleted(ctx context.Context, goalID string, r domain.Reflection) (g *domain.Goal, err error) {
	defer observe(ctx, s.observer, "complete-goal", map[string]any{"goal_id": goalID})(&err)

	if err = required("worked", r.Worked); err != nil {
		return nil, err
	}
	return s.mutate(ctx, goalID, func(g *domain.Goal) error {
		return g.MarkCompleted(r, s.now())
	})
}
