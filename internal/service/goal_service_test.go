package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/journey/internal/domain"
	"github.com/alexanderramin/journey/internal/metrics"
	"github.com/alexanderramin/journey/internal/repository"
	"github.com/alexanderramin/journey/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.events = append(o.events, e)
}

type fixture struct {
	store    *repository.MemoryStore
	repo     *repository.GoalRepository
	goals    *goalService
	profiles ProfileService
	insights InsightService
	observer *recordingObserver
}

func setup(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := repository.NewMemoryStore()
	require.NoError(t, store.SaveUser(ctx, testutil.NewTestUser("Ada")))

	repo, err := repository.OpenGoalRepository(ctx, store)
	require.NoError(t, err)

	obs := &recordingObserver{}
	goals := NewGoalService(repo, store, obs).(*goalService)
	goals.now = func() time.Time { return testutil.FixedNow }

	return &fixture{
		store:    store,
		repo:     repo,
		goals:    goals,
		profiles: NewProfileService(store),
		insights: NewInsightService(repo, store),
		observer: obs,
	}
}

func (f *fixture) createGoal(t *testing.T, title string, est float64) *domain.Goal {
	t.Helper()
	g, err := f.goals.CreateGoal(context.Background(), NewGoalInput{
		Title:          title,
		Deadline:       testutil.FixedNow.AddDate(0, 1, 0),
		EstimatedHours: est,
	})
	require.NoError(t, err)
	return g
}

func TestCreateGoal(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	g, err := f.goals.CreateGoal(ctx, NewGoalInput{
		Title:          "  Learn Go  ",
		Description:    "from scratch",
		Deadline:       time.Date(2025, 9, 1, 17, 30, 0, 0, time.UTC),
		EstimatedHours: 40,
		Tags:           []string{"Go", "backend", "go"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Learn Go", g.Title)
	assert.Equal(t, domain.GoalActive, g.Status)
	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), g.Deadline)
	assert.Equal(t, testutil.FixedNow, g.CreatedAt)
	assert.Equal(t, []string{"backend", "go"}, g.Tags)

	user, _, err := f.store.LoadUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, g.UserID)

	stored, err := f.repo.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, g, stored)
}

func TestCreateGoal_Validation(t *testing.T) {
	f := setup(t)
	deadline := testutil.FixedNow.AddDate(0, 1, 0)

	tests := []struct {
		name  string
		in    NewGoalInput
		field string
	}{
		{"empty title", NewGoalInput{Title: "  ", Deadline: deadline}, "title"},
		{"no deadline", NewGoalInput{Title: "x"}, "deadline"},
		{"negative estimate", NewGoalInput{Title: "x", Deadline: deadline, EstimatedHours: -1}, "estimated_hours"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.goals.CreateGoal(context.Background(), tc.in)
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
	assert.Zero(t, f.repo.Len())
}

func TestCreateGoal_RequiresProfile(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	require.NoError(t, f.store.ClearUser(ctx))

	_, err := f.goals.CreateGoal(ctx, NewGoalInput{Title: "x", Deadline: testutil.FixedNow})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLogTime_Scenario(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	g := f.createGoal(t, "Ship it", 10)

	_, err := f.goals.LogTime(ctx, g.ID, 5)
	require.NoError(t, err)
	got, err := f.goals.LogTime(ctx, g.ID, 6)
	require.NoError(t, err)

	assert.Equal(t, 11.0, got.ActualHours)
	assert.Equal(t, metrics.OffTrack, metrics.Health(got).Status)
}

func TestLogTime_RejectsNonPositive(t *testing.T) {
	f := setup(t)
	g := f.createGoal(t, "Ship it", 10)

	for _, h := range []float64{0, -2} {
		_, err := f.goals.LogTime(context.Background(), g.ID, h)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
	got, err := f.goals.GetGoal(context.Background(), g.ID)
	require.NoError(t, err)
	assert.Zero(t, got.ActualHours)
}

func TestParseHours(t *testing.T) {
	h, err := ParseHours(" 1.5 ")
	require.NoError(t, err)
	assert.Equal(t, 1.5, h)

	for _, in := range []string{"", "abc", "0", "-1", "NaN", "Inf"} {
		_, err := ParseHours(in)
		assert.ErrorIs(t, err, domain.ErrValidation, in)
	}
}

func TestToggleMilestone_TwiceRestores(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	g := f.createGoal(t, "Ship it", 10)

	m, err := f.goals.AddMilestone(ctx, g.ID, "Design", "", "")
	require.NoError(t, err)

	on, err := f.goals.ToggleMilestone(ctx, g.ID, m.ID)
	require.NoError(t, err)
	assert.True(t, on.IsCompleted)
	require.NotNil(t, on.CompletedAt)
	assert.Equal(t, testutil.FixedNow, *on.CompletedAt)

	off, err := f.goals.ToggleMilestone(ctx, g.ID, m.ID)
	require.NoError(t, err)
	assert.False(t, off.IsCompleted)
	assert.Nil(t, off.CompletedAt)
}

func TestToggleMilestone_NotFound(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	g := f.createGoal(t, "Ship it", 10)

	_, err := f.goals.ToggleMilestone(ctx, g.ID, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.goals.ToggleMilestone(ctx, "missing", "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddMilestone_LinkValidation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	g := f.createGoal(t, "Ship it", 10)

	_, err := f.goals.AddMilestone(ctx, g.ID, "Read", "", "ftp://x")
	assert.ErrorIs(t, err, domain.ErrValidation)

	m, err := f.goals.AddMilestone(ctx, g.ID, "Read", "", "https://x.com")
	require.NoError(t, err)
	assert.Equal(t, "https://x.com", m.ExternalLink)

	_, err = f.goals.AddMilestone(ctx, g.ID, "", "", "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	got, err := f.goals.GetGoal(ctx, g.ID)
	require.NoError(t, err)
	assert.Len(t, got.Milestones, 1)
}

func TestProgress_Scenario(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	g := f.createGoal(t, "Ship it", 10)

	var ids []string
	for _, title := range []string{"a", "b", "c", "d"} {
		m, err := f.goals.AddMilestone(ctx, g.ID, title, "", "")
		require.NoError(t, err)
		ids = append(ids, m.ID)
	}
	for _, id := range ids[:3] {
		_, err := f.goals.ToggleMilestone(ctx, g.ID, id)
		require.NoError(t, err)
	}

	got, err := f.goals.GetGoal(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 75, metrics.Progress(got))
}

func TestAddNote_DefaultsAndDuplicates(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	g := f.createGoal(t, "Ship it", 10)

	for range 2 {
		n, err := f.goals.AddNote(ctx, g.ID, NoteInput{Content: "same"})
		require.NoError(t, err)
		assert.Equal(t, domain.NoteReflection, n.Type)
		assert.Equal(t, domain.ImpactNeutral, n.Impact)
	}

	got, err := f.goals.GetGoal(ctx, g.ID)
	require.NoError(t, err)
	assert.Len(t, got.Notes, 2)
	assert.NotEqual(t, got.Notes[0].ID, got.Notes[1].ID)
}

func TestAddNote_Validation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	g := f.createGoal(t, "Ship it", 10)

	_, err := f.goals.AddNote(ctx, g.ID, NoteInput{Content: " "})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.goals.AddNote(ctx, g.ID, NoteInput{Content: "x", Type: "Rant"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.goals.AddNote(ctx, g.ID, NoteInput{Content: "x", Impact: "Huge"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.goals.AddNote(ctx, "missing", NoteInput{Content: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLogFailure_MakesGoalOffTrack(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	g := f.createGoal(t, "Ship it", 10)

	e, err := f.goals.LogFailure(ctx, g.ID, "lost a week")
	require.NoError(t, err)
	assert.Equal(t, domain.LogFailure, e.Type)

	got, err := f.goals.GetGoal(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, metrics.OffTrack, metrics.Health(got).Status)

	_, err = f.goals.LogEntry(ctx, g.ID, domain.LogSuccess, "back on it")
	require.NoError(t, err)
	got, err = f.goals.GetGoal(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, metrics.Healthy, metrics.Health(got).Status)

	_, err = f.goals.LogFailure(ctx, g.ID, "")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = f.goals.LogEntry(ctx, g.ID, "warning", "x")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestComments(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	g := f.createGoal(t, "Ship it", 10)

	c, err := f.goals.AddComment(ctx, g.ID, "Bob", "nice")
	require.NoError(t, err)
	assert.Equal(t, "Bob", c.UserName)

	f.goals.pick = func(n int) int { return n - 1 }
	sim, err := f.goals.SimulateComment(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sarah_Dev", sim.UserName)
	assert.Equal(t, "What is your plan for the next milestone?", sim.Content)

	_, err = f.goals.SimulateComment(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := f.goals.GetGoal(ctx, g.ID)
	require.NoError(t, err)
	assert.Len(t, got.Comments, 2)
}

func TestMarkCompleted(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	g := f.createGoal(t, "Ship it", 10)

	_, err := f.goals.MarkCompleted(ctx, g.ID, domain.Reflection{Worked: ""})
	assert.ErrorIs(t, err, domain.ErrValidation)

	r := domain.Reflection{Worked: "did X", DidntWork: "Y", Differently: "Z"}
	done, err := f.goals.MarkCompleted(ctx, g.ID, r)
	require.NoError(t, err)
	assert.Equal(t, domain.GoalCompleted, done.Status)
	require.NotNil(t, done.CompletedAt)
	assert.Equal(t, r, *done.Reflection)

	_, err = f.goals.MarkCompleted(ctx, g.ID, r)
	assert.ErrorIs(t, err, domain.ErrGoalNotActive)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateGoal(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	g := f.createGoal(t, "Ship it", 10)
	other := f.createGoal(t, "Other", 1)

	title := "Ship it well"
	est := 12.0
	got, err := f.goals.UpdateGoal(ctx, g.ID, GoalEdit{
		Title:          &title,
		EstimatedHours: &est,
		Tags:           []string{"Work"},
		ReplaceTags:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ship it well", got.Title)
	assert.Equal(t, 12.0, got.EstimatedHours)
	assert.Equal(t, g.Deadline, got.Deadline)
	assert.Equal(t, []string{"work"}, got.Tags)

	list, err := f.goals.ListGoals(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, g.ID, list[0].ID, "update keeps position")
	assert.Equal(t, other.ID, list[1].ID)

	empty := " "
	_, err = f.goals.UpdateGoal(ctx, g.ID, GoalEdit{Title: &empty})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.goals.UpdateGoal(ctx, "missing", GoalEdit{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteGoal(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	g := f.createGoal(t, "Ship it", 10)

	require.NoError(t, f.goals.DeleteGoal(ctx, g.ID))
	assert.ErrorIs(t, f.goals.DeleteGoal(ctx, g.ID), domain.ErrNotFound)
	assert.Zero(t, f.repo.Len())
}

func TestCommands_StorageFailureLeavesStateUnchanged(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	g := f.createGoal(t, "Ship it", 10)

	f.store.SaveErr = errors.New("disk full")
	_, err := f.goals.LogTime(ctx, g.ID, 3)
	require.ErrorIs(t, err, domain.ErrStorage)
	_, err = f.goals.AddNote(ctx, g.ID, NoteInput{Content: "x"})
	require.ErrorIs(t, err, domain.ErrStorage)

	f.store.SaveErr = nil
	got, err := f.goals.GetGoal(ctx, g.ID)
	require.NoError(t, err)
	assert.Zero(t, got.ActualHours)
	assert.Empty(t, got.Notes)

	persisted, err := f.store.LoadGoals(ctx)
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Zero(t, persisted[0].ActualHours)
}

func TestCommands_AreObserved(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	g := f.createGoal(t, "Ship it", 10)
	_, _ = f.goals.LogTime(ctx, g.ID, -1)

	require.Len(t, f.observer.events, 2)
	assert.Equal(t, "create-goal", f.observer.events[0].Name)
	assert.True(t, f.observer.events[0].Success)

	failed := f.observer.events[1]
	assert.Equal(t, "log-time", failed.Name)
	assert.False(t, failed.Success)
	assert.ErrorIs(t, failed.Err, domain.ErrValidation)
	assert.Equal(t, g.ID, failed.Fields["goal_id"])
}

func TestImportGoal_CreatesGoalWithMilestones(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	g, err := f.goals.ImportGoal(ctx, NewGoalInput{
		Title:          "Learn Rust",
		Deadline:       testutil.FixedNow.AddDate(0, 2, 0),
		EstimatedHours: 40,
		Tags:           []string{"lang"},
	}, []MilestoneInput{
		{Title: "Read the book", Link: " https://doc.rust-lang.org/book/ "},
		{Title: "Write a CLI", Description: "clap + serde"},
	})
	require.NoError(t, err)

	got, err := f.goals.GetGoal(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, got.Milestones, 2)
	assert.Equal(t, "Read the book", got.Milestones[0].Title)
	assert.Equal(t, "https://doc.rust-lang.org/book/", got.Milestones[0].ExternalLink)
	assert.Equal(t, "clap + serde", got.Milestones[1].Description)
	assert.Equal(t, []string{"lang"}, got.Tags)

	last := f.observer.events[len(f.observer.events)-1]
	assert.Equal(t, "import-goal", last.Name)
	assert.NoError(t, last.Err)
}

func TestImportGoal_InvalidMilestoneWritesNothing(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	in := NewGoalInput{Title: "Learn Rust", Deadline: testutil.FixedNow.AddDate(0, 2, 0)}

	_, err := f.goals.ImportGoal(ctx, in, []MilestoneInput{{Title: "ok"}, {Title: " "}})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.goals.ImportGoal(ctx, in, []MilestoneInput{{Title: "ok", Link: "mailto:me"}})
	assert.ErrorIs(t, err, domain.ErrValidation)

	all, err := f.goals.ListGoals(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
