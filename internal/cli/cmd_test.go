package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/journey/internal/blob"
	"github.com/alexanderramin/journey/internal/domain"
	"github.com/alexanderramin/journey/internal/repository"
	"github.com/alexanderramin/journey/internal/service"
	"github.com/alexanderramin/journey/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	store := repository.NewSQLiteStore(database)
	repo, err := repository.OpenGoalRepository(context.Background(), store)
	require.NoError(t, err)

	return &App{
		Goals:         service.NewGoalService(repo, store),
		Profiles:      service.NewProfileService(store),
		Insights:      service.NewInsightService(repo, store),
		Attachments:   service.NewAttachmentService(blob.NewMemory()),
		Now:           func() time.Time { return time.Now().UTC() },
		IsInteractive: func() bool { return false },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func deadlineIn(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format(domain.DateLayout)
}

// seedGoal creates a profile and one goal, returning the goal.
func seedGoal(t *testing.T, app *App, title string) *domain.Goal {
	t.Helper()
	ctx := context.Background()
	if _, ok, _ := app.Profiles.Current(ctx); !ok {
		_, err := app.Profiles.Save(ctx, "Maya", "", "")
		require.NoError(t, err)
	}
	g, err := app.Goals.CreateGoal(ctx, service.NewGoalInput{
		Title:          title,
		Deadline:       time.Now().UTC().AddDate(0, 0, 30),
		EstimatedHours: 10,
	})
	require.NoError(t, err)
	return g
}

func mustGoal(t *testing.T, app *App, id string) *domain.Goal {
	t.Helper()
	g, err := app.Goals.GetGoal(context.Background(), id)
	require.NoError(t, err)
	return g
}

// --- Profile ---

func TestProfileSetShowLogout(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "profile", "set", "--name", "Maya", "--bio", "Backend dev")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved profile for Maya")

	out, err = executeCmd(t, app, "profile", "set", "--avatar", "https://example.com/a.png")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved profile for Maya")

	out, err = executeCmd(t, app, "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Maya")
	assert.Contains(t, out, "Backend dev")
	assert.Contains(t, out, "https://example.com/a.png")

	out, err = executeCmd(t, app, "profile", "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out.")

	out, err = executeCmd(t, app, "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "No profile yet")
}

func TestProfileSet_RequiresNameWhenNotInteractive(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "profile", "set")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// --- Goals ---

func TestGoalAdd_CreatesGoal(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "profile", "set", "--name", "Maya")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "goal", "add",
		"--title", "Learn Go",
		"--deadline", deadlineIn(30),
		"--hours", "20",
		"--tag", "Go,backend", "--tag", "go",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Created goal Learn Go")

	goals, err := app.Goals.ListGoals(context.Background())
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, 20.0, goals[0].EstimatedHours)
	assert.Equal(t, []string{"backend", "go"}, goals[0].Tags)
}

func TestGoalAdd_WithoutProfileFails(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "goal", "add", "--title", "Learn Go", "--deadline", deadlineIn(3))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGoalAdd_BadDeadline(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "profile", "set", "--name", "Maya")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "goal", "add", "--title", "Learn Go", "--deadline", "next week")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGoalList_FiltersByStatusAndTag(t *testing.T) {
	app := testApp(t)
	a := seedGoal(t, app, "Learn Go")
	b := seedGoal(t, app, "Run a marathon")
	_, err := executeCmd(t, app, "goal", "edit", a.DisplayID(), "--tag", "code")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "goal", "complete", b.DisplayID(), "--worked", "training plan")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "goal", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Learn Go")
	assert.Contains(t, out, "Run a marathon")

	out, err = executeCmd(t, app, "goal", "list", "--status", "active")
	require.NoError(t, err)
	assert.Contains(t, out, "Learn Go")
	assert.NotContains(t, out, "Run a marathon")

	out, err = executeCmd(t, app, "goal", "list", "--tag", "CODE")
	require.NoError(t, err)
	assert.Contains(t, out, "Learn Go")
	assert.NotContains(t, out, "Run a marathon")

	out, err = executeCmd(t, app, "goal", "list", "--tag", "nothing")
	require.NoError(t, err)
	assert.Contains(t, out, "No goals found.")
}

func TestGoalShow_ByShortAndPrefixID(t *testing.T) {
	app := testApp(t)
	g := seedGoal(t, app, "Learn Go")

	out, err := executeCmd(t, app, "goal", "show", g.DisplayID())
	require.NoError(t, err)
	assert.Contains(t, out, "Learn Go")
	assert.Contains(t, out, "MILESTONES")

	out, err = executeCmd(t, app, "goal", "show", g.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Learn Go")
}

func TestGoalShow_UnknownID(t *testing.T) {
	app := testApp(t)
	seedGoal(t, app, "Learn Go")

	_, err := executeCmd(t, app, "goal", "show", "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolveGoalID_AmbiguousPrefix(t *testing.T) {
	app := testApp(t)
	a := seedGoal(t, app, "One")
	b := seedGoal(t, app, "Two")

	// UUIDv7 ids created together share a leading timestamp.
	prefix := a.ID[:1]
	require.True(t, strings.HasPrefix(b.ID, prefix))

	_, err := resolveGoalID(context.Background(), app, prefix)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestGoalEdit_ChangesOnlyGivenFields(t *testing.T) {
	app := testApp(t)
	g := seedGoal(t, app, "Learn Go")
	newDeadline := deadlineIn(60)

	out, err := executeCmd(t, app, "goal", "edit", g.DisplayID(), "--title", "Master Go", "--deadline", newDeadline)
	require.NoError(t, err)
	assert.Contains(t, out, "Updated goal Master Go")

	got := mustGoal(t, app, g.ID)
	assert.Equal(t, "Master Go", got.Title)
	assert.Equal(t, newDeadline, got.Deadline.Format(domain.DateLayout))
	assert.Equal(t, 10.0, got.EstimatedHours)
}

func TestGoalComplete(t *testing.T) {
	app := testApp(t)
	g := seedGoal(t, app, "Learn Go")

	_, err := executeCmd(t, app, "goal", "complete", g.DisplayID())
	assert.ErrorIs(t, err, domain.ErrValidation, "worked is required")

	out, err := executeCmd(t, app, "goal", "complete", g.DisplayID(),
		"--worked", "daily practice", "--didnt-work", "weekends", "--differently", "start earlier")
	require.NoError(t, err)
	assert.Contains(t, out, "Completed Learn Go")
	assert.Contains(t, out, "Finished on time.")

	got := mustGoal(t, app, g.ID)
	assert.Equal(t, domain.GoalCompleted, got.Status)
	require.NotNil(t, got.Reflection)
	assert.Equal(t, "start earlier", got.Reflection.Differently)

	_, err = executeCmd(t, app, "goal", "complete", g.DisplayID(), "--worked", "again")
	assert.ErrorIs(t, err, domain.ErrGoalNotActive)
}

func TestGoalRemove(t *testing.T) {
	app := testApp(t)
	g := seedGoal(t, app, "Learn Go")

	_, err := executeCmd(t, app, "goal", "remove", g.DisplayID())
	assert.Error(t, err, "non-interactive removal needs --yes")
	mustGoal(t, app, g.ID)

	out, err := executeCmd(t, app, "goal", "remove", g.DisplayID(), "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed goal Learn Go")

	_, err = app.Goals.GetGoal(context.Background(), g.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// --- Milestones ---

func TestMilestoneAddToggleList(t *testing.T) {
	app := testApp(t)
	g := seedGoal(t, app, "Learn Go")

	_, err := executeCmd(t, app, "milestone", "add", g.DisplayID(), "Tour of Go", "--link", "https://go.dev/tour")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "ms", "add", g.DisplayID(), "Build a CLI")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "milestone", "toggle", g.DisplayID(), "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Completed Build a CLI")

	out, err = executeCmd(t, app, "milestone", "list", g.DisplayID())
	require.NoError(t, err)
	assert.Contains(t, out, "1. [ ] Tour of Go")
	assert.Contains(t, out, "2. [x] Build a CLI")

	got := mustGoal(t, app, g.ID)
	out, err = executeCmd(t, app, "milestone", "toggle", g.DisplayID(), domain.ShortID(got.Milestones[1].ID))
	require.NoError(t, err)
	assert.Contains(t, out, "Reopened Build a CLI")
}

func TestMilestoneAdd_RejectsBadLink(t *testing.T) {
	app := testApp(t)
	g := seedGoal(t, app, "Learn Go")

	_, err := executeCmd(t, app, "milestone", "add", g.DisplayID(), "Tour", "--link", "go.dev/tour")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, mustGoal(t, app, g.ID).Milestones)
}

func TestMilestoneToggle_OutOfRange(t *testing.T) {
	app := testApp(t)
	g := seedGoal(t, app, "Learn Go")

	_, err := executeCmd(t, app, "milestone", "toggle", g.DisplayID(), "3")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// --- Notes and attachments ---

func TestNoteAdd_WithAttachmentAndOpen(t *testing.T) {
	app := testApp(t)
	g := seedGoal(t, app, "Learn Go")

	dir := t.TempDir()
	src := filepath.Join(dir, "plan.txt")
	require.NoError(t, os.WriteFile(src, []byte("week 1: basics"), 0o644))

	out, err := executeCmd(t, app, "note", "add", g.DisplayID(), "Made a plan",
		"--type", "idea", "--impact", "positive", "--attach", src)
	require.NoError(t, err)
	assert.Contains(t, out, "Added Idea note with 1 attachment(s)")

	got := mustGoal(t, app, g.ID)
	require.Len(t, got.Notes, 1)
	require.Len(t, got.Notes[0].Attachments, 1)
	ref := got.Notes[0].Attachments[0]
	assert.Equal(t, "plan.txt", ref.Name)
	assert.Equal(t, domain.ImpactPositive, got.Notes[0].Impact)

	dst := filepath.Join(dir, "copy.txt")
	out, err = executeCmd(t, app, "attachment", "open", ref.ID, "--out", dst)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+dst)
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "week 1: basics", string(data))

	out, err = executeCmd(t, app, "note", "list", g.DisplayID())
	require.NoError(t, err)
	assert.Contains(t, out, "Made a plan")
	assert.Contains(t, out, "plan.txt")
}

func TestNoteAdd_UnknownTypeRejectedAtParse(t *testing.T) {
	app := testApp(t)
	g := seedGoal(t, app, "Learn Go")

	_, err := executeCmd(t, app, "note", "add", g.DisplayID(), "x", "--type", "rant")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown note type")
}

func TestNoteList_AcrossGoals(t *testing.T) {
	app := testApp(t)
	a := seedGoal(t, app, "Learn Go")
	b := seedGoal(t, app, "Run")
	_, err := executeCmd(t, app, "note", "add", a.DisplayID(), "first")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "note", "add", b.DisplayID(), "second")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "note", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")

	out, err = executeCmd(t, app, "note", "list", b.DisplayID())
	require.NoError(t, err)
	assert.NotContains(t, out, "first")
	assert.Contains(t, out, "second")
}

func TestAttachmentOpen_Unavailable(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "attachment", "open", "missing")
	require.NoError(t, err)
	assert.Contains(t, out, "no longer available")
}

// --- Time, setbacks, logs, comments ---

func TestTimeLog(t *testing.T) {
	app := testApp(t)
	g := seedGoal(t, app, "Learn Go")

	out, err := executeCmd(t, app, "time", "log", g.DisplayID(), "2.5")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged 2.5h on Learn Go")
	assert.Contains(t, out, "You are on track")

	out, err = executeCmd(t, app, "time", "log", g.DisplayID(), "9")
	require.NoError(t, err)
	assert.Contains(t, out, "Time usage exceeds expectations")
	assert.Equal(t, 11.5, mustGoal(t, app, g.ID).ActualHours)

	_, err = executeCmd(t, app, "time", "log", g.DisplayID(), "--", "-1")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = executeCmd(t, app, "time", "log", g.DisplayID(), "abc")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSetbackLogAndFailures(t *testing.T) {
	app := testApp(t)
	g := seedGoal(t, app, "Learn Go")

	out, err := executeCmd(t, app, "setback", "log", g.DisplayID(), "Skipped a week")
	require.NoError(t, err)
	assert.Contains(t, out, "Setback logged.")

	out, err = executeCmd(t, app, "failures")
	require.NoError(t, err)
	assert.Contains(t, out, "Skipped a week")
	assert.Contains(t, out, "Learn Go")

	_, err = executeCmd(t, app, "setback", "log", g.DisplayID(), "  ")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLogAdd_Types(t *testing.T) {
	app := testApp(t)
	g := seedGoal(t, app, "Learn Go")

	out, err := executeCmd(t, app, "log", "add", g.DisplayID(), "Finished chapter 3", "--type", "success")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged success entry")

	out, err = executeCmd(t, app, "log", "add", g.DisplayID(), "Read the RFC")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged info entry")

	_, err = executeCmd(t, app, "log", "add", g.DisplayID(), "x", "--type", "warning")
	assert.Error(t, err)

	got := mustGoal(t, app, g.ID)
	require.Len(t, got.Logs, 2)
	assert.Equal(t, domain.LogSuccess, got.Logs[0].Type)
}

func TestCommentAddAndSimulate(t *testing.T) {
	app := testApp(t)
	g := seedGoal(t, app, "Learn Go")

	out, err := executeCmd(t, app, "comment", "add", g.DisplayID(), "Proud of this")
	require.NoError(t, err)
	assert.Contains(t, out, "Maya: Proud of this")

	out, err = executeCmd(t, app, "comment", "add", g.DisplayID(), "Nice", "--as", "Coach")
	require.NoError(t, err)
	assert.Contains(t, out, "Coach: Nice")

	_, err = executeCmd(t, app, "comment", "simulate", g.DisplayID())
	require.NoError(t, err)

	got := mustGoal(t, app, g.ID)
	assert.Len(t, got.Comments, 3)
}

// --- Views ---

func TestDashboard(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "journey profile set")

	g := seedGoal(t, app, "Learn Go")
	out, err = executeCmd(t, app, "dashboard")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome back, Maya")
	assert.Contains(t, out, "Plan Your Path")
	assert.Contains(t, out, g.DisplayID())
}

func TestRealityTimelineRoadmap(t *testing.T) {
	app := testApp(t)
	g := seedGoal(t, app, "Learn Go")
	_, err := executeCmd(t, app, "time", "log", g.DisplayID(), "9")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "milestone", "add", g.DisplayID(), "Watch talk", "--link", "https://youtube.com/watch?v=1")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "milestone", "toggle", g.DisplayID(), "1")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "reality")
	require.NoError(t, err)
	assert.Contains(t, out, "9h of 10h estimated")
	assert.Contains(t, out, "Approaching estimated limit")

	out, err = executeCmd(t, app, "timeline")
	require.NoError(t, err)
	assert.Contains(t, out, "Started Goal: Learn Go")
	assert.Contains(t, out, "Completed Milestone: Watch talk")

	out, err = executeCmd(t, app, "roadmap")
	require.NoError(t, err)
	assert.Contains(t, out, "Watch talk")
	assert.Contains(t, out, "Video")
}

func TestCountdown_NonInteractivePrintsOnce(t *testing.T) {
	app := testApp(t)
	g := seedGoal(t, app, "Learn Go")

	out, err := executeCmd(t, app, "countdown", g.DisplayID())
	require.NoError(t, err)
	assert.Contains(t, out, "Learn Go: ")
	assert.Regexp(t, `\d+d \d{2}h \d{2}m \d{2}s`, out)
}

func TestReportPDF(t *testing.T) {
	app := testApp(t)
	g := seedGoal(t, app, "Learn Go")
	path := filepath.Join(t.TempDir(), "report.pdf")

	out, err := executeCmd(t, app, "report", "pdf", g.DisplayID(), "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestGoalImport(t *testing.T) {
	app := testApp(t)
	seedGoal(t, app, "Existing")

	path := filepath.Join(t.TempDir(), "plan.yaml")
	plan := "goals:\n" +
		"  - title: Learn Rust\n" +
		"    deadline: " + deadlineIn(60) + "\n" +
		"    estimated_hours: 30\n" +
		"    milestones:\n" +
		"      - title: Read the book\n" +
		"        link: https://doc.rust-lang.org/book/\n" +
		"      - title: Write a CLI\n" +
		"  - title: Run 10k\n" +
		"    deadline: " + deadlineIn(90) + "\n"
	require.NoError(t, os.WriteFile(path, []byte(plan), 0o600))

	out, err := executeCmd(t, app, "goal", "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 goal(s)")

	goals, err := app.Goals.ListGoals(context.Background())
	require.NoError(t, err)
	require.Len(t, goals, 3)

	var rust *domain.Goal
	for _, g := range goals {
		if g.Title == "Learn Rust" {
			rust = g
		}
	}
	require.NotNil(t, rust)
	require.Len(t, rust.Milestones, 2)
	assert.Equal(t, "https://doc.rust-lang.org/book/", rust.Milestones[0].ExternalLink)
	assert.Equal(t, 30.0, rust.EstimatedHours)
}

func TestGoalImport_InvalidPlanWritesNothing(t *testing.T) {
	app := testApp(t)
	seedGoal(t, app, "Existing")

	path := filepath.Join(t.TempDir(), "plan.json")
	plan := `{"goals": [
		{"title": "Learn Rust", "deadline": "` + deadlineIn(60) + `"},
		{"title": "", "deadline": "next week"}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(plan), 0o600))

	_, err := executeCmd(t, app, "goal", "import", path)
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "goals[1].title is required")
	assert.Contains(t, err.Error(), "goals[1].deadline")

	goals, err := app.Goals.ListGoals(context.Background())
	require.NoError(t, err)
	assert.Len(t, goals, 1)
}
