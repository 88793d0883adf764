package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/journey/internal/domain"
	"github.com/alexanderramin/journey/internal/metrics"
	"github.com/alexanderramin/journey/internal/service"
)

// FormatDashboard renders the greeting, stats, suggestions and goal list.
func FormatDashboard(d *service.Dashboard, now time.Time) string {
	var b strings.Builder

	name := "there"
	if d.User != nil {
		name = d.User.Name
	}
	fmt.Fprintf(&b, "%s\n\n", StyleHeader.Render(fmt.Sprintf("Welcome back, %s", name)))

	fmt.Fprintf(&b, "%s %s   %s %s   %s %s\n\n",
		Dim("Total"), Bold(fmt.Sprint(d.Stats.Total)),
		Dim("Active"), StyleGreen.Render(fmt.Sprint(d.Stats.Active)),
		Dim("Completed"), StyleBlue.Render(fmt.Sprint(d.Stats.Completed)),
	)

	b.WriteString(FormatSuggestions(d.Suggestions))
	b.WriteString("\n")

	if len(d.Goals) == 0 {
		b.WriteString(Dim("No goals yet. Start with 'journey goal add'.") + "\n")
		return b.String()
	}
	b.WriteString(Header("Goals") + "\n")
	b.WriteString(FormatGoalList(d.Goals, now))
	return b.String()
}

// FormatSuggestions renders the suggestion cards inside a box.
func FormatSuggestions(suggestions []metrics.Suggestion) string {
	var lines []string
	for _, s := range suggestions {
		lines = append(lines, fmt.Sprintf("%s %s\n  %s", StylePurple.Render("◆"), Bold(s.Kind.Title()), s.Text))
	}
	return RenderBox("Suggested next", strings.Join(lines, "\n\n"))
}

// FormatReality renders the aggregate time-usage bar and per-goal rows.
func FormatReality(v *service.RealityView) string {
	var b strings.Builder
	agg := v.Aggregate

	b.WriteString(Header("Time reality check") + "\n")
	fmt.Fprintf(&b, "%s of %s estimated across active goals\n",
		Bold(FormatHours(agg.Actual)), FormatHours(agg.Estimated))
	fmt.Fprintf(&b, "%s\n", RenderBudgetBar(agg.Fill, agg.Ratio, 30))
	fmt.Fprintf(&b, "%s\n\n", BandColor(agg.Band).Render(agg.Band.Insight()))

	if len(v.Rows) == 0 {
		b.WriteString(Dim("No active goals.") + "\n")
		return b.String()
	}
	rows := make([][]string, 0, len(v.Rows))
	for _, r := range v.Rows {
		rows = append(rows, []string{
			TruncID(r.GoalID),
			Truncate(r.Title, 40),
			FormatHours(r.Reality.Estimated),
			FormatHours(r.Reality.Actual),
			RenderBudgetBar(r.Reality.Fill, r.Reality.Ratio, 10),
			BandColor(r.Reality.Band).Render(r.Reality.Band.Insight()),
		})
	}
	b.WriteString(RenderTable([]string{"ID", "GOAL", "EST", "ACTUAL", "USAGE", "INSIGHT"}, rows, 2, 3))
	return b.String()
}

// FormatTimeline renders events newest first, one per line.
func FormatTimeline(events []metrics.TimelineEvent, now time.Time) string {
	if len(events) == 0 {
		return Dim("Nothing has happened yet.") + "\n"
	}
	var b strings.Builder
	for _, e := range events {
		marker := StyleBlue.Render("●")
		switch {
		case e.Setback:
			marker = StyleRed.Render("✖")
		case e.Kind == metrics.EventMilestoneCompleted:
			marker = StyleGreen.Render("✔")
		case e.Kind == metrics.EventGoalCreated:
			marker = StyleHeader.Render("★")
		}
		fmt.Fprintf(&b, "%s %s %s", marker, Dim(fmt.Sprintf("%-12s", HumanDate(e.At, now))), e.Title)
		if e.Content != "" {
			fmt.Fprintf(&b, "  %s", Dim(Truncate(e.Content, 60)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatNotesFeed renders notes from every goal, newest first.
func FormatNotesFeed(notes []metrics.FeedNote, now time.Time) string {
	if len(notes) == 0 {
		return Dim("No notes yet.") + "\n"
	}
	var b strings.Builder
	for _, n := range notes {
		b.WriteString(formatNote(n.Note, n.GoalTitle, now))
	}
	return b.String()
}

// FormatFailures renders the setback log.
func FormatFailures(entries []metrics.FailureEntry, now time.Time) string {
	if len(entries) == 0 {
		return StyleGreen.Render("No setbacks logged. Keep it up.") + "\n"
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{HumanDate(e.CreatedAt, now), Bold(Truncate(e.GoalTitle, 30)), e.Reason})
	}
	return RenderTable([]string{"WHEN", "GOAL", "WHAT HAPPENED"}, rows)
}

// FormatRoadmap renders milestone stats and every milestone across goals.
func FormatRoadmap(v metrics.RoadmapView) string {
	var b strings.Builder
	s := v.Stats
	fmt.Fprintf(&b, "%s %d   %s %d   %s %d   %s\n\n",
		Dim("Milestones"), s.Total,
		Dim("Completed"), s.Completed,
		Dim("Learning"), s.Learning,
		RenderProgress(s.Rate, barWidth))

	if len(v.Items) == 0 {
		b.WriteString(Dim("No milestones yet.") + "\n")
		return b.String()
	}
	rows := make([][]string, 0, len(v.Items))
	for _, it := range v.Items {
		box := Dim("[ ]")
		if it.Milestone.IsCompleted {
			box = StyleGreen.Render("[x]")
		}
		badge := ""
		if it.Badge != "" {
			badge = StylePurple.Render(string(it.Badge))
		}
		rows = append(rows, []string{box, Truncate(it.GoalTitle, 24), it.Milestone.Title, badge})
	}
	b.WriteString(RenderTable([]string{"", "GOAL", "MILESTONE", "RESOURCE"}, rows))
	return b.String()
}

// FormatProfile renders the current user.
func FormatProfile(u *domain.User, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Bold(u.Name), TruncID(u.ID))
	if u.Bio != "" {
		fmt.Fprintf(&b, "%s\n", u.Bio)
	}
	if u.Avatar != "" {
		fmt.Fprintf(&b, "%s %s\n", Dim("Avatar"), u.Avatar)
	}
	fmt.Fprintf(&b, "%s %s", Dim("Joined"), HumanDate(u.JoinedAt, now))
	return RenderBox("Profile", b.String())
}

// FormatCountdown renders "12d 04h 33m 10s", or "Expired".
func FormatCountdown(c metrics.CountdownResult) string {
	if c.Expired {
		return "Expired"
	}
	return fmt.Sprintf("%dd %02dh %02dm %02ds", c.Days, c.Hours, c.Minutes, c.Seconds)
}
