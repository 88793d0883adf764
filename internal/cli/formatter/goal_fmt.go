package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/journey/internal/domain"
	"github.com/alexanderramin/journey/internal/metrics"
	"github.com/alexanderramin/journey/internal/service"
)

const barWidth = 20

// FormatGoalList renders dashboard goal cards as a table.
func FormatGoalList(goals []service.GoalSummary, now time.Time) string {
	rows := make([][]string, 0, len(goals))
	for _, s := range goals {
		g := s.Goal
		health := HealthIndicator(s.Health.Status)
		if !g.IsActive() {
			health = Dim("--")
		}
		rows = append(rows, []string{
			TruncID(g.ID),
			Truncate(g.Title, 40),
			StatusPill(g.Status),
			RenderProgress(s.Progress, 10),
			health,
			RelativeDateFrom(g.Deadline, now),
			TagList(g.Tags),
		})
	}
	return RenderTable([]string{"ID", "GOAL", "STATUS", "PROGRESS", "HEALTH", "DEADLINE", "TAGS"}, rows)
}

// FormatGoalDetail renders the full view of one goal.
func FormatGoalDetail(d *service.GoalDetail, now time.Time) string {
	g := d.Goal
	var b strings.Builder

	title := fmt.Sprintf("%s  %s", Bold(g.Title), TruncID(g.ID))
	var info strings.Builder
	info.WriteString(title + "\n")
	if g.Description != "" {
		info.WriteString(Dim(g.Description) + "\n")
	}
	info.WriteString("\n")
	fmt.Fprintf(&info, "%-10s %s\n", "Status", StatusPill(g.Status))
	fmt.Fprintf(&info, "%-10s %s\n", "Progress", RenderProgress(d.Progress, barWidth))
	if g.IsActive() {
		fmt.Fprintf(&info, "%-10s %s %s\n", "Health", HealthIndicator(d.Health.Status), Dim("("+string(d.Health.Reason)+")"))
	}
	fmt.Fprintf(&info, "%-10s %s of %s  %s\n", "Time", FormatHours(g.ActualHours), FormatHours(g.EstimatedHours),
		BandColor(d.Reality.Band).Render(d.Reality.Band.Insight()))
	fmt.Fprintf(&info, "%-10s %s  %s\n", "Deadline", g.Deadline.Format(domain.DateLayout), DaysLeftStyled(d.Countdown))
	fmt.Fprintf(&info, "%-10s %s", "Tags", TagList(g.Tags))
	b.WriteString(RenderBox("", info.String()))
	b.WriteString("\n\n")

	b.WriteString(Header("Milestones") + "\n")
	b.WriteString(FormatMilestones(g.Milestones))

	if len(g.Notes) > 0 {
		b.WriteString("\n" + Header("Notes") + "\n")
		for _, n := range g.Notes {
			b.WriteString(formatNote(n, "", now))
		}
	}

	if len(g.Logs) > 0 {
		b.WriteString("\n" + Header("Log") + "\n")
		for _, l := range g.Logs {
			b.WriteString(formatLogLine(l, now) + "\n")
		}
	}

	if len(g.Comments) > 0 {
		b.WriteString("\n" + Header("Comments") + "\n")
		for _, c := range g.Comments {
			fmt.Fprintf(&b, "%s %s  %s\n", StyleBlue.Render(c.UserName), Dim(HumanTimestamp(c.CreatedAt, now)), c.Content)
		}
	}

	if g.Reflection != nil {
		b.WriteString("\n" + Header("Reflection") + "\n")
		fmt.Fprintf(&b, "%s %s\n", StyleGreen.Render("What worked:"), g.Reflection.Worked)
		fmt.Fprintf(&b, "%s %s\n", StyleRed.Render("What didn't:"), g.Reflection.DidntWork)
		fmt.Fprintf(&b, "%s %s\n", StyleBlue.Render("Next time:"), g.Reflection.Differently)
	}

	if len(d.Timeline) > 0 {
		b.WriteString("\n" + Header("Timeline") + "\n")
		b.WriteString(FormatTimeline(d.Timeline, now))
	}
	return b.String()
}

// FormatMilestones renders a numbered checklist. Numbers are 1-based and
// accepted by "milestone toggle".
func FormatMilestones(ms []domain.Milestone) string {
	if len(ms) == 0 {
		return Dim("No milestones yet. Plan your path with 'journey milestone add'.") + "\n"
	}
	var b strings.Builder
	for i, m := range ms {
		box := StyleDim.Render("[ ]")
		title := m.Title
		if m.IsCompleted {
			box = StyleGreen.Render("[x]")
			title = Dim(title)
		}
		fmt.Fprintf(&b, "%2d. %s %s", i+1, box, title)
		if badge, ok := metrics.ResourceKind(m.ExternalLink); ok {
			fmt.Fprintf(&b, "  %s %s", StylePurple.Render("["+string(badge)+"]"), Dim(m.ExternalLink))
		}
		b.WriteString("\n")
		if m.Description != "" {
			fmt.Fprintf(&b, "        %s\n", Dim(m.Description))
		}
	}
	return b.String()
}

func formatNote(n domain.Note, goalTitle string, now time.Time) string {
	var b strings.Builder
	head := fmt.Sprintf("%s %s", StyleBlue.Render(string(n.Type)), ImpactColor(n.Impact).Render("("+string(n.Impact)+")"))
	if goalTitle != "" {
		head += "  " + Bold(goalTitle)
	}
	fmt.Fprintf(&b, "%s  %s\n", head, Dim(HumanTimestamp(n.CreatedAt, now)))
	fmt.Fprintf(&b, "  %s\n", n.Content)
	for _, a := range n.Attachments {
		fmt.Fprintf(&b, "  %s %s %s %s\n", Dim("📎"), a.Name, Dim(a.SizeDisplay), TruncID(a.ID))
	}
	return b.String()
}

func formatLogLine(l domain.LogEntry, now time.Time) string {
	style := StyleBlue
	switch l.Type {
	case domain.LogFailure:
		style = StyleRed
	case domain.LogSuccess:
		style = StyleGreen
	}
	return fmt.Sprintf("%s %s  %s", style.Render(fmt.Sprintf("%-7s", l.Type)), l.Reason, Dim(HumanTimestamp(l.CreatedAt, now)))
}
