// Package report renders a goal's journey as a PDF document.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/alexanderramin/journey/internal/domain"
	"github.com/alexanderramin/journey/internal/metrics"
)

const (
	lineHeight = 6.0
	timeLayout = "2006-01-02 15:04"
)

// WriteGoalPDF writes a single-goal report to w: header, progress and
// health, then milestones, notes, setbacks and the completion reflection.
func WriteGoalPDF(w io.Writer, g *domain.Goal, now time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(g.Title), false)
	pdf.SetCreator("journey", false)
	pdf.AddPage()

	heading := func(size float64, text string) {
		pdf.SetFont("Arial", "B", size)
		pdf.MultiCell(0, lineHeight+2, tr(text), "", "", false)
		pdf.SetFont("Arial", "", 11)
	}
	line := func(text string) {
		pdf.MultiCell(0, lineHeight, tr(text), "", "", false)
	}

	heading(18, g.Title)
	if g.Description != "" {
		line(g.Description)
	}
	pdf.Ln(2)

	health := metrics.Health(g)
	countdown := metrics.Countdown(g.Deadline, now)
	line(fmt.Sprintf("Status: %s", g.Status))
	line(fmt.Sprintf("Deadline: %s (%s)", g.Deadline.Format(domain.DateLayout), deadlineText(countdown)))
	line(fmt.Sprintf("Progress: %d%%", metrics.Progress(g)))
	line(fmt.Sprintf("Health: %s", health.Status))
	line(fmt.Sprintf("Time: %.1fh of %.1fh estimated", g.ActualHours, g.EstimatedHours))
	if len(g.Tags) > 0 {
		line(fmt.Sprintf("Tags: %v", g.Tags))
	}
	pdf.Ln(4)

	heading(14, "Milestones")
	if len(g.Milestones) == 0 {
		line("No milestones yet.")
	}
	for _, m := range g.Milestones {
		box := "[ ]"
		if m.IsCompleted {
			box = "[x]"
		}
		line(fmt.Sprintf("%s %s", box, m.Title))
		if m.ExternalLink != "" {
			line("      " + m.ExternalLink)
		}
	}
	pdf.Ln(4)

	if len(g.Notes) > 0 {
		heading(14, "Notes")
		for _, n := range g.Notes {
			line(fmt.Sprintf("[%s] %s / %s", n.CreatedAt.Format(timeLayout), n.Type, n.Impact))
			line("  " + n.Content)
			for _, a := range n.Attachments {
				line(fmt.Sprintf("  attachment: %s (%s)", a.Name, a.SizeDisplay))
			}
		}
		pdf.Ln(4)
	}

	var setbacks []domain.LogEntry
	for _, l := range g.Logs {
		if l.IsFailure() {
			setbacks = append(setbacks, l)
		}
	}
	if len(setbacks) > 0 {
		heading(14, "Setbacks")
		for _, l := range setbacks {
			line(fmt.Sprintf("[%s] %s", l.CreatedAt.Format(timeLayout), l.Reason))
		}
		pdf.Ln(4)
	}

	if g.Reflection != nil {
		heading(14, "Reflection")
		line("What worked: " + g.Reflection.Worked)
		line("What didn't: " + g.Reflection.DidntWork)
		line("Next time: " + g.Reflection.Differently)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering pdf: %w", err)
	}
	return nil
}

func deadlineText(c metrics.CountdownResult) string {
	switch {
	case c.Expired:
		return "expired"
	case c.DaysLeft == 1:
		return "1 day left"
	default:
		return fmt.Sprintf("%d days left", c.DaysLeft)
	}
}
