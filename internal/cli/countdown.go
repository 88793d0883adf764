package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/journey/internal/cli/formatter"
	"github.com/alexanderramin/journey/internal/domain"
	"github.com/alexanderramin/journey/internal/metrics"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

type countdownTickMsg time.Time

// countdownModel shows a live countdown to a goal deadline. The bar tracks
// how much of the window between creation and deadline has elapsed.
type countdownModel struct {
	goal     *domain.Goal
	now      func() time.Time
	interval time.Duration
	bar      progress.Model
	current  metrics.CountdownResult
	quitting bool
}

func newCountdownModel(g *domain.Goal, now func() time.Time, interval time.Duration) countdownModel {
	bar := progress.New(
		progress.WithSolidFill(string(formatter.ColorHeader)),
		progress.WithoutPercentage(),
	)
	bar.Width = 40
	return countdownModel{
		goal:     g,
		now:      now,
		interval: interval,
		bar:      bar,
		current:  metrics.Countdown(g.Deadline, now()),
	}
}

func (m countdownModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return countdownTickMsg(t)
	})
}

func (m countdownModel) Init() tea.Cmd {
	return m.tick()
}

func (m countdownModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case countdownTickMsg:
		m.current = metrics.Countdown(m.goal.Deadline, m.now())
		if m.current.Expired {
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.bar.Width = min(max(msg.Width-8, 10), 60)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m countdownModel) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s\n\n", formatter.Bold(m.goal.Title))
	if m.current.Expired {
		fmt.Fprintf(&b, "  %s\n", formatter.StyleRed.Render("Deadline passed"))
	} else {
		fmt.Fprintf(&b, "  %s\n", formatter.StyleHeader.Render(formatter.FormatCountdown(m.current)))
	}
	fmt.Fprintf(&b, "\n  %s\n", m.bar.ViewAs(m.elapsed()))
	fmt.Fprintf(&b, "  %s\n", formatter.Dim("Deadline "+m.goal.Deadline.Format(domain.DateLayout)))
	if !m.quitting {
		fmt.Fprintf(&b, "\n  %s\n", formatter.Dim("q to quit"))
	}
	return b.String()
}

// elapsed is the fraction of the goal window already used, in [0, 1].
func (m countdownModel) elapsed() float64 {
	window := m.goal.Deadline.Sub(m.goal.CreatedAt)
	if window <= 0 {
		return 1
	}
	used := m.now().Sub(m.goal.CreatedAt)
	return min(max(float64(used)/float64(window), 0), 1)
}

func newCountdownCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "countdown GOAL",
		Short: "Live countdown to a goal's deadline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			goalID, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}
			g, err := app.Goals.GetGoal(ctx, goalID)
			if err != nil {
				return err
			}

			model := newCountdownModel(g, app.now, app.tick())
			if !app.interactive() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", g.Title, formatter.FormatCountdown(model.current))
				return nil
			}

			p := tea.NewProgram(model,
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}
}
