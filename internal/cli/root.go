package cli

import (
	"time"

	"github.com/alexanderramin/journey/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Goals       service.GoalService
	Profiles    service.ProfileService
	Insights    service.InsightService
	Attachments service.AttachmentService

	// Now is the clock used for relative dates and countdowns.
	Now func() time.Time
	// IsInteractive reports whether forms and live views may be shown.
	IsInteractive func() bool
	// Tick is the countdown refresh interval.
	Tick time.Duration
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now().UTC()
	}
	return a.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) tick() time.Duration {
	if a.Tick <= 0 {
		return time.Second
	}
	return a.Tick
}

// NewRootCmd creates the top-level "journey" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "journey",
		Short:         "Track goals, milestones and the time they really take",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, app)
		},
	}

	root.AddCommand(
		newProfileCmd(app),
		newGoalCmd(app),
		newMilestoneCmd(app),
		newNoteCmd(app),
		newTimeCmd(app),
		newSetbackCmd(app),
		newLogCmd(app),
		newCommentCmd(app),
		newDashboardCmd(app),
		newRealityCmd(app),
		newTimelineCmd(app),
		newFailuresCmd(app),
		newRoadmapCmd(app),
		newCountdownCmd(app),
		newAttachmentCmd(app),
		newReportCmd(app),
	)

	return root
}
