package cli

import (
	"fmt"

	"github.com/alexanderramin/journey/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func runDashboard(cmd *cobra.Command, app *App) error {
	d, err := app.Insights.Dashboard(cmd.Context())
	if err != nil {
		return err
	}
	if d.User == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "Welcome to journey. Start by creating a profile: journey profile set --name <name>")
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDashboard(d, app.now()))
	return nil
}

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"home"},
		Short:   "Stats, suggestions and all goals at a glance",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, app)
		},
	}
}

func newRealityCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reality",
		Short: "Compare estimated and actual hours",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := app.Insights.Reality(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReality(v))
			return nil
		},
	}
}

func newTimelineCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "timeline",
		Short: "Everything that happened across your goals, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := app.Insights.Timeline(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTimeline(events, app.now()))
			return nil
		},
	}
}

func newFailuresCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "failures",
		Aliases: []string{"setbacks"},
		Short:   "Review logged setbacks",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Insights.Failures(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatFailures(entries, app.now()))
			return nil
		},
	}
}

func newRoadmapCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "roadmap",
		Short: "All milestones and learning resources",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := app.Insights.Roadmap(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRoadmap(v))
			return nil
		},
	}
}
