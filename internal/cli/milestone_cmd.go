package cli

import (
	"fmt"

	"github.com/alexanderramin/journey/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newMilestoneCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "milestone",
		Aliases: []string{"ms"},
		Short:   "Plan and check off milestones",
	}

	cmd.AddCommand(
		newMilestoneAddCmd(app),
		newMilestoneToggleCmd(app),
		newMilestoneListCmd(app),
	)

	return cmd
}

func newMilestoneAddCmd(app *App) *cobra.Command {
	var description, link string

	cmd := &cobra.Command{
		Use:   "add GOAL TITLE",
		Short: "Add a milestone to a goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			goalID, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}
			m, err := app.Goals.AddMilestone(ctx, goalID, args[1], description, link)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added milestone %s\n", m.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Milestone description")
	cmd.Flags().StringVar(&link, "link", "", "Learning resource URL (http:// or https://)")

	return cmd
}

func newMilestoneToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle GOAL MILESTONE",
		Short: "Check or uncheck a milestone by number or id",
		Args:  cobra.ExactArgs(2),
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
			milestoneID, err := resolveMilestoneID(g, args[1])
			if err != nil {
				return err
			}
			m, err := app.Goals.ToggleMilestone(ctx, goalID, milestoneID)
			if err != nil {
				return err
			}
			if m.IsCompleted {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.StyleGreen.Render("Completed"), m.Title)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Reopened %s\n", m.Title)
			}
			return nil
		},
	}
}

func newMilestoneListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list GOAL",
		Short: "List a goal's milestones",
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
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMilestones(g.Milestones))
			return nil
		},
	}
}
