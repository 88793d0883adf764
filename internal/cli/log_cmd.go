package cli

import (
	"fmt"

	"github.com/alexanderramin/journey/internal/cli/formatter"
	"github.com/alexanderramin/journey/internal/domain"
	"github.com/alexanderramin/journey/internal/metrics"
	"github.com/alexanderramin/journey/internal/service"
	"github.com/spf13/cobra"
)

func newTimeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time",
		Short: "Record hours spent",
	}
	cmd.AddCommand(newTimeLogCmd(app))
	return cmd
}

func newTimeLogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "log GOAL HOURS",
		Short: "Add hours to a goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			hours, err := service.ParseHours(args[1])
			if err != nil {
				return err
			}
			goalID, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}
			g, err := app.Goals.LogTime(ctx, goalID, hours)
			if err != nil {
				return err
			}
			r := metrics.GoalReality(g)
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s on %s. %s of %s used. %s\n",
				formatter.FormatHours(hours), g.Title,
				formatter.FormatHours(g.ActualHours), formatter.FormatHours(g.EstimatedHours),
				formatter.BandColor(r.Band).Render(r.Band.Insight()))
			return nil
		},
	}
}

func newSetbackCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setback",
		Short: "Record what went wrong",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "log GOAL REASON",
		Short: "Log a setback on a goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			goalID, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if _, err := app.Goals.LogFailure(ctx, goalID, args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Setback logged. Every setback is data.")
			return nil
		},
	})
	return cmd
}

func newLogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record progress log entries",
	}

	logType := logTypeFlag{v: domain.LogInfo}
	add := &cobra.Command{
		Use:   "add GOAL REASON",
		Short: "Append a log entry to a goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			goalID, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}
			e, err := app.Goals.LogEntry(ctx, goalID, logType.v, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s entry\n", e.Type)
			return nil
		},
	}
	add.Flags().Var(&logType, "type", "Entry type ("+logTypeChoices()+")")

	cmd.AddCommand(add)
	return cmd
}

func newCommentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Comments from fellow travellers",
	}

	var author string
	add := &cobra.Command{
		Use:   "add GOAL CONTENT",
		Short: "Add a comment to a goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			goalID, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}
			name := author
			if name == "" {
				if u, ok, err := app.Profiles.Current(ctx); err == nil && ok {
					name = u.Name
				}
			}
			c, err := app.Goals.AddComment(ctx, goalID, name, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", c.UserName, c.Content)
			return nil
		},
	}
	add.Flags().StringVar(&author, "as", "", "Comment author (defaults to your profile name)")

	simulate := &cobra.Command{
		Use:   "simulate GOAL",
		Short: "Receive an encouraging comment from the community",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			goalID, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}
			c, err := app.Goals.SimulateComment(ctx, goalID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", formatter.StyleBlue.Render(c.UserName), c.Content)
			return nil
		},
	}

	cmd.AddCommand(add, simulate)
	return cmd
}
