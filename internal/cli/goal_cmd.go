package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/journey/internal/cli/formatter"
	"github.com/alexanderramin/journey/internal/domain"
	"github.com/alexanderramin/journey/internal/importer"
	"github.com/alexanderramin/journey/internal/metrics"
	"github.com/alexanderramin/journey/internal/service"
	"github.com/spf13/cobra"
)

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals",
	}

	cmd.AddCommand(
		newGoalAddCmd(app),
		newGoalListCmd(app),
		newGoalShowCmd(app),
		newGoalEditCmd(app),
		newGoalCompleteCmd(app),
		newGoalRemoveCmd(app),
		newGoalImportCmd(app),
	)

	return cmd
}

func newGoalAddCmd(app *App) *cobra.Command {
	var title, description, deadline, hours string
	var tags []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("title") && app.interactive() {
				var tagInput string
				if err := wizardNewGoal(&title, &description, &deadline, &hours, &tagInput).Run(); err != nil {
					return err
				}
				tags = splitTags(tagInput)
			}

			due, err := domain.ParseDate(deadline)
			if err != nil {
				return err
			}
			if err := validateOptionalHours(hours); err != nil {
				return domain.Invalid("estimated_hours", "must be zero or more")
			}

			g, err := app.Goals.CreateGoal(cmd.Context(), service.NewGoalInput{
				Title:          title,
				Description:    description,
				Deadline:       due,
				EstimatedHours: parseHoursOrZero(hours),
				Tags:           tags,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created goal %s [%s]\n", g.Title, g.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Goal title")
	cmd.Flags().StringVar(&description, "description", "", "What success looks like")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().StringVar(&hours, "hours", "", "Estimated hours")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag (repeatable or comma separated)")

	return cmd
}

func newGoalListCmd(app *App) *cobra.Command {
	var status, tag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			goals, err := app.Goals.ListGoals(cmd.Context())
			if err != nil {
				return err
			}

			tag = strings.ToLower(strings.TrimSpace(tag))
			var summaries []service.GoalSummary
			for _, g := range goals {
				if status != "" && status != "all" && string(g.Status) != status {
					continue
				}
				if tag != "" && !g.HasTag(tag) {
					continue
				}
				summaries = append(summaries, service.GoalSummary{
					Goal:     g,
					Progress: metrics.Progress(g),
					Health:   metrics.Health(g),
				})
			}

			if len(summaries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No goals found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGoalList(summaries, app.now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "all", "Filter by status (active|completed|all)")
	cmd.Flags().StringVar(&tag, "tag", "", "Only goals with this tag")

	return cmd
}

func newGoalShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show goal details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			goalID, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}
			d, err := app.Insights.GoalDetail(ctx, goalID, app.now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatGoalDetail(d, app.now()))
			return nil
		},
	}
}

func newGoalEditCmd(app *App) *cobra.Command {
	var title, description, deadline string
	var hours float64
	var tags []string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			goalID, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var edit service.GoalEdit
			if cmd.Flags().Changed("title") {
				edit.Title = &title
			}
			if cmd.Flags().Changed("description") {
				edit.Description = &description
			}
			if cmd.Flags().Changed("deadline") {
				due, err := domain.ParseDate(deadline)
				if err != nil {
					return err
				}
				edit.Deadline = &due
			}
			if cmd.Flags().Changed("hours") {
				edit.EstimatedHours = &hours
			}
			if cmd.Flags().Changed("tag") {
				edit.Tags = tags
				edit.ReplaceTags = true
			}

			g, err := app.Goals.UpdateGoal(ctx, goalID, edit)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated goal %s [%s]\n", g.Title, g.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Goal title")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Estimated hours")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Replace tags (pass --tag= to clear)")

	return cmd
}

func newGoalCompleteCmd(app *App) *cobra.Command {
	var r domain.Reflection

	cmd := &cobra.Command{
		Use:   "complete ID",
		Short: "Mark a goal completed and record a reflection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			goalID, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("worked") && app.interactive() {
				if err := wizardReflection(&r.Worked, &r.DidntWork, &r.Differently).Run(); err != nil {
					return err
				}
			}

			g, err := app.Goals.MarkCompleted(ctx, goalID, r)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Completed %s. Took %s against %s estimated.\n",
				g.Title, formatter.FormatHours(g.ActualHours), formatter.FormatHours(g.EstimatedHours))
			if g.CompletedAt != nil && g.CompletedAt.Before(g.Deadline.Add(24*time.Hour)) {
				fmt.Fprintln(out, formatter.StyleGreen.Render("Finished on time."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&r.Worked, "worked", "", "What worked")
	cmd.Flags().StringVar(&r.DidntWork, "didnt-work", "", "What didn't work")
	cmd.Flags().StringVar(&r.Differently, "differently", "", "What you would do differently")

	return cmd
}

func newGoalRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a goal and everything recorded on it",
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

			if !yes {
				if !app.interactive() {
					return fmt.Errorf("refusing to remove %q without --yes", g.Title)
				}
				if err := wizardConfirm(fmt.Sprintf("Remove %q?", g.Title), &yes).Run(); err != nil {
					return err
				}
				if !yes {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			if err := app.Goals.DeleteGoal(ctx, goalID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed goal %s [%s]\n", g.Title, g.DisplayID())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return cmd
}

func newGoalImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Create goals and milestones from a JSON or YAML plan",
		Long: `Create goals and milestones from a plan file.

The whole file is validated before anything is written. Each goal is then
created together with its milestones.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			plan, err := importer.LoadPlan(args[0])
			if err != nil {
				return fmt.Errorf("loading plan file: %w", err)
			}
			if errs := importer.ValidatePlan(plan); len(errs) > 0 {
				return planErrors(errs)
			}

			out := cmd.OutOrStdout()
			for _, entry := range plan.Goals {
				in, milestones, err := importer.Convert(entry)
				if err != nil {
					return err
				}
				g, err := app.Goals.ImportGoal(ctx, in, milestones)
				if err != nil {
					return fmt.Errorf("importing %q: %w", entry.Title, err)
				}
				fmt.Fprintf(out, "  %s %s %s\n",
					formatter.StyleGreen.Render("+"),
					formatter.Dim(g.DisplayID()),
					g.Title)
			}
			fmt.Fprintf(out, "Imported %d goal(s)\n", len(plan.Goals))
			return nil
		},
	}
}

func planErrors(errs []error) error {
	lines := make([]string, len(errs))
	for i, err := range errs {
		lines[i] = "  - " + err.Error()
	}
	return fmt.Errorf("%w: plan file has %d problem(s):\n%s", domain.ErrValidation, len(errs), strings.Join(lines, "\n"))
}
