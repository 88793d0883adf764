package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/journey/internal/report"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export goal reports",
	}

	var out string
	pdf := &cobra.Command{
		Use:   "pdf GOAL",
		Short: "Export a goal summary as PDF",
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

			path := out
			if path == "" {
				path = fmt.Sprintf("goal-%s.pdf", g.DisplayID())
			}
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating report: %w", err)
			}
			if err := report.WriteGoalPDF(f, g, app.now()); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	pdf.Flags().StringVarP(&out, "out", "o", "", "Output path")

	cmd.AddCommand(pdf)
	return cmd
}
