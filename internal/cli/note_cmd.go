package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/journey/internal/cli/formatter"
	"github.com/alexanderramin/journey/internal/domain"
	"github.com/alexanderramin/journey/internal/service"
	"github.com/spf13/cobra"
)

func newNoteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Capture reflections, ideas, problems and lessons",
	}

	cmd.AddCommand(
		newNoteAddCmd(app),
		newNoteListCmd(app),
	)

	return cmd
}

func newNoteAddCmd(app *App) *cobra.Command {
	var attach []string
	noteType := noteTypeFlag{v: domain.NoteReflection}
	impact := noteImpactFlag{v: domain.ImpactNeutral}

	cmd := &cobra.Command{
		Use:   "add GOAL CONTENT",
		Short: "Add a note to a goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			goalID, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}

			// Payloads are uploaded before the note exists. A failed note
			// leaves orphaned blobs, which the memory store drops on exit.
			var refs []domain.AttachmentRef
			for _, path := range attach {
				ref, err := uploadFile(cmd, app, path)
				if err != nil {
					return err
				}
				refs = append(refs, ref)
			}

			n, err := app.Goals.AddNote(ctx, goalID, service.NoteInput{
				Content:     args[1],
				Attachments: refs,
				Type:        noteType.v,
				Impact:      impact.v,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s note", n.Type)
			if len(n.Attachments) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), " with %d attachment(s)", len(n.Attachments))
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().Var(&noteType, "type", "Note type ("+noteTypeChoices()+")")
	cmd.Flags().Var(&impact, "impact", "Impact ("+noteImpactChoices()+")")
	cmd.Flags().StringArrayVar(&attach, "attach", nil, "File to attach (repeatable)")

	return cmd
}

func uploadFile(cmd *cobra.Command, app *App, path string) (domain.AttachmentRef, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.AttachmentRef{}, fmt.Errorf("opening attachment: %w", err)
	}
	defer f.Close()
	return app.Attachments.Upload(cmd.Context(), path, f)
}

func newNoteListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list [GOAL]",
		Short: "List notes, for one goal or across all goals",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			notes, err := app.Insights.Notes(ctx)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				goalID, err := resolveGoalID(ctx, app, args[0])
				if err != nil {
					return err
				}
				filtered := notes[:0]
				for _, n := range notes {
					if n.GoalID == goalID {
						filtered = append(filtered, n)
					}
				}
				notes = filtered
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatNotesFeed(notes, app.now()))
			return nil
		},
	}
}
