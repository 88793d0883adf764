package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newAttachmentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attachment",
		Short: "Retrieve note attachments",
	}

	var out string
	open := &cobra.Command{
		Use:   "open ID",
		Short: "Write an attachment's content to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, ok, err := app.Attachments.Open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Attachment content is no longer available. Only its name and size were kept.")
				return nil
			}

			path := out
			if path == "" {
				path = b.Name
			}
			if err := os.WriteFile(path, b.Data, 0o644); err != nil {
				return fmt.Errorf("writing attachment: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s, %d bytes)\n", path, b.MimeType, b.Size())
			return nil
		},
	}
	open.Flags().StringVarP(&out, "out", "o", "", "Output path (defaults to the original file name)")

	cmd.AddCommand(open)
	return cmd
}
