package cli

import (
	"fmt"

	"github.com/alexanderramin/journey/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage your profile",
	}

	cmd.AddCommand(
		newProfileSetCmd(app),
		newProfileShowCmd(app),
		newProfileLogoutCmd(app),
	)

	return cmd
}

func newProfileSetCmd(app *App) *cobra.Command {
	var name, bio, avatar string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or edit your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			current, ok, err := app.Profiles.Current(ctx)
			if err != nil {
				return err
			}

			// Unchanged flags keep the stored values.
			n, b, a := name, bio, avatar
			if ok {
				if !cmd.Flags().Changed("name") {
					n = current.Name
				}
				if !cmd.Flags().Changed("bio") {
					b = current.Bio
				}
				if !cmd.Flags().Changed("avatar") {
					a = current.Avatar
				}
			}

			if !cmd.Flags().Changed("name") && app.interactive() {
				if err := wizardProfile(&n, &b, &a).Run(); err != nil {
					return err
				}
			}

			u, err := app.Profiles.Save(ctx, n, b, a)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved profile for %s\n", u.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&bio, "bio", "", "Short bio")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Avatar URL")

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, ok, err := app.Profiles.Current(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No profile yet. Create one with 'journey profile set'.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(u, app.now()))
			return nil
		},
	}
}

func newProfileLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear your profile. Goals are kept",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Profiles.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}
