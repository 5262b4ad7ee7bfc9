package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"placehound/internal/app/profile"
	"placehound/internal/view"
)

func newProfileCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and manage your account",
	}
	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileUpdateCmd(app),
		newProfilePasswdCmd(app),
		newProfileDeleteCmd(app),
	)
	return cmd
}

func newProfileShowCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the logged in user's profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := profile.New(app.api, app.tokens, profile.WithLogger(app.log.Zerolog()))
			if err := ctrl.Load(cmd.Context()); err != nil {
				return fmt.Errorf("%s", errStyle.Render(ctrl.Err()))
			}
			user := ctrl.User()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(user.FullName))
			fmt.Fprintf(out, "Username: %s\n", user.Username)
			fmt.Fprintf(out, "Email:    %s\n", user.Email)
			fmt.Fprintf(out, "Role:     %s\n", user.Role)
			fmt.Fprintf(out, "Photo:    %s\n", view.ProfilePhotoName(user.Gender))
			fmt.Fprintf(out, "Liked reviews: %d\n", len(user.LikedReviews))
			fmt.Fprintf(out, "Places added:  %d\n", len(user.Places))
			return nil
		},
	}
}

func newProfileUpdateCmd(app *appContext) *cobra.Command {
	var fullName, email, username string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := profile.New(app.api, app.tokens, profile.WithLogger(app.log.Zerolog()))
			if err := ctrl.Load(cmd.Context()); err != nil {
				return err
			}
			user := ctrl.User()
			if fullName == "" {
				fullName = user.FullName
			}
			if email == "" {
				email = user.Email
			}
			if username == "" {
				username = user.Username
			}
			if err := ctrl.Update(cmd.Context(), fullName, email, username); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile updated")
			return nil
		},
	}
	cmd.Flags().StringVar(&fullName, "fullname", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&username, "username", "", "username")
	return cmd
}

func newProfilePasswdCmd(app *appContext) *cobra.Command {
	var current, next string

	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change the account password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if current == "" {
				if current, err = promptPassword(cmd, "Current password: "); err != nil {
					return err
				}
			}
			if next == "" {
				if next, err = promptPassword(cmd, "New password: "); err != nil {
					return err
				}
			}
			ctrl := profile.New(app.api, app.tokens, profile.WithLogger(app.log.Zerolog()))
			if err := ctrl.Load(cmd.Context()); err != nil {
				return err
			}
			if err := ctrl.ChangePassword(cmd.Context(), current, next); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Password changed")
			return nil
		},
	}
	cmd.Flags().StringVar(&current, "current", "", "current password")
	cmd.Flags().StringVar(&next, "new", "", "new password")
	return cmd
}

func newProfileDeleteCmd(app *appContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the account and end the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete the account without --yes")
			}
			ctrl := profile.New(app.api, app.tokens, profile.WithLogger(app.log.Zerolog()))
			if err := ctrl.Load(cmd.Context()); err != nil {
				return err
			}
			if err := ctrl.DeleteAccount(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Account deleted")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion")
	return cmd
}
