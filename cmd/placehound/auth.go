package main

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"placehound/internal/session"
	"placehound/internal/view"
	"placehound/shared/go/models"
)

func promptPassword(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func newLoginCmd(app *appContext) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Log in and persist the session token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				var err error
				if password, err = promptPassword(cmd, "Password: "); err != nil {
					return err
				}
			}

			user, err := app.api.Login(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", args[0], user.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	return cmd
}

func newLogoutCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the persisted token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.api.Logout(cmd.Context()); err != nil {
				// The local token is gone either way; the server may
				// just not know about the logout.
				app.log.Error(err, "server logout failed")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session's user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token := app.tokens.Token()
			if session.Expired(token, time.Now()) {
				return fmt.Errorf("no valid session; run `placehound login`")
			}

			user, err := app.api.LoggedInUser(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (@%s)\n", user.FullName, user.Username)
			fmt.Fprintf(out, "  id:    %s\n", user.ID)
			fmt.Fprintf(out, "  email: %s\n", user.Email)
			if user.Role != "" {
				fmt.Fprintf(out, "  role:  %s\n", user.Role)
			}
			if claims, err := session.Inspect(token); err == nil && !claims.Expiry.IsZero() {
				fmt.Fprintf(out, "  session expires: %s\n", claims.Expiry.Local().Format(time.RFC1123))
			}
			return nil
		},
	}
}

func newSignupCmd(app *appContext) *cobra.Command {
	var (
		fullName string
		email    string
		password string
		gender   string
	)

	cmd := &cobra.Command{
		Use:   "signup <username>",
		Short: "Create a new account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user := models.User{
				FullName:     fullName,
				Username:     args[0],
				Password:     password,
				Email:        email,
				Role:         "user",
				ProfilePhoto: view.ProfilePhotoName(models.Gender(gender)),
			}
			if err := app.api.Signup(cmd.Context(), user); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Account created; run `placehound login` to sign in")
			return nil
		},
	}
	cmd.Flags().StringVar(&fullName, "fullname", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password")
	cmd.Flags().StringVar(&gender, "gender", "", "Male, Female, or Other (picks the avatar)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
