package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check backend and database connectivity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if err := app.api.ServerStatus(cmd.Context()); err != nil {
				fmt.Fprintf(out, "server:   %s\n", errStyle.Render("down"))
				return err
			}
			fmt.Fprintln(out, "server:   ok")

			if err := app.api.DatabaseStatus(cmd.Context()); err != nil {
				fmt.Fprintf(out, "database: %s\n", errStyle.Render("down"))
				return err
			}
			fmt.Fprintln(out, "database: ok")
			return nil
		},
	}
}
