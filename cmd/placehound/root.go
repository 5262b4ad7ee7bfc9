package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"placehound/internal/placesapi"
	"placehound/internal/session"
	"placehound/shared/go/config"
	"placehound/shared/go/logging"
)

// appContext carries the wired-up client stack into every subcommand.
type appContext struct {
	cfg    *config.Config
	log    *logging.Logger
	tokens session.Store
	api    placesapi.API
}

func newRootCmd() *cobra.Command {
	app := &appContext{}

	root := &cobra.Command{
		Use:           "placehound",
		Short:         "Browse places and reviews from the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			log := logging.New(logging.Config{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
			})
			logging.SetGlobalLogger(log)

			tokens, err := session.NewFileStore(cfg.Session.TokenPath)
			if err != nil {
				return fmt.Errorf("open session store: %w", err)
			}

			app.cfg = cfg
			app.log = log
			app.tokens = tokens
			app.api = placesapi.New(cfg.API.BaseURL, tokens,
				placesapi.WithTimeout(cfg.API.Timeout),
				placesapi.WithLogger(log.Zerolog()),
			)
			return nil
		},
	}

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newSignupCmd(app),
		newPlacesCmd(app),
		newReviewsCmd(app),
		newReviewCmd(app),
		newProfileCmd(app),
		newHealthCmd(app),
	)
	return root
}
