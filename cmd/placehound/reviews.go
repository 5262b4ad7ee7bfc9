package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"placehound/internal/app/reviews"
)

func newReviewsCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Browse review feeds",
	}
	cmd.AddCommand(
		newReviewsLatestCmd(app),
		newReviewsPlaceCmd(app),
		newReviewsMineCmd(app),
		newReviewsLikedCmd(app),
	)
	return cmd
}

func printFeed(cmd *cobra.Command, ctrl *reviews.Controller) error {
	if err := ctrl.Load(cmd.Context()); err != nil {
		return fmt.Errorf("%s", errStyle.Render(ctrl.Err()))
	}
	for _, review := range ctrl.Reviews() {
		fmt.Fprintln(cmd.OutOrStdout(), renderReview(review))
	}
	return nil
}

func newReviewsLatestCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "latest",
		Short: "Show the global feed of newest reviews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printFeed(cmd, reviews.NewLatest(app.api, reviews.WithLogger(app.log.Zerolog())))
		},
	}
}

func newReviewsPlaceCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "place <place_id>",
		Short: "Show one place's reviews with reviewer details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			placeID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid place id %q", args[0])
			}
			return printFeed(cmd, reviews.NewForPlace(app.api, placeID, reviews.WithLogger(app.log.Zerolog())))
		},
	}
}

// viewerID resolves the logged in user's id for the mine/liked feeds.
func viewerID(ctx context.Context, app *appContext) (string, error) {
	user, err := app.api.LoggedInUser(ctx)
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

func newReviewsMineCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "Show your own reviews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := viewerID(cmd.Context(), app)
			if err != nil {
				return err
			}
			return printFeed(cmd, reviews.NewForUser(app.api, userID, false, reviews.WithLogger(app.log.Zerolog())))
		},
	}
}

func newReviewsLikedCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "liked",
		Short: "Show the reviews you currently like",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := viewerID(cmd.Context(), app)
			if err != nil {
				return err
			}
			return printFeed(cmd, reviews.NewForUser(app.api, userID, true, reviews.WithLogger(app.log.Zerolog())))
		},
	}
}

func newReviewCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Write, edit, like, and delete reviews",
	}
	cmd.AddCommand(
		newReviewAddCmd(app),
		newReviewEditCmd(app),
		newReviewLikeCmd(app),
		newReviewDeleteCmd(app),
	)
	return cmd
}

func newReviewAddCmd(app *appContext) *cobra.Command {
	var (
		placeID int64
		text    string
		rating  int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Post a review for a place",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := reviews.NewForPlace(app.api, placeID, reviews.WithLogger(app.log.Zerolog()))
			if err := ctrl.Load(cmd.Context()); err != nil {
				return err
			}
			ctrl.SetDraft(reviews.Draft{Text: text, Rating: rating})
			if err := ctrl.Submit(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Review posted")
			return nil
		},
	}
	cmd.Flags().Int64Var(&placeID, "place", 0, "place id")
	cmd.Flags().StringVar(&text, "text", "", "review text")
	cmd.Flags().IntVar(&rating, "rating", 0, "rating 0-5")
	_ = cmd.MarkFlagRequired("place")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}

// placeFeedFor loads the feed containing the given review so the edit and
// like flows can work on loaded state, the way the screens do.
func placeFeedFor(ctx context.Context, app *appContext, reviewID string) (*reviews.Controller, error) {
	review, err := app.api.ReviewByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	ctrl := reviews.NewForPlace(app.api, review.PlaceID, reviews.WithLogger(app.log.Zerolog()))
	if err := ctrl.Load(ctx); err != nil {
		return nil, err
	}
	return ctrl, nil
}

func newReviewEditCmd(app *appContext) *cobra.Command {
	var (
		text   string
		rating int
	)

	cmd := &cobra.Command{
		Use:   "edit <review_id>",
		Short: "Edit one of your reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := placeFeedFor(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := ctrl.BeginEdit(args[0]); err != nil {
				return err
			}
			draft := ctrl.Draft()
			if text != "" {
				draft.Text = text
			}
			if cmd.Flags().Changed("rating") {
				draft.Rating = rating
			}
			ctrl.SetDraft(draft)
			if err := ctrl.Submit(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Review updated")
			return nil
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "replacement text")
	cmd.Flags().IntVar(&rating, "rating", 0, "replacement rating 0-5")
	return cmd
}

func newReviewLikeCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "like <review_id>",
		Short: "Toggle your like on a review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := placeFeedFor(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := ctrl.ToggleLike(cmd.Context(), args[0]); err != nil {
				return err
			}
			for _, review := range ctrl.Reviews() {
				if review.ReviewID == args[0] {
					fmt.Fprintln(cmd.OutOrStdout(), renderReview(review))
				}
			}
			return nil
		},
	}
}

func newReviewDeleteCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <review_id>",
		Short: "Delete one of your reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.api.DeleteReview(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Review deleted")
			return nil
		},
	}
}
