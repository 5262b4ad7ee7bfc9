package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"placehound/internal/app/places"
	"placehound/internal/view"
	"placehound/shared/go/models"
)

func newPlacesCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "places",
		Short: "Browse and manage the places directory",
	}
	cmd.AddCommand(
		newPlacesListCmd(app),
		newPlacesCategoriesCmd(),
		newPlacesAddCmd(app),
		newPlacesDeleteCmd(app),
	)
	return cmd
}

func newPlacesListCmd(app *appContext) *cobra.Command {
	var (
		sortKey    string
		search     string
		categories []string
		page       int
		pageSize   int
		details    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List places with optional sort, search, and category filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := places.New(app.api,
				places.WithPageSize(pageSize),
				places.WithLogger(app.log.Zerolog()),
			)

			if err := ctrl.SortBy(cmd.Context(), sortKey); err != nil {
				return fmt.Errorf("%s", errStyle.Render(ctrl.Err()))
			}
			for _, category := range categories {
				if err := ctrl.ToggleCategory(cmd.Context(), category); err != nil {
					return fmt.Errorf("%s", errStyle.Render(ctrl.Err()))
				}
			}
			if search != "" {
				if err := ctrl.Search(cmd.Context(), search); err != nil {
					return fmt.Errorf("%s", errStyle.Render(ctrl.Err()))
				}
			}

			ctrl.GoToPage(page - 1)

			out := cmd.OutOrStdout()
			for _, place := range ctrl.Page() {
				fmt.Fprintln(out, renderPlace(place, details))
			}
			fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf(
				"page %d/%d · %d places · categories: %v",
				ctrl.PageIndex()+1, ctrl.PageCount(), len(ctrl.Places()), ctrl.ActiveCategories(),
			)))
			return nil
		},
	}
	cmd.Flags().StringVar(&sortKey, "sort", "site_name", "sort key: site_name or rating")
	cmd.Flags().StringVar(&search, "search", "", "free-text name search")
	cmd.Flags().StringArrayVar(&categories, "category", nil, "category filter (repeatable)")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", places.DefaultPageSize, "places per page")
	cmd.Flags().BoolVar(&details, "details", false, "show the full detail projection")
	return cmd
}

func newPlacesCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the available place categories",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, category := range view.Categories() {
				fmt.Fprintln(cmd.OutOrStdout(), category)
			}
		},
	}
}

func newPlacesAddCmd(app *appContext) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a place from a JSON file (admin only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read place file: %w", err)
			}
			var place models.Place
			if err := json.Unmarshal(data, &place); err != nil {
				return fmt.Errorf("parse place file: %w", err)
			}

			placeID, err := app.api.AddPlace(cmd.Context(), place)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added place #%d\n", placeID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file describing the place")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newPlacesDeleteCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <place_id>",
		Short: "Delete a place (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			placeID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid place id %q", args[0])
			}
			if err := app.api.DeletePlace(cmd.Context(), placeID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted place #%d\n", placeID)
			return nil
		},
	}
}
