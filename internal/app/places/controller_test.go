package places

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"placehound/internal/app"
	"placehound/internal/placesapi"
	"placehound/internal/view"
	"placehound/shared/go/models"
)

// stubAPI implements only the calls the controller makes; anything else
// panics through the embedded nil interface.
type stubAPI struct {
	placesapi.API
	placesFn func(ctx context.Context, q placesapi.PlaceQuery) ([]models.Place, error)
	deleteFn func(ctx context.Context, placeID int64) error
}

func (s *stubAPI) Places(ctx context.Context, q placesapi.PlaceQuery) ([]models.Place, error) {
	return s.placesFn(ctx, q)
}

func (s *stubAPI) DeletePlace(ctx context.Context, placeID int64) error {
	return s.deleteFn(ctx, placeID)
}

func fixedPlaces(n int) []models.Place {
	places := make([]models.Place, 0, n)
	for i := 1; i <= n; i++ {
		places = append(places, models.Place{
			PlaceID:  int64(i),
			SiteName: fmt.Sprintf("Place %d", i),
		})
	}
	return places
}

func TestRefresh(t *testing.T) {
	var gotQuery placesapi.PlaceQuery
	api := &stubAPI{placesFn: func(ctx context.Context, q placesapi.PlaceQuery) ([]models.Place, error) {
		gotQuery = q
		return []models.Place{{PlaceID: 1, SiteName: "One", ShowDetails: true}}, nil
	}}
	c := New(api)

	if c.State() != app.StateIdle {
		t.Fatalf("initial state = %v, want idle", c.State())
	}
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if c.State() != app.StateReady {
		t.Errorf("state = %v, want ready", c.State())
	}
	if gotQuery.Sort != "site_name" {
		t.Errorf("default sort = %q, want site_name", gotQuery.Sort)
	}
	if c.Places()[0].ShowDetails {
		t.Error("ShowDetails not reset on refresh")
	}
}

func TestRefreshExpandsAllCategory(t *testing.T) {
	var gotQuery placesapi.PlaceQuery
	api := &stubAPI{placesFn: func(ctx context.Context, q placesapi.PlaceQuery) ([]models.Place, error) {
		gotQuery = q
		return nil, nil
	}}
	c := New(api)

	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	wantCount := len(view.Categories()) - 1
	if len(gotQuery.Categories) != wantCount {
		t.Fatalf("request categories = %v, want all %d concrete", gotQuery.Categories, wantCount)
	}
	for _, category := range gotQuery.Categories {
		if category == view.CategoryAll {
			t.Errorf("synthetic %q leaked into the request", view.CategoryAll)
		}
	}
}

func TestRefreshError(t *testing.T) {
	fetchErr := errors.New("backend down")
	api := &stubAPI{placesFn: func(ctx context.Context, q placesapi.PlaceQuery) ([]models.Place, error) {
		return nil, fetchErr
	}}
	c := New(api)

	if err := c.Refresh(context.Background()); !errors.Is(err, fetchErr) {
		t.Fatalf("Refresh() error = %v, want %v", err, fetchErr)
	}
	if c.State() != app.StateError {
		t.Errorf("state = %v, want error", c.State())
	}
	if c.Err() != "backend down" {
		t.Errorf("Err() = %q", c.Err())
	}

	api.placesFn = func(ctx context.Context, q placesapi.PlaceQuery) ([]models.Place, error) {
		return nil, nil
	}
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if c.Err() != "" {
		t.Errorf("error message survived recovery: %q", c.Err())
	}
}

func TestToggleCategory(t *testing.T) {
	tests := []struct {
		name   string
		active []string
		toggle string
		want   []string
	}{
		{"all when only is a no-op", []string{"All"}, "All", []string{"All"}},
		{"all collapses the set", []string{"attraction", "open spaces"}, "All", []string{"All"}},
		{"concrete replaces all", []string{"All"}, "attraction", []string{"attraction"}},
		{"concrete appends", []string{"attraction"}, "open spaces", []string{"attraction", "open spaces"}},
		{"reselect removes", []string{"attraction", "open spaces"}, "attraction", []string{"open spaces"}},
		{"empty resets to all", []string{"attraction"}, "attraction", []string{"All"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &stubAPI{placesFn: func(ctx context.Context, q placesapi.PlaceQuery) ([]models.Place, error) {
				return nil, nil
			}}
			c := New(api)
			c.active = append([]string(nil), tt.active...)

			if err := c.ToggleCategory(context.Background(), tt.toggle); err != nil {
				t.Fatalf("ToggleCategory() error = %v", err)
			}
			if got := c.ActiveCategories(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("active = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToggleCategoryRefetches(t *testing.T) {
	calls := 0
	api := &stubAPI{placesFn: func(ctx context.Context, q placesapi.PlaceQuery) ([]models.Place, error) {
		calls++
		return nil, nil
	}}
	c := New(api)

	if err := c.ToggleCategory(context.Background(), "attraction"); err != nil {
		t.Fatalf("ToggleCategory() error = %v", err)
	}
	if calls != 1 {
		t.Errorf("fetches = %d, want 1", calls)
	}
}

func TestSearchAndSort(t *testing.T) {
	var gotQuery placesapi.PlaceQuery
	api := &stubAPI{placesFn: func(ctx context.Context, q placesapi.PlaceQuery) ([]models.Place, error) {
		gotQuery = q
		return nil, nil
	}}
	c := New(api)

	if err := c.Search(context.Background(), "garden"); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if gotQuery.Search != "garden" {
		t.Errorf("search = %q, want garden", gotQuery.Search)
	}

	if err := c.SortBy(context.Background(), "rating"); err != nil {
		t.Fatalf("SortBy() error = %v", err)
	}
	if gotQuery.Sort != "rating" {
		t.Errorf("sort = %q, want rating", gotQuery.Sort)
	}
	if gotQuery.Search != "garden" {
		t.Errorf("search lost across sort: %q", gotQuery.Search)
	}
}

func TestPagination(t *testing.T) {
	api := &stubAPI{placesFn: func(ctx context.Context, q placesapi.PlaceQuery) ([]models.Place, error) {
		return fixedPlaces(45), nil
	}}
	c := New(api)

	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	if got := c.PageCount(); got != 3 {
		t.Fatalf("PageCount() = %d, want 3", got)
	}
	if got := len(c.Page()); got != 20 {
		t.Errorf("first page size = %d, want 20", got)
	}

	c.GoToPage(2)
	page := c.Page()
	if len(page) != 5 {
		t.Errorf("last page size = %d, want 5", len(page))
	}
	if page[0].PlaceID != 41 {
		t.Errorf("last page starts at %d, want 41", page[0].PlaceID)
	}

	c.NextPage()
	if c.PageIndex() != 2 {
		t.Errorf("NextPage past the end moved to %d", c.PageIndex())
	}
	c.GoToPage(99)
	if c.PageIndex() != 2 {
		t.Errorf("GoToPage(99) = %d, want clamp to 2", c.PageIndex())
	}
	c.GoToPage(-1)
	if c.PageIndex() != 0 {
		t.Errorf("GoToPage(-1) = %d, want clamp to 0", c.PageIndex())
	}
	c.PrevPage()
	if c.PageIndex() != 0 {
		t.Errorf("PrevPage past the start moved to %d", c.PageIndex())
	}
}

func TestPaginationEmptyList(t *testing.T) {
	api := &stubAPI{placesFn: func(ctx context.Context, q placesapi.PlaceQuery) ([]models.Place, error) {
		return nil, nil
	}}
	c := New(api)

	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if got := c.PageCount(); got != 1 {
		t.Errorf("PageCount() = %d, want 1", got)
	}
	if got := c.Page(); got != nil {
		t.Errorf("Page() = %v, want nil", got)
	}
}

func TestRefreshResetsPageIndex(t *testing.T) {
	api := &stubAPI{placesFn: func(ctx context.Context, q placesapi.PlaceQuery) ([]models.Place, error) {
		return fixedPlaces(45), nil
	}}
	c := New(api)

	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	c.GoToPage(2)
	if err := c.Search(context.Background(), "garden"); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if c.PageIndex() != 0 {
		t.Errorf("page index = %d after filter change, want 0", c.PageIndex())
	}
}

func TestDelete(t *testing.T) {
	var deleted int64
	fetches := 0
	api := &stubAPI{
		placesFn: func(ctx context.Context, q placesapi.PlaceQuery) ([]models.Place, error) {
			fetches++
			return nil, nil
		},
		deleteFn: func(ctx context.Context, placeID int64) error {
			deleted = placeID
			return nil
		},
	}
	c := New(api)

	if err := c.Delete(context.Background(), 7); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if deleted != 7 {
		t.Errorf("deleted = %d, want 7", deleted)
	}
	if fetches != 1 {
		t.Errorf("fetches after delete = %d, want 1", fetches)
	}
}

func TestDeleteFailureSkipsRefresh(t *testing.T) {
	deleteErr := errors.New("forbidden")
	fetches := 0
	api := &stubAPI{
		placesFn: func(ctx context.Context, q placesapi.PlaceQuery) ([]models.Place, error) {
			fetches++
			return nil, nil
		},
		deleteFn: func(ctx context.Context, placeID int64) error {
			return deleteErr
		},
	}
	c := New(api)

	if err := c.Delete(context.Background(), 7); !errors.Is(err, deleteErr) {
		t.Fatalf("Delete() error = %v, want %v", err, deleteErr)
	}
	if fetches != 0 {
		t.Errorf("refreshed after failed delete: %d fetches", fetches)
	}
}

func TestToggleDetails(t *testing.T) {
	api := &stubAPI{placesFn: func(ctx context.Context, q placesapi.PlaceQuery) ([]models.Place, error) {
		return fixedPlaces(2), nil
	}}
	c := New(api)

	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if !c.ToggleDetails(1) {
		t.Error("first toggle should show details")
	}
	if c.ToggleDetails(1) {
		t.Error("second toggle should hide details")
	}
	if c.ToggleDetails(99) {
		t.Error("unknown place toggled")
	}
}
