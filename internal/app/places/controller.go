// Package places holds the view state behind the place directory screen:
// the fetched list, the active filters, and the client-side page window.
package places

import (
	"context"
	"math"
	"sync"

	"github.com/rs/zerolog"

	"placehound/internal/app"
	"placehound/internal/placesapi"
	"placehound/internal/view"
	"placehound/shared/go/models"
)

// DefaultPageSize is the directory screen's page window.
const DefaultPageSize = 20

// Controller drives the place list. It re-fetches from the server on every
// filter mutation and keeps only disposable copies; pagination is a pure
// window over the already-fetched slice.
type Controller struct {
	api placesapi.API
	log zerolog.Logger

	mu        sync.Mutex
	state     app.State
	errMsg    string
	places    []models.Place
	pageSize  int
	pageIndex int

	sortOrder  string
	searchTerm string
	active     []string
}

// Option configures a Controller.
type Option func(*Controller)

func WithPageSize(size int) Option {
	return func(c *Controller) {
		if size > 0 {
			c.pageSize = size
		}
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// New creates an idle controller with the "All" category active.
func New(api placesapi.API, opts ...Option) *Controller {
	c := &Controller{
		api:       api,
		log:       zerolog.Nop(),
		state:     app.StateIdle,
		pageSize:  DefaultPageSize,
		sortOrder: "site_name",
		active:    []string{view.CategoryAll},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Refresh re-fetches the list with the current filters. The detail flags are
// re-derived hidden and the window snaps back to the first page.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.state = app.StateLoading
	query := placesapi.PlaceQuery{
		Sort:       c.sortOrder,
		Search:     c.searchTerm,
		Categories: c.requestCategoriesLocked(),
	}
	c.mu.Unlock()

	places, err := c.api.Places(ctx, query)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.log.Error().Err(err).Msg("fetch places")
		c.state = app.StateError
		c.errMsg = err.Error()
		return err
	}
	for i := range places {
		places[i].ShowDetails = false
	}
	c.places = places
	c.pageIndex = 0
	c.state = app.StateReady
	c.errMsg = ""
	return nil
}

// requestCategoriesLocked expands an active {All} into every concrete
// category, since the server has no special case for "All".
func (c *Controller) requestCategoriesLocked() []string {
	if !contains(c.active, view.CategoryAll) {
		return append([]string(nil), c.active...)
	}
	var concrete []string
	for _, category := range view.Categories() {
		if category != view.CategoryAll {
			concrete = append(concrete, category)
		}
	}
	return concrete
}

// ToggleCategory mutates the active category set and re-fetches.
// Precedence: selecting "All" collapses the set to {All}; a concrete
// category replaces an active "All"; re-selecting a concrete category
// removes it; an empty result resets to {All}.
func (c *Controller) ToggleCategory(ctx context.Context, category string) error {
	c.mu.Lock()
	switch {
	case category == view.CategoryAll && len(c.active) == 1 && c.active[0] == view.CategoryAll:
		// Already the only selection.
	case category == view.CategoryAll:
		c.active = []string{view.CategoryAll}
	case contains(c.active, view.CategoryAll):
		c.active = []string{category}
	case contains(c.active, category):
		c.active = remove(c.active, category)
	default:
		c.active = append(c.active, category)
	}
	if len(c.active) == 0 {
		c.active = []string{view.CategoryAll}
	}
	c.mu.Unlock()

	return c.Refresh(ctx)
}

// Search sets the free-text term and re-fetches.
func (c *Controller) Search(ctx context.Context, term string) error {
	c.mu.Lock()
	c.searchTerm = term
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// SortBy sets the server-side sort key and re-fetches.
func (c *Controller) SortBy(ctx context.Context, key string) error {
	c.mu.Lock()
	c.sortOrder = key
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// Delete issues the admin delete and re-fetches on success.
func (c *Controller) Delete(ctx context.Context, placeID int64) error {
	if err := c.api.DeletePlace(ctx, placeID); err != nil {
		c.log.Error().Err(err).Int64("place_id", placeID).Msg("delete place")
		return err
	}
	return c.Refresh(ctx)
}

// ToggleDetails flips one place's detail flag and returns the new value.
func (c *Controller) ToggleDetails(placeID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.places {
		if c.places[i].PlaceID == placeID {
			c.places[i].ShowDetails = !c.places[i].ShowDetails
			return c.places[i].ShowDetails
		}
	}
	return false
}

// State returns the current lifecycle state.
func (c *Controller) State() app.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err returns the user-visible error message, empty outside StateError.
func (c *Controller) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// ActiveCategories returns a copy of the active category set.
func (c *Controller) ActiveCategories() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.active...)
}

// Places returns a copy of the full fetched list.
func (c *Controller) Places() []models.Place {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Place(nil), c.places...)
}

// Page returns the current window of the fetched list.
func (c *Controller) Page() []models.Place {
	c.mu.Lock()
	defer c.mu.Unlock()
	start := c.pageIndex * c.pageSize
	if start >= len(c.places) {
		return nil
	}
	end := start + c.pageSize
	if end > len(c.places) {
		end = len(c.places)
	}
	return append([]models.Place(nil), c.places[start:end]...)
}

// PageCount is ceil(total / pageSize); an empty list still has one page.
func (c *Controller) PageCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pageCountLocked()
}

func (c *Controller) pageCountLocked() int {
	count := int(math.Ceil(float64(len(c.places)) / float64(c.pageSize)))
	if count < 1 {
		count = 1
	}
	return count
}

// PageIndex returns the current zero-based page.
func (c *Controller) PageIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pageIndex
}

// GoToPage clamps the target into [0, lastPage] and moves there.
func (c *Controller) GoToPage(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	last := c.pageCountLocked() - 1
	if index < 0 {
		index = 0
	}
	if index > last {
		index = last
	}
	c.pageIndex = index
}

// NextPage advances one page, clamped at the last.
func (c *Controller) NextPage() {
	c.mu.Lock()
	index := c.pageIndex + 1
	c.mu.Unlock()
	c.GoToPage(index)
}

// PrevPage steps back one page, clamped at the first.
func (c *Controller) PrevPage() {
	c.mu.Lock()
	index := c.pageIndex - 1
	c.mu.Unlock()
	c.GoToPage(index)
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

func remove(list []string, value string) []string {
	out := list[:0]
	for _, item := range list {
		if item != value {
			out = append(out, item)
		}
	}
	return out
}
