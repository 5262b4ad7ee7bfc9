// Package reviews drives the review screens (the global latest feed, a single
// place's feed, and a user's own or liked feed) through one controller with a
// mode switch.
package reviews

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"placehound/internal/app"
	"placehound/internal/placesapi"
	"placehound/shared/go/models"
)

// Mode selects which feed the controller loads.
type Mode string

const (
	// ModeLatest is the global feed of newest reviews.
	ModeLatest Mode = "latest"
	// ModePlace is one place's feed with reviewer details joined in.
	ModePlace Mode = "place"
	// ModeMine is the subject user's own reviews.
	ModeMine Mode = "mine"
	// ModeLiked is the subject user's liked-set; its contract is "reviews I
	// currently like", so a successful dislike removes the row.
	ModeLiked Mode = "liked"
)

// Draft is the reusable add/edit form state. The target identifier lives
// separately in the controller so the same draft serves insert and update.
type Draft struct {
	Text   string
	Rating int
}

// Controller holds one review screen's state.
type Controller struct {
	api placesapi.API
	log zerolog.Logger

	mode    Mode
	placeID int64
	subject string // user whose feed is shown in mine/liked modes

	mu        sync.Mutex
	state     app.State
	errMsg    string
	viewer    models.User
	reviews   []models.Review
	draft     Draft
	editingID string
}

// Option configures a Controller.
type Option func(*Controller)

func WithLogger(log zerolog.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// NewLatest creates a controller over the global feed.
func NewLatest(api placesapi.API, opts ...Option) *Controller {
	return newController(api, ModeLatest, opts)
}

// NewForPlace creates a controller over a single place's feed.
func NewForPlace(api placesapi.API, placeID int64, opts ...Option) *Controller {
	c := newController(api, ModePlace, opts)
	c.placeID = placeID
	return c
}

// NewForUser creates a controller over a user's own or liked reviews.
func NewForUser(api placesapi.API, userID string, liked bool, opts ...Option) *Controller {
	mode := ModeMine
	if liked {
		mode = ModeLiked
	}
	c := newController(api, mode, opts)
	c.subject = userID
	return c
}

func newController(api placesapi.API, mode Mode, opts []Option) *Controller {
	c := &Controller{
		api:   api,
		log:   zerolog.Nop(),
		mode:  mode,
		state: app.StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load fetches the viewer and the feed. In the latest and place modes an
// unauthenticated viewer is tolerated (the feed still renders, nothing is
// likeable); in the mine/liked modes a missing subject is an error.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	c.state = app.StateLoading
	c.mu.Unlock()

	viewer, err := c.loadViewer(ctx)
	if err != nil {
		return c.fail(err)
	}

	feed, err := c.fetchFeed(ctx)
	if err != nil {
		return c.fail(err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.viewer = viewer
	c.reviews = deriveLiked(feed, viewer, c.mode)
	c.state = app.StateReady
	c.errMsg = ""
	return nil
}

func (c *Controller) loadViewer(ctx context.Context) (models.User, error) {
	switch c.mode {
	case ModeMine, ModeLiked:
		if c.subject == "" {
			return models.User{}, fmt.Errorf("user feed requires a user id: %w", placesapi.ErrInvalidArgument)
		}
		return c.api.UserByID(ctx, c.subject)
	default:
		viewer, err := c.api.LoggedInUser(ctx)
		if err != nil {
			if errors.Is(err, placesapi.ErrUnauthorized) {
				return models.User{}, nil
			}
			return models.User{}, err
		}
		return viewer, nil
	}
}

func (c *Controller) fetchFeed(ctx context.Context) ([]models.Review, error) {
	switch c.mode {
	case ModeLatest:
		return c.api.LatestReviews(ctx)
	case ModePlace:
		return c.api.ReviewsWithUserDetails(ctx, c.placeID)
	case ModeMine:
		return c.api.MyReviews(ctx, c.subject)
	case ModeLiked:
		return c.api.ReviewsLikedBy(ctx, c.subject)
	}
	return nil, fmt.Errorf("unknown feed mode %q: %w", c.mode, placesapi.ErrInvalidArgument)
}

// deriveLiked stamps the not-persisted liked flag: membership of the review
// in the viewer's liked-set, or always true on the liked tab.
func deriveLiked(feed []models.Review, viewer models.User, mode Mode) []models.Review {
	for i := range feed {
		if mode == ModeLiked {
			feed[i].Liked = true
		} else {
			feed[i].Liked = viewer.HasLiked(feed[i].ReviewID)
		}
	}
	return feed
}

func (c *Controller) fail(err error) error {
	c.log.Error().Err(err).Str("mode", string(c.mode)).Msg("load reviews")
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = app.StateError
	c.errMsg = err.Error()
	return err
}

// ToggleLike flips a review's liked flag and counter locally, pushes the
// feedback, and rolls both back if the push fails. On the liked tab a
// successful dislike also drops the row, keeping the tab's contract.
func (c *Controller) ToggleLike(ctx context.Context, reviewID string) error {
	c.mu.Lock()
	idx := c.indexLocked(reviewID)
	if idx < 0 {
		c.mu.Unlock()
		return fmt.Errorf("review %s not loaded: %w", reviewID, placesapi.ErrNotFound)
	}

	review := &c.reviews[idx]
	review.Liked = !review.Liked
	feedback := models.FeedbackDislike
	delta := -1
	if review.Liked {
		feedback = models.FeedbackLike
		delta = 1
	}
	review.Likes += delta
	c.applyLikedSetLocked(reviewID, review.Liked)
	viewerID := c.viewer.ID
	c.mu.Unlock()

	if err := c.api.PushReviewFeedback(ctx, reviewID, viewerID, feedback); err != nil {
		c.log.Error().Err(err).Str("review_id", reviewID).Msg("push feedback")
		c.mu.Lock()
		defer c.mu.Unlock()
		if idx := c.indexLocked(reviewID); idx >= 0 {
			c.reviews[idx].Liked = !c.reviews[idx].Liked
			c.reviews[idx].Likes -= delta
			c.applyLikedSetLocked(reviewID, c.reviews[idx].Liked)
		}
		return err
	}

	if c.mode == ModeLiked && feedback == models.FeedbackDislike {
		c.mu.Lock()
		defer c.mu.Unlock()
		if idx := c.indexLocked(reviewID); idx >= 0 {
			c.reviews = append(c.reviews[:idx], c.reviews[idx+1:]...)
		}
	}
	return nil
}

// applyLikedSetLocked keeps the viewer's local liked-set in step with the
// optimistic flip so later derivations agree with it.
func (c *Controller) applyLikedSetLocked(reviewID string, liked bool) {
	if liked {
		if !c.viewer.HasLiked(reviewID) {
			c.viewer.LikedReviews = append(c.viewer.LikedReviews, reviewID)
		}
		return
	}
	out := c.viewer.LikedReviews[:0]
	for _, id := range c.viewer.LikedReviews {
		if id != reviewID {
			out = append(out, id)
		}
	}
	c.viewer.LikedReviews = out
}

// BeginEdit copies a loaded review's fields into the draft and records the
// target identifier, so Submit performs an update.
func (c *Controller) BeginEdit(reviewID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexLocked(reviewID)
	if idx < 0 {
		return fmt.Errorf("review %s not loaded: %w", reviewID, placesapi.ErrNotFound)
	}
	c.draft = Draft{
		Text:   c.reviews[idx].Text,
		Rating: c.reviews[idx].Rating,
	}
	c.editingID = reviewID
	return nil
}

// CancelEdit discards the draft and the edit target.
func (c *Controller) CancelEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = Draft{}
	c.editingID = ""
}

// SetDraft replaces the form fields.
func (c *Controller) SetDraft(d Draft) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = d
}

// Submit sends the draft: with an edit target it updates, otherwise it
// inserts. Either way the feed is re-fetched afterwards: the server assigns
// the review identifier, so the local echo is not trusted.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.draft.Text == "" {
		c.mu.Unlock()
		return fmt.Errorf("review text is required: %w", placesapi.ErrInvalidArgument)
	}
	placeID := c.placeID
	if idx := c.indexLocked(c.editingID); idx >= 0 {
		placeID = c.reviews[idx].PlaceID
	}
	review := models.Review{
		ReviewID:  c.editingID,
		PlaceID:   placeID,
		Text:      c.draft.Text,
		Rating:    c.draft.Rating,
		Timestamp: time.Now().UTC(),
		UserID:    c.viewer.ID,
	}
	editing := c.editingID != ""
	c.mu.Unlock()

	var err error
	if editing {
		err = c.api.UpdateReview(ctx, review)
	} else {
		err = c.api.AddReview(ctx, review)
	}
	if err != nil {
		c.log.Error().Err(err).Bool("editing", editing).Msg("submit review")
		return err
	}

	c.mu.Lock()
	c.draft = Draft{}
	c.editingID = ""
	c.mu.Unlock()

	return c.Load(ctx)
}

// Delete removes the review server-side, then drops it from the local list.
func (c *Controller) Delete(ctx context.Context, reviewID string) error {
	if err := c.api.DeleteReview(ctx, reviewID); err != nil {
		c.log.Error().Err(err).Str("review_id", reviewID).Msg("delete review")
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if idx := c.indexLocked(reviewID); idx >= 0 {
		c.reviews = append(c.reviews[:idx], c.reviews[idx+1:]...)
	}
	return nil
}

func (c *Controller) indexLocked(reviewID string) int {
	for i := range c.reviews {
		if c.reviews[i].ReviewID == reviewID {
			return i
		}
	}
	return -1
}

// Reviews returns a copy of the loaded feed.
func (c *Controller) Reviews() []models.Review {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Review(nil), c.reviews...)
}

// Viewer returns the resolved viewer (zero value when unauthenticated).
func (c *Controller) Viewer() models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewer
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

// Draft returns the current form state.
func (c *Controller) Draft() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// EditingID returns the update target, empty when the draft is an insert.
func (c *Controller) EditingID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editingID
}
