// Package profile drives the account screen: viewing and editing the logged
// in user's details, changing the password, and deleting the account.
package profile

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"placehound/internal/app"
	"placehound/internal/placesapi"
	"placehound/internal/session"
	"placehound/shared/go/models"
)

// Controller holds the profile screen state.
type Controller struct {
	api    placesapi.API
	tokens session.Store
	log    zerolog.Logger

	mu     sync.Mutex
	state  app.State
	errMsg string
	user   models.User
}

// Option configures a Controller.
type Option func(*Controller)

func WithLogger(log zerolog.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// New creates an idle profile controller. The session store is needed so
// account deletion can clear the now-dangling token.
func New(api placesapi.API, tokens session.Store, opts ...Option) *Controller {
	c := &Controller{
		api:    api,
		tokens: tokens,
		log:    zerolog.Nop(),
		state:  app.StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load resolves the current session's user. An unauthorized result means the
// screen should redirect to login; the error is passed through untouched so
// the caller can errors.Is it.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	c.state = app.StateLoading
	c.mu.Unlock()

	user, err := c.api.LoggedInUser(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.log.Error().Err(err).Msg("load profile")
		c.state = app.StateError
		c.errMsg = err.Error()
		return err
	}
	c.user = user
	c.state = app.StateReady
	c.errMsg = ""
	return nil
}

// Update pushes new display fields and refreshes the local copy on success.
func (c *Controller) Update(ctx context.Context, fullName, email, username string) error {
	c.mu.Lock()
	userID := c.user.ID
	c.mu.Unlock()
	if userID == "" {
		return fmt.Errorf("profile not loaded: %w", placesapi.ErrUnauthorized)
	}

	if err := c.api.UpdateProfile(ctx, userID, fullName, email, username); err != nil {
		c.log.Error().Err(err).Msg("update profile")
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.user.FullName = fullName
	c.user.Email = email
	c.user.Username = username
	return nil
}

// ChangePassword verifies and replaces the password server-side.
func (c *Controller) ChangePassword(ctx context.Context, current, next string) error {
	c.mu.Lock()
	userID := c.user.ID
	c.mu.Unlock()
	if userID == "" {
		return fmt.Errorf("profile not loaded: %w", placesapi.ErrUnauthorized)
	}

	if err := c.api.ChangePassword(ctx, userID, current, next); err != nil {
		c.log.Error().Err(err).Msg("change password")
		return err
	}
	return nil
}

// DeleteAccount removes the account and its reviews, then clears the session
// token, which no longer refers to anything.
func (c *Controller) DeleteAccount(ctx context.Context) error {
	c.mu.Lock()
	userID := c.user.ID
	c.mu.Unlock()
	if userID == "" {
		return fmt.Errorf("profile not loaded: %w", placesapi.ErrUnauthorized)
	}

	if err := c.api.DeleteAccount(ctx, userID); err != nil {
		c.log.Error().Err(err).Msg("delete account")
		return err
	}
	if err := c.tokens.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = models.User{}
	c.state = app.StateIdle
	return nil
}

// User returns the loaded profile.
func (c *Controller) User() models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
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
