package profile

import (
	"context"
	"errors"
	"testing"

	"placehound/internal/app"
	"placehound/internal/placesapi"
	"placehound/internal/session"
	"placehound/shared/go/models"
)

// stubAPI implements only the calls the controller makes; anything else
// panics through the embedded nil interface.
type stubAPI struct {
	placesapi.API
	loggedInUserFn   func(ctx context.Context) (models.User, error)
	updateProfileFn  func(ctx context.Context, userID, fullName, email, username string) error
	changePasswordFn func(ctx context.Context, userID, current, next string) error
	deleteAccountFn  func(ctx context.Context, userID string) error
}

func (s *stubAPI) LoggedInUser(ctx context.Context) (models.User, error) {
	return s.loggedInUserFn(ctx)
}

func (s *stubAPI) UpdateProfile(ctx context.Context, userID, fullName, email, username string) error {
	return s.updateProfileFn(ctx, userID, fullName, email, username)
}

func (s *stubAPI) ChangePassword(ctx context.Context, userID, current, next string) error {
	return s.changePasswordFn(ctx, userID, current, next)
}

func (s *stubAPI) DeleteAccount(ctx context.Context, userID string) error {
	return s.deleteAccountFn(ctx, userID)
}

func loadedController(t *testing.T, api *stubAPI) (*Controller, *session.MemoryStore) {
	t.Helper()
	tokens := session.NewMemoryStore()
	tokens.SetToken("jwt-token")
	c := New(api, tokens)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return c, tokens
}

func testUser() models.User {
	return models.User{
		ID:       "user-1",
		FullName: "Ana Example",
		Username: "ana",
		Email:    "ana@example.org",
	}
}

func TestLoad(t *testing.T) {
	api := &stubAPI{
		loggedInUserFn: func(ctx context.Context) (models.User, error) { return testUser(), nil },
	}
	c, _ := loadedController(t, api)

	if c.State() != app.StateReady {
		t.Errorf("state = %v, want ready", c.State())
	}
	if c.User().ID != "user-1" {
		t.Errorf("user = %+v", c.User())
	}
}

func TestLoadUnauthorized(t *testing.T) {
	api := &stubAPI{
		loggedInUserFn: func(ctx context.Context) (models.User, error) {
			return models.User{}, &placesapi.APIError{Status: 401, Message: "token missing"}
		},
	}
	c := New(api, session.NewMemoryStore())

	err := c.Load(context.Background())
	if !errors.Is(err, placesapi.ErrUnauthorized) {
		t.Fatalf("Load() error = %v, want ErrUnauthorized", err)
	}
	if c.State() != app.StateError {
		t.Errorf("state = %v, want error", c.State())
	}
}

func TestUpdate(t *testing.T) {
	var gotID string
	api := &stubAPI{
		loggedInUserFn: func(ctx context.Context) (models.User, error) { return testUser(), nil },
		updateProfileFn: func(ctx context.Context, userID, fullName, email, username string) error {
			gotID = userID
			return nil
		},
	}
	c, _ := loadedController(t, api)

	if err := c.Update(context.Background(), "Ana B. Example", "ana.b@example.org", "anab"); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if gotID != "user-1" {
		t.Errorf("update sent for user %q", gotID)
	}
	user := c.User()
	if user.FullName != "Ana B. Example" || user.Email != "ana.b@example.org" || user.Username != "anab" {
		t.Errorf("local copy not refreshed: %+v", user)
	}
}

func TestUpdateFailureKeepsLocalCopy(t *testing.T) {
	updateErr := errors.New("email taken")
	api := &stubAPI{
		loggedInUserFn: func(ctx context.Context) (models.User, error) { return testUser(), nil },
		updateProfileFn: func(ctx context.Context, userID, fullName, email, username string) error {
			return updateErr
		},
	}
	c, _ := loadedController(t, api)

	if err := c.Update(context.Background(), "X", "x@example.org", "x"); !errors.Is(err, updateErr) {
		t.Fatalf("Update() error = %v, want %v", err, updateErr)
	}
	if c.User().FullName != "Ana Example" {
		t.Errorf("local copy mutated on failure: %+v", c.User())
	}
}

func TestOperationsRequireLoadedProfile(t *testing.T) {
	c := New(&stubAPI{}, session.NewMemoryStore())

	if err := c.Update(context.Background(), "X", "x@example.org", "x"); !errors.Is(err, placesapi.ErrUnauthorized) {
		t.Errorf("Update() error = %v, want ErrUnauthorized", err)
	}
	if err := c.ChangePassword(context.Background(), "old", "new"); !errors.Is(err, placesapi.ErrUnauthorized) {
		t.Errorf("ChangePassword() error = %v, want ErrUnauthorized", err)
	}
	if err := c.DeleteAccount(context.Background()); !errors.Is(err, placesapi.ErrUnauthorized) {
		t.Errorf("DeleteAccount() error = %v, want ErrUnauthorized", err)
	}
}

func TestChangePassword(t *testing.T) {
	var gotCurrent, gotNext string
	api := &stubAPI{
		loggedInUserFn: func(ctx context.Context) (models.User, error) { return testUser(), nil },
		changePasswordFn: func(ctx context.Context, userID, current, next string) error {
			gotCurrent, gotNext = current, next
			return nil
		},
	}
	c, _ := loadedController(t, api)

	if err := c.ChangePassword(context.Background(), "old-secret", "new-secret"); err != nil {
		t.Fatalf("ChangePassword() error = %v", err)
	}
	if gotCurrent != "old-secret" || gotNext != "new-secret" {
		t.Errorf("passwords sent = %q/%q", gotCurrent, gotNext)
	}
}

func TestDeleteAccount(t *testing.T) {
	var deletedID string
	api := &stubAPI{
		loggedInUserFn: func(ctx context.Context) (models.User, error) { return testUser(), nil },
		deleteAccountFn: func(ctx context.Context, userID string) error {
			deletedID = userID
			return nil
		},
	}
	c, tokens := loadedController(t, api)

	if err := c.DeleteAccount(context.Background()); err != nil {
		t.Fatalf("DeleteAccount() error = %v", err)
	}
	if deletedID != "user-1" {
		t.Errorf("deleted user %q", deletedID)
	}
	if tokens.Token() != "" {
		t.Errorf("session survived account deletion: %q", tokens.Token())
	}
	if c.User().ID != "" || c.State() != app.StateIdle {
		t.Errorf("controller not reset: user=%+v state=%v", c.User(), c.State())
	}
}

func TestDeleteAccountFailureKeepsSession(t *testing.T) {
	deleteErr := errors.New("backend down")
	api := &stubAPI{
		loggedInUserFn: func(ctx context.Context) (models.User, error) { return testUser(), nil },
		deleteAccountFn: func(ctx context.Context, userID string) error { return deleteErr },
	}
	c, tokens := loadedController(t, api)

	if err := c.DeleteAccount(context.Background()); !errors.Is(err, deleteErr) {
		t.Fatalf("DeleteAccount() error = %v, want %v", err, deleteErr)
	}
	if tokens.Token() == "" {
		t.Error("session cleared despite failed deletion")
	}
	if c.User().ID != "user-1" {
		t.Error("profile reset despite failed deletion")
	}
}
