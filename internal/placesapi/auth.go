package placesapi

import (
	"context"
	"fmt"
	"net/http"

	"placehound/shared/go/models"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

type signupRequest struct {
	FullName     string `json:"fullname"`
	Role         string `json:"role"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	Email        string `json:"email"`
	ProfilePhoto string `json:"profile_photo"`
}

// userResponse mirrors the user document as the backend serialises it.
type userResponse struct {
	UserID       string   `json:"user_id"`
	Role         string   `json:"role"`
	FullName     string   `json:"fullname"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	ProfilePhoto string   `json:"profile_photo"`
	LikedReviews []string `json:"liked_reviews"`
	Places       []string `json:"places"`
}

func convertUser(ur userResponse) (models.User, error) {
	if ur.UserID == "" {
		return models.User{}, fmt.Errorf("user missing user_id: %w", ErrBadResponse)
	}
	return models.User{
		ID:           ur.UserID,
		Role:         ur.Role,
		FullName:     ur.FullName,
		Username:     ur.Username,
		Email:        ur.Email,
		ProfilePhoto: ur.ProfilePhoto,
		LikedReviews: ur.LikedReviews,
		Places:       ur.Places,
	}, nil
}

// Login exchanges credentials for a bearer token. On success the token is
// persisted in the session store and the returned User carries the
// server-assigned identifier; the full profile comes from LoggedInUser.
func (c *Client) Login(ctx context.Context, username, password string) (models.User, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "api/login", nil, loginRequest{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		return models.User{}, err
	}
	if resp.Token == "" {
		return models.User{}, fmt.Errorf("login missing token: %w", ErrBadResponse)
	}
	if err := c.tokens.SetToken(resp.Token); err != nil {
		return models.User{}, fmt.Errorf("persist token: %w", err)
	}
	return models.User{ID: resp.UserID, Username: username}, nil
}

// Logout tells the backend to blacklist the token, then clears the persisted
// token regardless of the server's answer.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodGet, "api/logout", nil, nil, nil)
	if clearErr := c.tokens.Clear(); clearErr != nil && err == nil {
		err = clearErr
	}
	return err
}

// Signup registers a new account. Conflicts (such as a duplicate email)
// surface as an *APIError carrying the backend's validation message.
func (c *Client) Signup(ctx context.Context, user models.User) error {
	return c.do(ctx, http.MethodPost, "api/signup", nil, signupRequest{
		FullName:     user.FullName,
		Role:         user.Role,
		Username:     user.Username,
		Password:     user.Password,
		Email:        user.Email,
		ProfilePhoto: user.ProfilePhoto,
	}, nil)
}

// LoggedInUser resolves the current session's user. A missing, expired, or
// blacklisted token comes back as ErrUnauthorized, which callers treat as
// "not logged in".
func (c *Client) LoggedInUser(ctx context.Context) (models.User, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodGet, "api/logged-in-user", nil, nil, &resp); err != nil {
		return models.User{}, err
	}
	return convertUser(resp)
}
