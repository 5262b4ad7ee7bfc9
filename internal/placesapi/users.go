package placesapi

import (
	"context"
	"net/http"

	"placehound/shared/go/models"
)

type updateProfileRequest struct {
	UserID   string `json:"user_id"`
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// UpdateProfile changes the user's display fields. A taken username comes
// back as an *APIError with the backend's message.
func (c *Client) UpdateProfile(ctx context.Context, userID, fullName, email, username string) error {
	return c.do(ctx, http.MethodPut, "api/update-user-profile", nil, updateProfileRequest{
		UserID:   userID,
		FullName: fullName,
		Email:    email,
		Username: username,
	}, nil)
}

type changePasswordRequest struct {
	UserID          string `json:"user_id"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangePassword verifies the current password server-side and replaces it.
func (c *Client) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	return c.do(ctx, http.MethodPut, "api/change-password", nil, changePasswordRequest{
		UserID:          userID,
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
	}, nil)
}

// DeleteAccount removes the user and all of their reviews.
func (c *Client) DeleteAccount(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, "api/delete-user-account/"+userID, nil, nil, nil)
}

// UserByID fetches another user's public profile.
func (c *Client) UserByID(ctx context.Context, userID string) (models.User, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodGet, "api/users/"+userID, nil, nil, &resp); err != nil {
		return models.User{}, err
	}
	return convertUser(resp)
}
