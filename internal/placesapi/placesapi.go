// Package placesapi is the single gateway to the placehound backend. Every
// endpoint is wrapped behind one method; no other package issues raw network
// calls.
package placesapi

import (
	"context"

	"placehound/shared/go/models"
)

// PlaceQuery carries the optional filters for the place listing. Zero values
// mean "no filter"; an empty query returns the full set.
type PlaceQuery struct {
	// Sort is a server-side sort key: "site_name" (ascending) or
	// "rating" (descending).
	Sort string

	// Search is a free-text, case-insensitive match on the place name.
	Search string

	// Categories filters to places tagged with all of the given categories.
	Categories []string
}

// API defines the backend operations available to the view controllers.
type API interface {
	// Session
	Login(ctx context.Context, username, password string) (models.User, error)
	Logout(ctx context.Context) error
	Signup(ctx context.Context, user models.User) error
	LoggedInUser(ctx context.Context) (models.User, error)

	// Places
	Places(ctx context.Context, q PlaceQuery) ([]models.Place, error)
	AddPlace(ctx context.Context, place models.Place) (int64, error)
	DeletePlace(ctx context.Context, placeID int64) error

	// Reviews
	LatestReviews(ctx context.Context) ([]models.Review, error)
	ReviewsForPlace(ctx context.Context, placeID int64) ([]models.Review, error)
	ReviewsWithUserDetails(ctx context.Context, placeID int64) ([]models.Review, error)
	MyReviews(ctx context.Context, userID string) ([]models.Review, error)
	ReviewsLikedBy(ctx context.Context, userID string) ([]models.Review, error)
	ReviewByID(ctx context.Context, reviewID string) (models.Review, error)
	AddReview(ctx context.Context, review models.Review) error
	UpdateReview(ctx context.Context, review models.Review) error
	DeleteReview(ctx context.Context, reviewID string) error
	PushReviewFeedback(ctx context.Context, reviewID, userID string, feedback models.FeedbackType) error

	// Profile
	UpdateProfile(ctx context.Context, userID, fullName, email, username string) error
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	DeleteAccount(ctx context.Context, userID string) error
	UserByID(ctx context.Context, userID string) (models.User, error)

	// Health
	DatabaseStatus(ctx context.Context) error
	ServerStatus(ctx context.Context) error
}
