package placesapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"placehound/shared/go/models"
)

// reviewResponse is the review document shape shared by every review
// endpoint. Rating travels as a float (the backend converts from Decimal128)
// and the denormalized feeds flatten the reviewer into user_name /
// user_profile_photo, while the per-place join nests a full user object.
type reviewResponse struct {
	ID        string  `json:"_id"`
	ReviewID  string  `json:"review_id"`
	PlaceID   int64   `json:"place_id"`
	PlaceName string  `json:"place_name"`
	UserID    string  `json:"user_id"`
	Text      string  `json:"text"`
	Timestamp string  `json:"timestamp"`
	Likes     int     `json:"likes"`
	Rating    float64 `json:"rating"`
	Edited    bool    `json:"edited"`

	UserName         string `json:"user_name"`
	UserProfilePhoto string `json:"user_profile_photo"`

	User *userResponse `json:"user"`
}

// parseTimestamp tolerates the two formats seen on the wire; a timestamp the
// client cannot read is zeroed, not rejected, since the server assigns it.
func parseTimestamp(raw string) time.Time {
	for _, layout := range []string{time.RFC3339, time.RFC1123} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	return time.Time{}
}

func convertReview(rr reviewResponse) (models.Review, error) {
	if rr.ReviewID == "" {
		return models.Review{}, fmt.Errorf("review missing review_id: %w", ErrBadResponse)
	}

	review := models.Review{
		ID:        rr.ID,
		ReviewID:  rr.ReviewID,
		PlaceID:   rr.PlaceID,
		PlaceName: rr.PlaceName,
		UserID:    rr.UserID,
		Text:      rr.Text,
		Timestamp: parseTimestamp(rr.Timestamp),
		Likes:     rr.Likes,
		Rating:    int(rr.Rating),
		Edited:    rr.Edited,
	}

	switch {
	case rr.User != nil:
		user, err := convertUser(*rr.User)
		if err != nil {
			return models.Review{}, err
		}
		review.User = &user
	case rr.UserName != "":
		review.User = &models.User{
			ID:           rr.UserID,
			FullName:     rr.UserName,
			ProfilePhoto: rr.UserProfilePhoto,
		}
	}
	return review, nil
}

func convertReviews(rrs []reviewResponse) ([]models.Review, error) {
	reviews := make([]models.Review, 0, len(rrs))
	for _, rr := range rrs {
		review, err := convertReview(rr)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}

func (c *Client) fetchReviews(ctx context.Context, path string) ([]models.Review, error) {
	var resp []reviewResponse
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return convertReviews(resp)
}

// LatestReviews returns the global feed, newest first, with the reviewer's
// name and photo denormalized in.
func (c *Client) LatestReviews(ctx context.Context) ([]models.Review, error) {
	return c.fetchReviews(ctx, "api/reviews")
}

// ReviewsForPlace returns the raw reviews of one place.
func (c *Client) ReviewsForPlace(ctx context.Context, placeID int64) ([]models.Review, error) {
	return c.fetchReviews(ctx, fmt.Sprintf("api/places/%d/reviews", placeID))
}

// ReviewsWithUserDetails returns a place's reviews with each reviewer's
// profile joined in server-side, so callers avoid one request per review.
func (c *Client) ReviewsWithUserDetails(ctx context.Context, placeID int64) ([]models.Review, error) {
	return c.fetchReviews(ctx, fmt.Sprintf("api/places/%d/reviews-with-user-details", placeID))
}

// MyReviews returns the reviews written by the given user.
func (c *Client) MyReviews(ctx context.Context, userID string) ([]models.Review, error) {
	return c.fetchReviews(ctx, "api/myreviews/"+userID)
}

// ReviewsLikedBy returns the reviews currently in the user's liked-set.
func (c *Client) ReviewsLikedBy(ctx context.Context, userID string) ([]models.Review, error) {
	return c.fetchReviews(ctx, "api/liked-reviews/"+userID)
}

// ReviewByID fetches a single review.
func (c *Client) ReviewByID(ctx context.Context, reviewID string) (models.Review, error) {
	var resp reviewResponse
	if err := c.do(ctx, http.MethodGet, "api/profile/reviews/"+reviewID, nil, nil, &resp); err != nil {
		return models.Review{}, err
	}
	return convertReview(resp)
}

type reviewRequest struct {
	ReviewID  string `json:"review_id,omitempty"`
	PlaceID   int64  `json:"place_id"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
	Likes     int    `json:"likes"`
	Rating    int    `json:"rating"`
	UserID    string `json:"user_id"`
}

func newReviewRequest(review models.Review) reviewRequest {
	ts := review.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	return reviewRequest{
		ReviewID:  review.ReviewID,
		PlaceID:   review.PlaceID,
		Text:      review.Text,
		Timestamp: ts.Format(time.RFC3339),
		Likes:     review.Likes,
		Rating:    review.Rating,
		UserID:    review.UserID,
	}
}

// AddReview inserts a review. The server assigns the review identifier, so
// callers re-fetch the feed rather than trust the local echo.
func (c *Client) AddReview(ctx context.Context, review models.Review) error {
	return c.do(ctx, http.MethodPost, "api/add-review", nil, newReviewRequest(review), nil)
}

// UpdateReview replaces a review's fields; the server marks it edited.
func (c *Client) UpdateReview(ctx context.Context, review models.Review) error {
	if review.ReviewID == "" {
		return fmt.Errorf("update review: missing review id: %w", ErrInvalidArgument)
	}
	return c.do(ctx, http.MethodPut, "api/update-review", nil, newReviewRequest(review), nil)
}

// DeleteReview removes a review.
func (c *Client) DeleteReview(ctx context.Context, reviewID string) error {
	return c.do(ctx, http.MethodDelete, "api/delete-review/"+reviewID, nil, nil, nil)
}

type feedbackRequest struct {
	ReviewID string              `json:"review_id"`
	Feedback models.FeedbackType `json:"feedback"`
	UserID   string              `json:"user_id"`
}

// PushReviewFeedback sends a Like or Dislike for a review. Any empty argument
// fails with ErrInvalidArgument before a network call is attempted.
func (c *Client) PushReviewFeedback(ctx context.Context, reviewID, userID string, feedback models.FeedbackType) error {
	if reviewID == "" || userID == "" || feedback == "" {
		return fmt.Errorf("review feedback requires review id, user id, and feedback: %w", ErrInvalidArgument)
	}
	return c.do(ctx, http.MethodPut, "api/user-review-feedback", nil, feedbackRequest{
		ReviewID: reviewID,
		Feedback: feedback,
		UserID:   userID,
	}, nil)
}
