package models

// Gender selects which stock profile photo a user gets.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// FeedbackType is the two-valued like signal sent with review feedback.
type FeedbackType string

const (
	FeedbackLike    FeedbackType = "Like"
	FeedbackDislike FeedbackType = "Dislike"
)

// User represents an account as the backend reports it. Password is
// write-only: it is sent on signup and never returned by the server.
type User struct {
	ID           string   `json:"user_id,omitempty"`
	Role         string   `json:"role,omitempty"`
	FullName     string   `json:"fullname"`
	Gender       Gender   `json:"gender,omitempty"`
	Username     string   `json:"username"`
	Password     string   `json:"password,omitempty"`
	Email        string   `json:"email"`
	ProfilePhoto string   `json:"profile_photo,omitempty"`
	LikedReviews []string `json:"liked_reviews,omitempty"`
	Places       []string `json:"places,omitempty"`
}

// HasLiked reports membership of a review in the user's liked-set.
func (u User) HasLiked(reviewID string) bool {
	if reviewID == "" {
		return false
	}
	for _, id := range u.LikedReviews {
		if id == reviewID {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == "admin"
}
