package models

import "testing"

func TestHasLiked(t *testing.T) {
	user := User{LikedReviews: []string{"rev-1", "rev-2"}}

	if !user.HasLiked("rev-1") {
		t.Error("rev-1 should be liked")
	}
	if user.HasLiked("rev-3") {
		t.Error("rev-3 should not be liked")
	}
	if (User{}).HasLiked("rev-1") {
		t.Error("empty liked-set reported a like")
	}
}

func TestIsAdmin(t *testing.T) {
	if !(User{Role: "admin"}).IsAdmin() {
		t.Error("admin role not recognised")
	}
	if (User{Role: "user"}).IsAdmin() {
		t.Error("user role treated as admin")
	}
}
