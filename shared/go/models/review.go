package models

import "time"

// Review is a user's review of a place. ReviewID and Timestamp are assigned
// server-side on insert. Liked is derived on the client from the viewer's
// liked-set and is not persisted.
type Review struct {
	ID        string    `json:"_id,omitempty"`
	ReviewID  string    `json:"review_id,omitempty"`
	PlaceID   int64     `json:"place_id"`
	PlaceName string    `json:"place_name,omitempty"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Likes     int       `json:"likes"`
	Rating    int       `json:"rating"`
	Liked     bool      `json:"liked,omitempty"`
	Edited    bool      `json:"edited,omitempty"`
	User      *User     `json:"user,omitempty"`
}
