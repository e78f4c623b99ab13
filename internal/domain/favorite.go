package domain

import "time"

// Favorite is a user-event association marking interest, independent of
// registration.
type Favorite struct {
	UserID  int       `json:"user_id"`
	EventID int       `json:"event_id"`
	AddedAt time.Time `json:"added_at"`
}
