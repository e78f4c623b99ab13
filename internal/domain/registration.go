package domain

// Registration statuses as the backend uses them.
const (
	RegistrationStatusConfirmed = "confirmed"
	RegistrationStatusPending   = "pending"
	RegistrationStatusCancelled = "cancelled"
)

// Registration is a user-event association representing intent to attend
// (an "inscription" in the backend's vocabulary).
type Registration struct {
	ID      int    `json:"id"`
	UserID  int    `json:"user_id"`
	EventID int    `json:"event_id"`
	Status  string `json:"status"`
}
