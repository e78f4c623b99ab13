package domain

import "time"

// Event statuses as the backend uses them. The set is open; the client never
// rejects an unknown status.
const (
	EventStatusActive    = "active"
	EventStatusCancelled = "cancelled"
	EventStatusCompleted = "completed"
	EventStatusPending   = "pending"
)

// Event represents an event as owned by the backend. The client only
// transports it; all invariants are enforced server-side.
type Event struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Location        string    `json:"location"`
	Date            time.Time `json:"date"`
	MaxParticipants *int      `json:"max_participants,omitempty"`
	Price           *float64  `json:"price,omitempty"`
	ImageURL        string    `json:"image_url,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// EventInput is the payload for creating or updating an event, i.e. an Event
// minus the server-assigned fields.
type EventInput struct {
	Name            string
	Description     string
	Category        string
	Location        string
	Date            time.Time
	MaxParticipants *int
	Price           *float64
	ImageURL        string
}
