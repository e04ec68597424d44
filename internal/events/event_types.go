package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered  EventType = "user_registered"
	EventReviewSubmitted EventType = "review_submitted"
	EventReviewDeleted   EventType = "review_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     string      `json:"actor"`
	ISBN      string      `json:"isbn,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// ReviewSubmittedPayload payload.
type ReviewSubmittedPayload struct {
	ReviewPreview string `json:"review_preview"`
}
