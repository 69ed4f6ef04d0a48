package models

import "time"

// Message is a single stored prompt/response exchange owned by exactly one
// user. Records are immutable after creation; the only mutation is deletion
// when the owner clears their history.
type Message struct {
	// ID is the server-generated unique identifier of the message.
	// Assigned by the repository on first save.
	ID string `json:"id"`

	// UserID references the owning user. Every message belongs to exactly
	// one user; there are no shared or orphaned messages.
	UserID string `json:"-"`

	// Prompt is the text the user sent to the assistant.
	Prompt string `json:"prompt"`

	// Response is the assistant's reply. When the completion API call fails,
	// this holds the synthesized error text instead of a genuine answer.
	Response string `json:"response"`

	// Timestamp is the server clock at creation time.
	Timestamp time.Time `json:"timestamp"`
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "messages"
}
