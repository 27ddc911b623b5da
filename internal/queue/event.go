// Package queue defines message payloads exchanged over the message broker
// and the background consumer that drains them.
package queue

// Note activity actions carried in NoteEvent.Action.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// NoteEvent is published whenever a note is created, updated or deleted.
// It carries enough information for downstream consumers to log or trigger
// analytics without querying the primary database.
type NoteEvent struct {
	Action     string `json:"action"`
	NoteID     uint64 `json:"note_id"`
	UserID     uint64 `json:"user_id"`
	Title      string `json:"title,omitempty"`
	OccurredAt string `json:"occurred_at"`
}
