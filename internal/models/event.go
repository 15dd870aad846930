package models

// NoteEvent represents a note activity event published to Kafka.
type NoteEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) when the event occurred.
	UserID    string `json:"user_id"`   // UserID is the identifier of the note's author.
	NoteID    string `json:"note_id"`   // NoteID is the identifier of the affected note.
	Action    string `json:"action"`    // Action describes the event type, e.g. "created", "updated", or "deleted".
}
