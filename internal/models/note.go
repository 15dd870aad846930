package models

import (
	"time"

	"github.com/google/uuid"
)

// NoteDB represents a note record in the database.
// A note belongs to exactly one author and is never visible to anyone else.
type NoteDB struct {
	NoteID    uuid.UUID `json:"id" db:"note_id"`            // Primary key
	AuthorID  uuid.UUID `json:"-" db:"author_id"`           // Owner of the note, set at creation
	Title     string    `json:"title" db:"title"`           // Optional title, may be empty
	Content   string    `json:"content" db:"content"`       // Note body, never empty
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp, immutable
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Refreshed on every mutation
}
