package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/notes-service/internal/logger"
	"github.com/sbilibin2017/notes-service/internal/models"
	"github.com/sbilibin2017/notes-service/internal/validation"
)

var (
	// ErrNoteNotFound is returned when the note does not exist or belongs to
	// another user. The two cases are deliberately indistinguishable.
	ErrNoteNotFound = errors.New("note not found")
)

// NoteReader defines read operations over a user's own notes.
type NoteReader interface {
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.NoteDB, error)                // Returns all notes of the author, updated_at descending
	GetByIDAndAuthor(ctx context.Context, noteID, authorID uuid.UUID) (*models.NoteDB, error)    // Returns the note only if owned by the author
	Search(ctx context.Context, authorID uuid.UUID, query string) ([]models.NoteDB, error)       // Case-insensitive substring search over title and content
}

// NoteWriter defines write operations over a user's own notes.
type NoteWriter interface {
	Save(ctx context.Context, authorID uuid.UUID, title, content string) (*models.NoteDB, error)            // Creates a note for the author
	Update(ctx context.Context, noteID, authorID uuid.UUID, title, content string) (*models.NoteDB, error)  // Overwrites title/content of an owned note
	Delete(ctx context.Context, noteID, authorID uuid.UUID) (bool, error)                                   // Removes an owned note
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// NotesService handles ownership-scoped note operations and activity
// event publishing.
type NotesService struct {
	readRepo    NoteReader
	writeRepo   NoteWriter
	kafkaWriter KafkaWriter
}

// NewNotesService creates a new NotesService.
func NewNotesService(readRepo NoteReader, writeRepo NoteWriter, kafkaWriter KafkaWriter) *NotesService {
	return &NotesService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a note activity event to Kafka.
func (s *NotesService) publishEvent(ctx context.Context, userID, noteID uuid.UUID, action string) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "note_id", noteID, "action", action)
		return
	}

	event := models.NoteEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID.String(),
		NoteID:    noteID.String(),
		Action:    action,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal note event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.NoteID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish note event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Note event published to Kafka", "event_id", event.EventID, "action", action)
	}
}

// List returns all of the user's notes, most recently touched first.
func (s *NotesService) List(ctx context.Context, userID uuid.UUID) ([]models.NoteDB, error) {
	notes, err := s.readRepo.ListByAuthor(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list notes", "userID", userID, "error", err)
		return nil, err
	}
	return notes, nil
}

// Get returns a single note owned by the user.
func (s *NotesService) Get(ctx context.Context, userID, noteID uuid.UUID) (*models.NoteDB, error) {
	note, err := s.readRepo.GetByIDAndAuthor(ctx, noteID, userID)
	if err != nil {
		logger.Log.Errorw("failed to get note", "userID", userID, "noteID", noteID, "error", err)
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}
	return note, nil
}

// Create stores a new note for the user. Title is optional, content is not.
func (s *NotesService) Create(ctx context.Context, userID uuid.UUID, title, content string) (*models.NoteDB, error) {
	if err := validation.CheckContent(content); err != nil {
		return nil, err
	}

	note, err := s.writeRepo.Save(ctx, userID, title, content)
	if err != nil {
		logger.Log.Errorw("failed to save note", "userID", userID, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, userID, note.NoteID, "created")

	return note, nil
}

// Update overwrites title and content of the user's note.
func (s *NotesService) Update(ctx context.Context, userID, noteID uuid.UUID, title, content string) (*models.NoteDB, error) {
	if err := validation.CheckContent(content); err != nil {
		return nil, err
	}

	note, err := s.writeRepo.Update(ctx, noteID, userID, title, content)
	if err != nil {
		logger.Log.Errorw("failed to update note", "userID", userID, "noteID", noteID, "error", err)
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}

	s.publishEvent(ctx, userID, note.NoteID, "updated")

	return note, nil
}

// Delete permanently removes the user's note.
func (s *NotesService) Delete(ctx context.Context, userID, noteID uuid.UUID) error {
	deleted, err := s.writeRepo.Delete(ctx, noteID, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete note", "userID", userID, "noteID", noteID, "error", err)
		return err
	}
	if !deleted {
		return ErrNoteNotFound
	}

	s.publishEvent(ctx, userID, noteID, "deleted")

	return nil
}

// Search returns the user's notes matching the query as a case-insensitive
// substring of title or content. An empty query returns all of the user's
// notes.
func (s *NotesService) Search(ctx context.Context, userID uuid.UUID, query string) ([]models.NoteDB, error) {
	query = strings.TrimSpace(query)

	notes, err := s.readRepo.Search(ctx, userID, query)
	if err != nil {
		logger.Log.Errorw("failed to search notes", "userID", userID, "query", query, "error", err)
		return nil, err
	}
	return notes, nil
}
