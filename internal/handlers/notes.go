package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/notes-service/internal/logger"
	"github.com/sbilibin2017/notes-service/internal/middlewares"
	"github.com/sbilibin2017/notes-service/internal/models"
	"github.com/sbilibin2017/notes-service/internal/services"
	"github.com/sbilibin2017/notes-service/internal/validation"
)

// NotesReader defines the read operations needed by the notes page.
type NotesReader interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.NoteDB, error)
	Get(ctx context.Context, userID, noteID uuid.UUID) (*models.NoteDB, error)
}

// NotesWriter defines the write operations needed by the notes page.
type NotesWriter interface {
	Create(ctx context.Context, userID uuid.UUID, title, content string) (*models.NoteDB, error)
	Update(ctx context.Context, userID, noteID uuid.UUID, title, content string) (*models.NoteDB, error)
}

// ListNotesResponse represents the notes page payload
// swagger:model ListNotesResponse
type ListNotesResponse struct {
	// Own notes, most recently touched first
	Notes []models.NoteDB `json:"notes"`

	// Note selected via the note_id query parameter
	SelectedNote *models.NoteDB `json:"selected_note,omitempty"`
}

// SaveNoteRequest represents the JSON body for creating or updating a note.
// A present note_id means update, an absent one means create.
// swagger:model SaveNoteRequest
type SaveNoteRequest struct {
	// Note id, present only for updates
	NoteID string `json:"note_id,omitempty"`

	// Optional title
	// default: Meeting Notes
	Title string `json:"title"`

	// Note body, must not be empty
	// required: true
	// default: discuss roadmap
	Content string `json:"content"`
}

// NoteErrorResponse represents an error response for note operations
// swagger:model NoteErrorResponse
type NoteErrorResponse struct {
	// Field-level validation errors
	Errors validation.FieldErrors `json:"errors,omitempty"`

	// Error message
	// default: Note not found
	Error string `json:"error,omitempty"`
}

// NewListNotesHandler returns an HTTP handler for the authenticated user's
// notes, ordered by last update. The optional note_id query parameter selects
// a single note for display; a note owned by someone else is a plain 404.
// @Summary List own notes
// @Description Returns the requester's notes ordered by updated_at descending, optionally with a selected note
// @Tags notes
// @Produce json
// @Param note_id query string false "Note to select"
// @Success 200 {object} handlers.ListNotesResponse "Notes"
// @Failure 404 {object} handlers.NoteErrorResponse "Selected note not found"
// @Failure 401 {object} handlers.NoteErrorResponse "Unauthorized"
// @Router /homenotes [get]
// @Security BearerAuth
func NewListNotesHandler(reader NotesReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := middlewares.GetUserIDFromContext(ctx)

		w.Header().Set("Content-Type", "application/json")

		notes, err := reader.List(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to list notes", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(NoteErrorResponse{Error: "Internal server error"})
			return
		}

		resp := ListNotesResponse{Notes: notes}

		if rawID := r.URL.Query().Get("note_id"); rawID != "" {
			noteID, err := uuid.Parse(rawID)
			if err != nil {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(NoteErrorResponse{Error: "Note not found"})
				return
			}

			selected, err := reader.Get(ctx, userID, noteID)
			if err != nil {
				writeNoteError(w, err)
				return
			}
			resp.SelectedNote = selected
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

// NewSaveNoteHandler returns an HTTP handler that creates or updates a note,
// mirroring the dual-purpose POST of the notes page: a request with note_id
// updates that note, one without creates a new note.
// @Summary Create or update a note
// @Description Creates a new note, or overwrites title/content of an owned note when note_id is given
// @Tags notes
// @Accept json
// @Produce json
// @Param saveNoteRequest body handlers.SaveNoteRequest true "Note payload"
// @Success 200 {object} models.NoteDB "Note updated"
// @Success 201 {object} models.NoteDB "Note created"
// @Failure 400 {object} handlers.NoteErrorResponse "Validation failed / invalid request"
// @Failure 404 {object} handlers.NoteErrorResponse "Note not found"
// @Failure 401 {object} handlers.NoteErrorResponse "Unauthorized"
// @Router /homenotes [post]
// @Security BearerAuth
func NewSaveNoteHandler(writer NotesWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := middlewares.GetUserIDFromContext(ctx)

		w.Header().Set("Content-Type", "application/json")

		var req SaveNoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(NoteErrorResponse{Error: "invalid request body"})
			return
		}

		if req.NoteID == "" {
			note, err := writer.Create(ctx, userID, req.Title, req.Content)
			if err != nil {
				writeNoteError(w, err)
				return
			}
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(note)
			return
		}

		noteID, err := uuid.Parse(req.NoteID)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(NoteErrorResponse{Error: "Note not found"})
			return
		}

		note, err := writer.Update(ctx, userID, noteID, req.Title, req.Content)
		if err != nil {
			writeNoteError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(note)
	}
}

// writeNoteError maps service errors to HTTP responses shared by the note
// handlers.
func writeNoteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNoteNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(NoteErrorResponse{Error: "Note not found"})
	case errors.Is(err, validation.ErrEmptyContent):
		fieldErrs := validation.FieldErrors{}
		fieldErrs.Add("content", err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(NoteErrorResponse{Errors: fieldErrs})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(NoteErrorResponse{Error: "Internal server error"})
	}
}
