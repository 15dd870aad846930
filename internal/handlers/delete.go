package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/notes-service/internal/middlewares"
	"github.com/sbilibin2017/notes-service/internal/models"
)

// NoteRemover defines the operations needed by the two-step delete flow.
type NoteRemover interface {
	Get(ctx context.Context, userID, noteID uuid.UUID) (*models.NoteDB, error)
	Delete(ctx context.Context, userID, noteID uuid.UUID) error
}

// DeleteProposalResponse represents the confirmation step of note deletion
// swagger:model DeleteProposalResponse
type DeleteProposalResponse struct {
	// The note about to be deleted; nothing has been removed yet
	NoteToDelete *models.NoteDB `json:"note_to_delete"`
}

// DeleteNoteResponse represents a committed deletion
// swagger:model DeleteNoteResponse
type DeleteNoteResponse struct {
	// Success message
	// default: Note deleted
	Message string `json:"message"`
}

// NewDeleteProposalHandler returns an HTTP handler for the first step of the
// confirm/commit deletion flow: it shows the note that would be deleted and
// removes nothing.
// @Summary Propose note deletion
// @Description Returns the note as a deletion proposal; the note is not removed
// @Tags notes
// @Produce json
// @Param note_id path string true "Note id"
// @Success 200 {object} handlers.DeleteProposalResponse "Deletion proposal"
// @Failure 404 {object} handlers.NoteErrorResponse "Note not found"
// @Failure 401 {object} handlers.NoteErrorResponse "Unauthorized"
// @Router /delete/{note_id} [get]
// @Security BearerAuth
func NewDeleteProposalHandler(svc NoteRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := middlewares.GetUserIDFromContext(ctx)

		w.Header().Set("Content-Type", "application/json")

		noteID, err := uuid.Parse(chi.URLParam(r, "note_id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(NoteErrorResponse{Error: "Note not found"})
			return
		}

		note, err := svc.Get(ctx, userID, noteID)
		if err != nil {
			writeNoteError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteProposalResponse{
			NoteToDelete: note,
		})
	}
}

// NewDeleteNoteHandler returns an HTTP handler for the second step of the
// confirm/commit deletion flow: it permanently removes the note.
// @Summary Commit note deletion
// @Description Permanently removes the note; there is no soft delete
// @Tags notes
// @Produce json
// @Param note_id path string true "Note id"
// @Success 200 {object} handlers.DeleteNoteResponse "Note deleted"
// @Failure 404 {object} handlers.NoteErrorResponse "Note not found"
// @Failure 401 {object} handlers.NoteErrorResponse "Unauthorized"
// @Router /delete/{note_id} [post]
// @Security BearerAuth
func NewDeleteNoteHandler(svc NoteRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := middlewares.GetUserIDFromContext(ctx)

		w.Header().Set("Content-Type", "application/json")

		noteID, err := uuid.Parse(chi.URLParam(r, "note_id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(NoteErrorResponse{Error: "Note not found"})
			return
		}

		if err := svc.Delete(ctx, userID, noteID); err != nil {
			writeNoteError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteNoteResponse{
			Message: "Note deleted",
		})
	}
}
