package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/sbilibin2017/notes-service/internal/logger"
	"github.com/sbilibin2017/notes-service/internal/middlewares"
	"github.com/sbilibin2017/notes-service/internal/models"
)

// NotesSearcher defines the interface that the search service must implement.
type NotesSearcher interface {
	Search(ctx context.Context, userID uuid.UUID, query string) ([]models.NoteDB, error)
}

// SearchNotesResponse represents the search results payload
// swagger:model SearchNotesResponse
type SearchNotesResponse struct {
	// The submitted query
	// default: meeting
	Query string `json:"query"`

	// Matching notes, scoped to the requester
	Notes []models.NoteDB `json:"notes"`
}

// NewSearchNotesHandler returns an HTTP handler for free-text note search.
// The query matches case-insensitively against title or content; an empty
// query returns all of the requester's notes.
// @Summary Search own notes
// @Description Case-insensitive substring search over title and content of the requester's notes
// @Tags notes
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} handlers.SearchNotesResponse "Matching notes"
// @Failure 401 {object} handlers.NoteErrorResponse "Unauthorized"
// @Router /search [get]
// @Security BearerAuth
func NewSearchNotesHandler(svc NotesSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := middlewares.GetUserIDFromContext(ctx)

		w.Header().Set("Content-Type", "application/json")

		// The echoed query is the effective one, surrounding whitespace dropped
		query := strings.TrimSpace(r.URL.Query().Get("q"))

		notes, err := svc.Search(ctx, userID, query)
		if err != nil {
			logger.Log.Errorw("failed to search notes", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(NoteErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SearchNotesResponse{
			Query: query,
			Notes: notes,
		})
	}
}
