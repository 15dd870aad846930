package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/notes-service/internal/models"
	"github.com/sbilibin2017/notes-service/internal/services"
)

// withNoteIDParam attaches a chi route context carrying the note_id parameter.
func withNoteIDParam(req *http.Request, rawID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("note_id", rawID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestDeleteProposalHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	noteID := uuid.New()

	tests := []struct {
		name         string
		rawID        string
		mockSetup    func(m *MockNoteRemover)
		expectedCode int
		expectNote   bool
	}{
		{
			name:  "proposal returned without deleting",
			rawID: noteID.String(),
			mockSetup: func(m *MockNoteRemover) {
				m.EXPECT().
					Get(gomock.Any(), userID, noteID).
					Return(&models.NoteDB{NoteID: noteID, Title: "doomed", Content: "bye"}, nil)
			},
			expectedCode: http.StatusOK,
			expectNote:   true,
		},
		{
			name:         "note_id is not a uuid",
			rawID:        "not-a-uuid",
			expectedCode: http.StatusNotFound,
		},
		{
			name:  "note belongs to someone else",
			rawID: noteID.String(),
			mockSetup: func(m *MockNoteRemover) {
				m.EXPECT().
					Get(gomock.Any(), userID, noteID).
					Return(nil, services.ErrNoteNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockNoteRemover(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := authedRequest(http.MethodGet, "/delete/"+tt.rawID, nil, userID)
			req = withNoteIDParam(req, tt.rawID)
			rr := httptest.NewRecorder()

			NewDeleteProposalHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectNote {
				var resp DeleteProposalResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.NotNil(t, resp.NoteToDelete)
				assert.Equal(t, noteID, resp.NoteToDelete.NoteID)
			}
		})
	}
}

func TestDeleteNoteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	noteID := uuid.New()

	tests := []struct {
		name         string
		rawID        string
		mockSetup    func(m *MockNoteRemover)
		expectedCode int
	}{
		{
			name:  "note deleted",
			rawID: noteID.String(),
			mockSetup: func(m *MockNoteRemover) {
				m.EXPECT().
					Delete(gomock.Any(), userID, noteID).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "note_id is not a uuid",
			rawID:        "not-a-uuid",
			expectedCode: http.StatusNotFound,
		},
		{
			name:  "note already gone",
			rawID: noteID.String(),
			mockSetup: func(m *MockNoteRemover) {
				m.EXPECT().
					Delete(gomock.Any(), userID, noteID).
					Return(services.ErrNoteNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:  "storage failure",
			rawID: noteID.String(),
			mockSetup: func(m *MockNoteRemover) {
				m.EXPECT().
					Delete(gomock.Any(), userID, noteID).
					Return(errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockNoteRemover(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := authedRequest(http.MethodPost, "/delete/"+tt.rawID, nil, userID)
			req = withNoteIDParam(req, tt.rawID)
			rr := httptest.NewRecorder()

			NewDeleteNoteHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp DeleteNoteResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "Note deleted", resp.Message)
			}
		})
	}
}
