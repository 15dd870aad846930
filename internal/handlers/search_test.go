package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/notes-service/internal/models"
)

func TestSearchNotesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name          string
		target        string
		query         string
		mockSetup     func(m *MockNotesSearcher)
		expectedCode  int
		expectedCount int
	}{
		{
			name:   "matching notes",
			target: "/search?q=meeting",
			query:  "meeting",
			mockSetup: func(m *MockNotesSearcher) {
				m.EXPECT().
					Search(gomock.Any(), userID, "meeting").
					Return([]models.NoteDB{
						{NoteID: uuid.New(), Title: "Meeting notes"},
						{NoteID: uuid.New(), Content: "prep for the meeting"},
					}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedCount: 2,
		},
		{
			name:   "empty query returns everything",
			target: "/search",
			query:  "",
			mockSetup: func(m *MockNotesSearcher) {
				m.EXPECT().
					Search(gomock.Any(), userID, "").
					Return([]models.NoteDB{{NoteID: uuid.New()}}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedCount: 1,
		},
		{
			name:   "padded query is trimmed before search and echo",
			target: "/search?q=%20%20meeting%20",
			query:  "meeting",
			mockSetup: func(m *MockNotesSearcher) {
				m.EXPECT().
					Search(gomock.Any(), userID, "meeting").
					Return([]models.NoteDB{{NoteID: uuid.New(), Title: "Meeting notes"}}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedCount: 1,
		},
		{
			name:   "search fails",
			target: "/search?q=meeting",
			query:  "meeting",
			mockSetup: func(m *MockNotesSearcher) {
				m.EXPECT().
					Search(gomock.Any(), userID, "meeting").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockNotesSearcher(ctrl)
			tt.mockSetup(mockSvc)

			req := authedRequest(http.MethodGet, tt.target, nil, userID)
			rr := httptest.NewRecorder()

			NewSearchNotesHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp SearchNotesResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.query, resp.Query)
				assert.Len(t, resp.Notes, tt.expectedCount)
			}
		})
	}
}
