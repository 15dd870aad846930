package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/notes-service/internal/models"
	"github.com/sbilibin2017/notes-service/internal/services"
	"github.com/sbilibin2017/notes-service/internal/validation"
)

func TestNotesService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockNoteReader(ctrl)
	mockWriter := services.NewMockNoteWriter(ctrl)

	userID := uuid.New()
	now := time.Now()
	expected := []models.NoteDB{
		{NoteID: uuid.New(), AuthorID: userID, Title: "newer", UpdatedAt: now},
		{NoteID: uuid.New(), AuthorID: userID, Title: "older", UpdatedAt: now.Add(-time.Hour)},
	}

	mockReader.EXPECT().ListByAuthor(gomock.Any(), userID).Return(expected, nil)

	svc := services.NewNotesService(mockReader, mockWriter, nil)

	notes, err := svc.List(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, expected, notes)
}

func TestNotesService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	noteID := uuid.New()
	note := &models.NoteDB{NoteID: noteID, AuthorID: userID, Content: "body"}

	tests := []struct {
		name    string
		repoRes *models.NoteDB
		repoErr error
		wantErr error
	}{
		{name: "found", repoRes: note},
		{name: "not owned or missing", repoRes: nil, wantErr: services.ErrNoteNotFound},
		{name: "repo error", repoErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockNoteReader(ctrl)
			mockWriter := services.NewMockNoteWriter(ctrl)

			mockReader.EXPECT().GetByIDAndAuthor(gomock.Any(), noteID, userID).Return(tt.repoRes, tt.repoErr)

			svc := services.NewNotesService(mockReader, mockWriter, nil)

			got, err := svc.Get(context.Background(), userID, noteID)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, note, got)
			}
		})
	}
}

func TestNotesService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("success publishes event", func(t *testing.T) {
		mockReader := services.NewMockNoteReader(ctrl)
		mockWriter := services.NewMockNoteWriter(ctrl)
		mockKafka := services.NewMockKafkaWriter(ctrl)

		saved := &models.NoteDB{NoteID: uuid.New(), AuthorID: userID, Title: "t", Content: "c"}
		mockWriter.EXPECT().Save(gomock.Any(), userID, "t", "c").Return(saved, nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		svc := services.NewNotesService(mockReader, mockWriter, mockKafka)

		note, err := svc.Create(context.Background(), userID, "t", "c")
		assert.NoError(t, err)
		assert.Equal(t, saved, note)
	})

	t.Run("empty title is allowed", func(t *testing.T) {
		mockReader := services.NewMockNoteReader(ctrl)
		mockWriter := services.NewMockNoteWriter(ctrl)

		saved := &models.NoteDB{NoteID: uuid.New(), AuthorID: userID, Content: "c"}
		mockWriter.EXPECT().Save(gomock.Any(), userID, "", "c").Return(saved, nil)

		svc := services.NewNotesService(mockReader, mockWriter, nil)

		note, err := svc.Create(context.Background(), userID, "", "c")
		assert.NoError(t, err)
		assert.Equal(t, saved, note)
	})

	t.Run("empty content is rejected", func(t *testing.T) {
		mockReader := services.NewMockNoteReader(ctrl)
		mockWriter := services.NewMockNoteWriter(ctrl)

		svc := services.NewNotesService(mockReader, mockWriter, nil)

		note, err := svc.Create(context.Background(), userID, "title", "   ")
		assert.ErrorIs(t, err, validation.ErrEmptyContent)
		assert.Nil(t, note)
	})

	t.Run("kafka failure does not fail the operation", func(t *testing.T) {
		mockReader := services.NewMockNoteReader(ctrl)
		mockWriter := services.NewMockNoteWriter(ctrl)
		mockKafka := services.NewMockKafkaWriter(ctrl)

		saved := &models.NoteDB{NoteID: uuid.New(), AuthorID: userID, Content: "c"}
		mockWriter.EXPECT().Save(gomock.Any(), userID, "", "c").Return(saved, nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		svc := services.NewNotesService(mockReader, mockWriter, mockKafka)

		note, err := svc.Create(context.Background(), userID, "", "c")
		assert.NoError(t, err)
		assert.Equal(t, saved, note)
	})
}

func TestNotesService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	noteID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockReader := services.NewMockNoteReader(ctrl)
		mockWriter := services.NewMockNoteWriter(ctrl)
		mockKafka := services.NewMockKafkaWriter(ctrl)

		updated := &models.NoteDB{NoteID: noteID, AuthorID: userID, Title: "new", Content: "body"}
		mockWriter.EXPECT().Update(gomock.Any(), noteID, userID, "new", "body").Return(updated, nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		svc := services.NewNotesService(mockReader, mockWriter, mockKafka)

		note, err := svc.Update(context.Background(), userID, noteID, "new", "body")
		assert.NoError(t, err)
		assert.Equal(t, updated, note)
	})

	t.Run("not owned maps to not found", func(t *testing.T) {
		mockReader := services.NewMockNoteReader(ctrl)
		mockWriter := services.NewMockNoteWriter(ctrl)

		mockWriter.EXPECT().Update(gomock.Any(), noteID, userID, "new", "body").Return(nil, nil)

		svc := services.NewNotesService(mockReader, mockWriter, nil)

		note, err := svc.Update(context.Background(), userID, noteID, "new", "body")
		assert.ErrorIs(t, err, services.ErrNoteNotFound)
		assert.Nil(t, note)
	})

	t.Run("empty content is rejected before touching storage", func(t *testing.T) {
		mockReader := services.NewMockNoteReader(ctrl)
		mockWriter := services.NewMockNoteWriter(ctrl)

		svc := services.NewNotesService(mockReader, mockWriter, nil)

		note, err := svc.Update(context.Background(), userID, noteID, "new", "")
		assert.ErrorIs(t, err, validation.ErrEmptyContent)
		assert.Nil(t, note)
	})
}

func TestNotesService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	noteID := uuid.New()

	t.Run("success publishes event", func(t *testing.T) {
		mockReader := services.NewMockNoteReader(ctrl)
		mockWriter := services.NewMockNoteWriter(ctrl)
		mockKafka := services.NewMockKafkaWriter(ctrl)

		mockWriter.EXPECT().Delete(gomock.Any(), noteID, userID).Return(true, nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		svc := services.NewNotesService(mockReader, mockWriter, mockKafka)

		assert.NoError(t, svc.Delete(context.Background(), userID, noteID))
	})

	t.Run("not owned maps to not found", func(t *testing.T) {
		mockReader := services.NewMockNoteReader(ctrl)
		mockWriter := services.NewMockNoteWriter(ctrl)

		mockWriter.EXPECT().Delete(gomock.Any(), noteID, userID).Return(false, nil)

		svc := services.NewNotesService(mockReader, mockWriter, nil)

		assert.ErrorIs(t, svc.Delete(context.Background(), userID, noteID), services.ErrNoteNotFound)
	})

	t.Run("repo error", func(t *testing.T) {
		mockReader := services.NewMockNoteReader(ctrl)
		mockWriter := services.NewMockNoteWriter(ctrl)

		mockWriter.EXPECT().Delete(gomock.Any(), noteID, userID).Return(false, errors.New("db error"))

		svc := services.NewNotesService(mockReader, mockWriter, nil)

		assert.EqualError(t, svc.Delete(context.Background(), userID, noteID), "db error")
	})
}

func TestNotesService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	expected := []models.NoteDB{{NoteID: uuid.New(), AuthorID: userID, Title: "Meeting Notes"}}

	mockReader := services.NewMockNoteReader(ctrl)
	mockWriter := services.NewMockNoteWriter(ctrl)

	// The query is trimmed before it reaches storage
	mockReader.EXPECT().Search(gomock.Any(), userID, "meeting").Return(expected, nil)

	svc := services.NewNotesService(mockReader, mockWriter, nil)

	notes, err := svc.Search(context.Background(), userID, "  meeting ")
	assert.NoError(t, err)
	assert.Equal(t, expected, notes)
}
