package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/notes-service/internal/logger"
	"github.com/sbilibin2017/notes-service/internal/models"
)

// NoteReadRepository handles note read operations.
// Every query filters on (note_id, author_id) jointly, so a note owned by
// another user is indistinguishable from a missing one.
type NoteReadRepository struct {
	db *sqlx.DB
}

func NewNoteReadRepository(db *sqlx.DB) *NoteReadRepository {
	return &NoteReadRepository{db: db}
}

// ListByAuthor returns all notes of the author, most recently touched first.
func (r *NoteReadRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.NoteDB, error) {
	const query = `
		SELECT note_id, author_id, title, content, created_at, updated_at
		FROM notes
		WHERE author_id = $1
		ORDER BY updated_at DESC
	`

	var notes []models.NoteDB
	err := r.db.SelectContext(ctx, &notes, query, authorID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{authorID},
		"result", len(notes),
		"error", err,
	)

	return notes, err
}

// GetByIDAndAuthor returns the note only if it belongs to the author.
// Returns (nil, nil) on a miss.
func (r *NoteReadRepository) GetByIDAndAuthor(ctx context.Context, noteID, authorID uuid.UUID) (*models.NoteDB, error) {
	const query = `
		SELECT note_id, author_id, title, content, created_at, updated_at
		FROM notes
		WHERE note_id = $1 AND author_id = $2
		LIMIT 1
	`

	var note models.NoteDB
	err := r.db.GetContext(ctx, &note, query, noteID, authorID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{noteID, authorID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &note, nil
}

// likeEscaper neutralizes LIKE metacharacters so user queries match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search returns the author's notes whose title or content contains the query
// case-insensitively. The query is matched as a literal substring, never as a
// LIKE pattern. An empty query matches every note of the author.
func (r *NoteReadRepository) Search(ctx context.Context, authorID uuid.UUID, query string) ([]models.NoteDB, error) {
	const sqlQuery = `
		SELECT note_id, author_id, title, content, created_at, updated_at
		FROM notes
		WHERE author_id = $1
		  AND (title ILIKE '%' || $2 || '%' OR content ILIKE '%' || $2 || '%')
	`
	pattern := likeEscaper.Replace(query)

	var notes []models.NoteDB
	err := r.db.SelectContext(ctx, &notes, sqlQuery, authorID, pattern)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(sqlQuery), " "),
		"args", []any{authorID, pattern},
		"result", len(notes),
		"error", err,
	)

	return notes, err
}

// NoteWriteRepository handles note write operations.
type NoteWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewNoteWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *NoteWriteRepository {
	return &NoteWriteRepository{db: db, txGetter: txGetter}
}

func (r *NoteWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new note for the author and returns the stored row.
func (r *NoteWriteRepository) Save(ctx context.Context, authorID uuid.UUID, title, content string) (*models.NoteDB, error) {
	query := `
		INSERT INTO notes (note_id, author_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING note_id, author_id, title, content, created_at, updated_at
	`
	args := []any{uuid.New(), authorID, title, content}

	var note models.NoteDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &note, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{authorID, title},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &note, nil
}

// Update overwrites title and content of the author's note and refreshes
// updated_at. Returns (nil, nil) when the note does not exist or belongs to
// another user.
func (r *NoteWriteRepository) Update(ctx context.Context, noteID, authorID uuid.UUID, title, content string) (*models.NoteDB, error) {
	query := `
		UPDATE notes
		SET title = $3, content = $4, updated_at = NOW()
		WHERE note_id = $1 AND author_id = $2
		RETURNING note_id, author_id, title, content, created_at, updated_at
	`
	args := []any{noteID, authorID, title, content}

	var note models.NoteDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &note, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{noteID, authorID, title},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

// Delete permanently removes the author's note. Returns false when the note
// does not exist or belongs to another user.
func (r *NoteWriteRepository) Delete(ctx context.Context, noteID, authorID uuid.UUID) (bool, error) {
	query := `
		DELETE FROM notes
		WHERE note_id = $1 AND author_id = $2
	`
	args := []any{noteID, authorID}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
