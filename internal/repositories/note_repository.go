package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"bizdesk_backend/internal/models"
)

// NoteRepository stores personal notes.
type NoteRepository interface {
	CreateNote(ctx context.Context, note *models.Note) error
	GetNoteByID(ctx context.Context, id, userID string) (*models.Note, error)
	GetNotesByUser(ctx context.Context, userID string) ([]models.Note, error)
	UpdateNote(ctx context.Context, note *models.Note) error
	DeleteNote(ctx context.Context, id, userID string) error
}

type noteRepository struct {
	db SQLExecutor
}

// NewNoteRepository creates a new instance of NoteRepository.
func NewNoteRepository(db SQLExecutor) NoteRepository {
	return &noteRepository{db: db}
}

func scanNote(row scanner) (*models.Note, error) {
	var n models.Note
	var createdAt sql.NullTime
	if err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &createdAt); err != nil {
		return nil, err
	}
	n.CreatedAt = timeOrEpoch(createdAt)
	return &n, nil
}

func (r *noteRepository) CreateNote(ctx context.Context, note *models.Note) error {
	query := `INSERT INTO notes (id, user_id, title, content, created_at)
	          VALUES ($1, $2, $3, $4, now())
	          RETURNING created_at`

	note.ID = newID()
	if err := r.db.QueryRowContext(ctx, query, note.ID, note.UserID, note.Title, note.Content).Scan(&note.CreatedAt); err != nil {
		return wrapDBError(err, "creating note")
	}
	return nil
}

func (r *noteRepository) GetNoteByID(ctx context.Context, id, userID string) (*models.Note, error) {
	query := `SELECT id, user_id, title, content, created_at FROM notes WHERE id = $1 AND user_id = $2`
	note, err := scanNote(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		return nil, wrapDBError(err, "getting note "+id)
	}
	return note, nil
}

func (r *noteRepository) GetNotesByUser(ctx context.Context, userID string) ([]models.Note, error) {
	query := `SELECT id, user_id, title, content, created_at FROM notes
	          WHERE user_id = $1
	          ORDER BY created_at DESC NULLS LAST`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, wrapDBError(err, "querying notes")
	}
	defer rows.Close()

	notes := []models.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning note: %v", ErrDatabaseError, err)
		}
		notes = append(notes, *n)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating note rows: %v", ErrDatabaseError, err)
	}
	return notes, nil
}

func (r *noteRepository) UpdateNote(ctx context.Context, note *models.Note) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE notes SET title = $1, content = $2 WHERE id = $3 AND user_id = $4`,
		note.Title, note.Content, note.ID, note.UserID,
	)
	if err != nil {
		return wrapDBError(err, "updating note "+note.ID)
	}
	return expectAffected(result, "updating note "+note.ID)
}

func (r *noteRepository) DeleteNote(ctx context.Context, id, userID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return wrapDBError(err, "deleting note "+id)
	}
	return expectAffected(result, "deleting note "+id)
}
