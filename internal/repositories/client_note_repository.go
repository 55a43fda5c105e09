package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"bizdesk_backend/internal/models"
)

// ClientNoteRepository stores the notes attached to a client.
type ClientNoteRepository interface {
	CreateClientNote(ctx context.Context, note *models.ClientNote) error
	GetClientNotes(ctx context.Context, clientID string) ([]models.ClientNote, error)
	DeleteClientNote(ctx context.Context, clientID, noteID string) error
}

type clientNoteRepository struct {
	db SQLExecutor
}

// NewClientNoteRepository creates a new instance of ClientNoteRepository.
func NewClientNoteRepository(db SQLExecutor) ClientNoteRepository {
	return &clientNoteRepository{db: db}
}

func (r *clientNoteRepository) CreateClientNote(ctx context.Context, note *models.ClientNote) error {
	query := `INSERT INTO client_notes (id, client_id, text, user_id, created_at)
	          VALUES ($1, $2, $3, $4, now())
	          RETURNING created_at`

	note.ID = newID()
	if err := r.db.QueryRowContext(ctx, query, note.ID, note.ClientID, note.Text, note.UserID).Scan(&note.CreatedAt); err != nil {
		return wrapDBError(err, "creating client note")
	}
	return nil
}

func (r *clientNoteRepository) GetClientNotes(ctx context.Context, clientID string) ([]models.ClientNote, error) {
	query := `SELECT id, client_id, text, user_id, created_at FROM client_notes
	          WHERE client_id = $1
	          ORDER BY created_at DESC NULLS LAST`

	rows, err := r.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, wrapDBError(err, "querying client notes")
	}
	defer rows.Close()

	notes := []models.ClientNote{}
	for rows.Next() {
		var n models.ClientNote
		var createdAt sql.NullTime
		if err := rows.Scan(&n.ID, &n.ClientID, &n.Text, &n.UserID, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: scanning client note: %v", ErrDatabaseError, err)
		}
		n.CreatedAt = timeOrEpoch(createdAt)
		notes = append(notes, n)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating client note rows: %v", ErrDatabaseError, err)
	}
	return notes, nil
}

func (r *clientNoteRepository) DeleteClientNote(ctx context.Context, clientID, noteID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM client_notes WHERE id = $1 AND client_id = $2`, noteID, clientID)
	if err != nil {
		return wrapDBError(err, "deleting client note "+noteID)
	}
	return expectAffected(result, "deleting client note "+noteID)
}
