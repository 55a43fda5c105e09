package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"bizdesk_backend/internal/models"
)

// ClientRepository defines the interface for client-related database operations.
type ClientRepository interface {
	CreateClient(ctx context.Context, client *models.Client) (string, error)
	GetClientByID(ctx context.Context, id, userID string) (*models.Client, error)
	GetClientsByUser(ctx context.Context, userID string) ([]models.Client, error)
	UpdateClient(ctx context.Context, client *models.Client) error
	DeleteClient(ctx context.Context, id, userID string) error
}

type clientRepository struct {
	db SQLExecutor
}

// NewClientRepository creates a new instance of ClientRepository.
func NewClientRepository(db SQLExecutor) ClientRepository {
	return &clientRepository{db: db}
}

const clientColumns = `id, name, email, phone, address, postal_code, nationality,
	date_of_birth, appointment_date_time, status, user_id, created_at`

func scanClient(row scanner) (*models.Client, error) {
	var client models.Client
	var status string
	var createdAt sql.NullTime
	err := row.Scan(
		&client.ID, &client.Name, &client.Email, &client.Phone, &client.Address, &client.PostalCode,
		&client.Nationality, &client.DateOfBirth, &client.AppointmentDateTime, &status, &client.UserID, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	client.Status = models.ClientStatus(status)
	client.CreatedAt = timeOrEpoch(createdAt)
	return &client, nil
}

// CreateClient inserts a new client; id and creation time are assigned here.
func (r *clientRepository) CreateClient(ctx context.Context, client *models.Client) (string, error) {
	query := `INSERT INTO clients (id, name, email, phone, address, postal_code, nationality,
	              date_of_birth, appointment_date_time, status, user_id, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now())
	          RETURNING created_at`

	client.ID = newID()
	if client.Status == "" {
		client.Status = models.ClientStatusActive
	}

	err := r.db.QueryRowContext(ctx, query,
		client.ID, client.Name, client.Email, client.Phone, client.Address, client.PostalCode,
		client.Nationality, client.DateOfBirth, client.AppointmentDateTime, string(client.Status), client.UserID,
	).Scan(&client.CreatedAt)
	if err != nil {
		return "", wrapDBError(err, "creating client")
	}
	return client.ID, nil
}

// GetClientByID retrieves one client owned by userID.
func (r *clientRepository) GetClientByID(ctx context.Context, id, userID string) (*models.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1 AND user_id = $2`

	client, err := scanClient(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		return nil, wrapDBError(err, fmt.Sprintf("getting client by ID %s", id))
	}
	return client, nil
}

// GetClientsByUser lists every client of userID, newest first.
func (r *clientRepository) GetClientsByUser(ctx context.Context, userID string) ([]models.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients
	          WHERE user_id = $1
	          ORDER BY created_at DESC NULLS LAST`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, wrapDBError(err, "querying clients")
	}
	defer rows.Close()

	clients := []models.Client{}
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning client: %v", ErrDatabaseError, err)
		}
		clients = append(clients, *client)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating client rows: %v", ErrDatabaseError, err)
	}
	return clients, nil
}

// UpdateClient replaces every mutable field. id, user_id and created_at are never written.
func (r *clientRepository) UpdateClient(ctx context.Context, client *models.Client) error {
	query := `UPDATE clients SET
	            name = $1, email = $2, phone = $3, address = $4, postal_code = $5,
	            nationality = $6, date_of_birth = $7, appointment_date_time = $8, status = $9
	          WHERE id = $10 AND user_id = $11`

	result, err := r.db.ExecContext(ctx, query,
		client.Name, client.Email, client.Phone, client.Address, client.PostalCode,
		client.Nationality, client.DateOfBirth, client.AppointmentDateTime, string(client.Status),
		client.ID, client.UserID,
	)
	if err != nil {
		return wrapDBError(err, fmt.Sprintf("updating client ID %s", client.ID))
	}
	return expectAffected(result, "updating client ID "+client.ID)
}

// DeleteClient removes a client. Its notes are left in client_notes.
func (r *clientRepository) DeleteClient(ctx context.Context, id, userID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return wrapDBError(err, fmt.Sprintf("deleting client ID %s", id))
	}
	return expectAffected(result, "deleting client ID "+id)
}
