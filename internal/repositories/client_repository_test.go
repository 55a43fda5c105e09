package repositories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizdesk_backend/internal/models"
)

func setupMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

var clientRowColumns = []string{
	"id", "name", "email", "phone", "address", "postal_code", "nationality",
	"date_of_birth", "appointment_date_time", "status", "user_id", "created_at",
}

func TestCreateClient_AssignsIDAndTimestamp(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewClientRepository(db)

	created := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO clients`)).
		WithArgs(sqlmock.AnyArg(), "Ann", "ann@x.io", nil, nil, nil, nil, nil, nil, "Active", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	client := &models.Client{Name: "Ann", Email: "ann@x.io", UserID: "u1"}
	id, err := repo.CreateClient(context.Background(), client)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, client.ID)
	assert.Equal(t, models.ClientStatusActive, client.Status)
	assert.Equal(t, created, client.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetClientsByUser_NewestFirstAndEpochDefault(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewClientRepository(db)

	newer := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	appt := "2024-06-02T10:00"
	rows := sqlmock.NewRows(clientRowColumns).
		AddRow("c2", "Bob", "bob@x.io", nil, nil, nil, nil, nil, appt, "Inactive", "u1", newer).
		AddRow("c1", "Ann", "ann@x.io", nil, nil, nil, nil, nil, nil, "Active", "u1", nil)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM clients`) + `.*` + regexp.QuoteMeta(`ORDER BY created_at DESC`)).
		WithArgs("u1").
		WillReturnRows(rows)

	clients, err := repo.GetClientsByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, "c2", clients[0].ID)
	assert.Equal(t, models.ClientStatusInactive, clients[0].Status)
	require.NotNil(t, clients[0].AppointmentDateTime)
	assert.Equal(t, appt, *clients[0].AppointmentDateTime)
	assert.Nil(t, clients[1].AppointmentDateTime)
	assert.Equal(t, time.Unix(0, 0).UTC(), clients[1].CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetClientsByUser_EmptyIsNotNil(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewClientRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM clients`)).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows(clientRowColumns))

	clients, err := repo.GetClientsByUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, clients)
	assert.Empty(t, clients)
}

func TestGetClientByID_NotFound(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewClientRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM clients WHERE id = $1 AND user_id = $2`)).
		WithArgs("missing", "u1").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetClientByID(context.Background(), "missing", "u1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateClient_NoRowsIsNotFound(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewClientRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE clients SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateClient(context.Background(), &models.Client{ID: "c1", UserID: "u1", Name: "Ann", Status: models.ClientStatusActive})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateClient_WritesStatus(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewClientRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE clients SET`)).
		WithArgs("Ann", "ann@x.io", nil, nil, nil, nil, nil, nil, "Inactive", "c1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateClient(context.Background(), &models.Client{
		ID: "c1", UserID: "u1", Name: "Ann", Email: "ann@x.io", Status: models.ClientStatusInactive,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteClient(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewClientRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM clients WHERE id = $1 AND user_id = $2`)).
		WithArgs("c1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM clients WHERE id = $1 AND user_id = $2`)).
		WithArgs("c1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteClient(context.Background(), "c1", "u1"))
	assert.ErrorIs(t, repo.DeleteClient(context.Background(), "c1", "u1"), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWrapDBError(t *testing.T) {
	assert.ErrorIs(t, wrapDBError(sql.ErrNoRows, "op"), ErrNotFound)
	assert.ErrorIs(t, wrapDBError(&pq.Error{Code: "23505", Message: "dup"}, "op"), ErrDuplicateKey)

	err := wrapDBError(errors.New("connection reset"), "listing")
	assert.ErrorIs(t, err, ErrDatabaseError)
	assert.Contains(t, err.Error(), "connection reset")
}
