package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizdesk_backend/internal/models"
)

func TestClientNotes_CreateAndList(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewClientNoteRepository(db)

	created := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO client_notes`)).
		WithArgs(sqlmock.AnyArg(), "c1", "Called back", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM client_notes`)).
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "client_id", "text", "user_id", "created_at"}).
			AddRow("n1", "c1", "Called back", "u1", created))

	note := &models.ClientNote{ClientID: "c1", Text: "Called back", UserID: "u1"}
	require.NoError(t, repo.CreateClientNote(context.Background(), note))
	assert.NotEmpty(t, note.ID)

	notes, err := repo.GetClientNotes(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Called back", notes[0].Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotes_UpdateScopedToOwner(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewNoteRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE notes SET title = $1, content = $2 WHERE id = $3 AND user_id = $4`)).
		WithArgs("T", "C", "n1", "intruder").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateNote(context.Background(), &models.Note{ID: "n1", UserID: "intruder", Title: "T", Content: "C"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFeedback_ListDecodesOptionalRating(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewFeedbackRepository(db)

	mock.ExpectQuery(`FROM feedback\s+ORDER BY created_at DESC NULLS LAST$`).
		WithoutArgs().
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "email", "message", "rating", "created_at"}).
			AddRow("f1", nil, "a@x.io", "Great", int64(5), time.Now()).
			AddRow("f2", "u1", nil, "Meh", nil, time.Now()))

	items, err := repo.ListFeedback(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.NotNil(t, items[0].Rating)
	assert.Equal(t, 5, *items[0].Rating)
	assert.Nil(t, items[1].Rating)
	assert.Nil(t, items[1].Email)
}

func TestMail_Enqueue(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewMailRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO mail (id, recipient, subject, html, created_at)`)).
		WithArgs(sqlmock.AnyArg(), "to@x.io", "Hi", "<p>x</p>").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	msg := &models.MailMessage{To: "to@x.io", Message: models.MailContent{Subject: "Hi", HTML: "<p>x</p>"}}
	require.NoError(t, repo.EnqueueMail(context.Background(), msg))
	assert.NotEmpty(t, msg.ID)
}
