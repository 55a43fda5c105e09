package repositories

import (
	"context"

	"bizdesk_backend/internal/models"
)

// MailRepository records mail intents for the delivery worker.
type MailRepository interface {
	EnqueueMail(ctx context.Context, mail *models.MailMessage) error
}

type mailRepository struct {
	db SQLExecutor
}

// NewMailRepository creates a new instance of MailRepository.
func NewMailRepository(db SQLExecutor) MailRepository {
	return &mailRepository{db: db}
}

func (r *mailRepository) EnqueueMail(ctx context.Context, mail *models.MailMessage) error {
	query := `INSERT INTO mail (id, recipient, subject, html, created_at)
	          VALUES ($1, $2, $3, $4, now())
	          RETURNING created_at`

	mail.ID = newID()
	err := r.db.QueryRowContext(ctx, query, mail.ID, mail.To, mail.Message.Subject, mail.Message.HTML).
		Scan(&mail.CreatedAt)
	if err != nil {
		return wrapDBError(err, "enqueueing mail")
	}
	return nil
}
