package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"bizdesk_backend/internal/models"
)

// FeedbackRepository appends feedback and lists it for admins.
type FeedbackRepository interface {
	CreateFeedback(ctx context.Context, feedback *models.Feedback) error
	ListFeedback(ctx context.Context) ([]models.Feedback, error)
}

type feedbackRepository struct {
	db SQLExecutor
}

// NewFeedbackRepository creates a new instance of FeedbackRepository.
func NewFeedbackRepository(db SQLExecutor) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) CreateFeedback(ctx context.Context, feedback *models.Feedback) error {
	query := `INSERT INTO feedback (id, user_id, email, message, rating, created_at)
	          VALUES ($1, $2, $3, $4, $5, now())
	          RETURNING created_at`

	feedback.ID = newID()
	err := r.db.QueryRowContext(ctx, query,
		feedback.ID, feedback.UserID, feedback.Email, feedback.Message, feedback.Rating,
	).Scan(&feedback.CreatedAt)
	if err != nil {
		return wrapDBError(err, "creating feedback")
	}
	return nil
}

func (r *feedbackRepository) ListFeedback(ctx context.Context) ([]models.Feedback, error) {
	query := `SELECT id, user_id, email, message, rating, created_at FROM feedback
	          ORDER BY created_at DESC NULLS LAST`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, wrapDBError(err, "querying feedback")
	}
	defer rows.Close()

	items := []models.Feedback{}
	for rows.Next() {
		var f models.Feedback
		var rating sql.NullInt64
		var createdAt sql.NullTime
		if err := rows.Scan(&f.ID, &f.UserID, &f.Email, &f.Message, &rating, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: scanning feedback: %v", ErrDatabaseError, err)
		}
		if rating.Valid {
			v := int(rating.Int64)
			f.Rating = &v
		}
		f.CreatedAt = timeOrEpoch(createdAt)
		items = append(items, f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating feedback rows: %v", ErrDatabaseError, err)
	}
	return items, nil
}
