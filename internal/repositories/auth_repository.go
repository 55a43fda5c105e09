package repositories

import (
	"context"
	"strings"

	"bizdesk_backend/internal/models"
)

// AuthRepository defines the interface for user account database operations.
type AuthRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, userID string) (*models.User, error)
}

type authRepository struct {
	db SQLExecutor
}

// NewAuthRepository creates a new instance of AuthRepository.
func NewAuthRepository(db SQLExecutor) AuthRepository {
	return &authRepository{db: db}
}

const userColumns = `id, email, display_name, password_hash, role, created_at`

func scanUser(row scanner) (*models.User, error) {
	user := &models.User{}
	if err := row.Scan(&user.ID, &user.Email, &user.DisplayName, &user.PasswordHash, &user.Role, &user.CreatedAt); err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser inserts a new account. Emails are stored lower-cased so lookups are
// case-insensitive; a taken email yields ErrDuplicateKey.
func (r *authRepository) CreateUser(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (id, email, display_name, password_hash, role, created_at)
	          VALUES ($1, $2, $3, $4, $5, now())
	          RETURNING created_at`

	user.ID = newID()
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if user.Role == "" {
		user.Role = models.RoleUser
	}

	err := r.db.QueryRowContext(ctx, query, user.ID, user.Email, user.DisplayName, user.PasswordHash, user.Role).
		Scan(&user.CreatedAt)
	if err != nil {
		return wrapDBError(err, "creating user")
	}
	return nil
}

// FindUserByEmail returns the first account with the given email.
func (r *authRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, strings.ToLower(strings.TrimSpace(email))))
	if err != nil {
		return nil, wrapDBError(err, "finding user by email")
	}
	return user, nil
}

// FindUserByID retrieves a user by their ID.
func (r *authRepository) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		return nil, wrapDBError(err, "finding user by ID "+userID)
	}
	return user, nil
}
