package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hackovate/judging-portal/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	// GetByCredentials performs the exact-match credential lookup. Passwords
	// are stored and compared as plaintext.
	GetByCredentials(ctx context.Context, username, password string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type postgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

func (r *postgresUserRepository) GetByCredentials(ctx context.Context, username, password string) (*models.User, error) {
	query := `
		SELECT id, username, password, role, evaluator_id
		FROM users
		WHERE username = $1 AND password = $2`
	return r.scanUser(ctx, query, username, password)
}

func (r *postgresUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, password, role, evaluator_id
		FROM users
		WHERE username = $1`
	return r.scanUser(ctx, query, username)
}

func (r *postgresUserRepository) scanUser(ctx context.Context, query string, args ...interface{}) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.Role,
		&user.EvaluatorID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
