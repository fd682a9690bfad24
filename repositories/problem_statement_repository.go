package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hackovate/judging-portal/models"
)

var ErrProblemStatementNotFound = errors.New("problem statement not found")

type ProblemStatementRepository interface {
	List(ctx context.Context) ([]models.ProblemStatement, error)
	GetByID(ctx context.Context, id int) (*models.ProblemStatement, error)
}

type postgresProblemStatementRepository struct {
	db *sql.DB
}

func NewPostgresProblemStatementRepository(db *sql.DB) ProblemStatementRepository {
	return &postgresProblemStatementRepository{db: db}
}

func (r *postgresProblemStatementRepository) List(ctx context.Context) ([]models.ProblemStatement, error) {
	query := `
		SELECT id, title, COALESCE(theme, ''), COALESCE(description, '')
		FROM problem_statements
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statements := make([]models.ProblemStatement, 0)
	for rows.Next() {
		var ps models.ProblemStatement
		if err := rows.Scan(&ps.ID, &ps.Title, &ps.Theme, &ps.Description); err != nil {
			return nil, err
		}
		statements = append(statements, ps)
	}
	return statements, rows.Err()
}

func (r *postgresProblemStatementRepository) GetByID(ctx context.Context, id int) (*models.ProblemStatement, error) {
	query := `
		SELECT id, title, COALESCE(theme, ''), COALESCE(description, '')
		FROM problem_statements
		WHERE id = $1`

	var ps models.ProblemStatement
	err := r.db.QueryRowContext(ctx, query, id).Scan(&ps.ID, &ps.Title, &ps.Theme, &ps.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProblemStatementNotFound
		}
		return nil, err
	}
	return &ps, nil
}
