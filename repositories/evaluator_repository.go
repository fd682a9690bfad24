package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hackovate/judging-portal/models"
)

var ErrEvaluatorNotFound = errors.New("evaluator not found")

type EvaluatorRepository interface {
	List(ctx context.Context) ([]models.Evaluator, error)
	GetByID(ctx context.Context, id int) (*models.Evaluator, error)
}

type postgresEvaluatorRepository struct {
	db *sql.DB
}

func NewPostgresEvaluatorRepository(db *sql.DB) EvaluatorRepository {
	return &postgresEvaluatorRepository{db: db}
}

func (r *postgresEvaluatorRepository) List(ctx context.Context) ([]models.Evaluator, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM evaluators ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	evaluators := make([]models.Evaluator, 0)
	for rows.Next() {
		var evaluator models.Evaluator
		if err := rows.Scan(&evaluator.ID, &evaluator.Name); err != nil {
			return nil, err
		}
		evaluators = append(evaluators, evaluator)
	}
	return evaluators, rows.Err()
}

func (r *postgresEvaluatorRepository) GetByID(ctx context.Context, id int) (*models.Evaluator, error) {
	var evaluator models.Evaluator
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM evaluators WHERE id = $1`, id,
	).Scan(&evaluator.ID, &evaluator.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEvaluatorNotFound
		}
		return nil, err
	}
	return &evaluator, nil
}
