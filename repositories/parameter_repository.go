package repositories

import (
	"context"
	"database/sql"

	"github.com/hackovate/judging-portal/models"
)

type ParameterRepository interface {
	// List returns every rubric parameter, filtered to one round when roundID
	// is non-nil.
	List(ctx context.Context, roundID *int) ([]models.Parameter, error)
}

type postgresParameterRepository struct {
	db *sql.DB
}

func NewPostgresParameterRepository(db *sql.DB) ParameterRepository {
	return &postgresParameterRepository{db: db}
}

func (r *postgresParameterRepository) List(ctx context.Context, roundID *int) ([]models.Parameter, error) {
	query := `SELECT id, round_id, name, max_score FROM parameters`
	args := []interface{}{}
	if roundID != nil {
		query += ` WHERE round_id = $1`
		args = append(args, *roundID)
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parameters := make([]models.Parameter, 0)
	for rows.Next() {
		var param models.Parameter
		if err := rows.Scan(&param.ID, &param.RoundID, &param.Name, &param.MaxScore); err != nil {
			return nil, err
		}
		parameters = append(parameters, param)
	}
	return parameters, rows.Err()
}
