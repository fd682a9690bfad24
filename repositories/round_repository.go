package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hackovate/judging-portal/models"
)

var ErrRoundNotFound = errors.New("round not found")

type RoundRepository interface {
	// List returns every round ordered by sequence.
	List(ctx context.Context) ([]models.Round, error)
	GetByID(ctx context.Context, id int) (*models.Round, error)
	Create(ctx context.Context, round *models.Round) error

	// ClearActive and SetActiveFlag take an SQLExecutor so the service layer
	// can run both inside one transaction: activating a round must never be
	// observable as a state with zero active rounds.
	ClearActive(ctx context.Context, exec SQLExecutor) error
	SetActiveFlag(ctx context.Context, exec SQLExecutor, id int, active bool) error
}

type postgresRoundRepository struct {
	db *sql.DB
}

func NewPostgresRoundRepository(db *sql.DB) RoundRepository {
	return &postgresRoundRepository{db: db}
}

func (r *postgresRoundRepository) List(ctx context.Context) ([]models.Round, error) {
	query := `
		SELECT id, name, sequence, is_active
		FROM rounds
		ORDER BY sequence`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rounds := make([]models.Round, 0)
	for rows.Next() {
		var round models.Round
		if err := rows.Scan(&round.ID, &round.Name, &round.Sequence, &round.IsActive); err != nil {
			return nil, err
		}
		rounds = append(rounds, round)
	}
	return rounds, rows.Err()
}

func (r *postgresRoundRepository) GetByID(ctx context.Context, id int) (*models.Round, error) {
	var round models.Round
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, sequence, is_active FROM rounds WHERE id = $1`, id,
	).Scan(&round.ID, &round.Name, &round.Sequence, &round.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoundNotFound
		}
		return nil, err
	}
	return &round, nil
}

func (r *postgresRoundRepository) Create(ctx context.Context, round *models.Round) error {
	query := `
		INSERT INTO rounds (name, sequence, is_active)
		VALUES ($1, $2, FALSE)
		RETURNING id`

	return r.db.QueryRowContext(ctx, query, round.Name, round.Sequence).Scan(&round.ID)
}

func (r *postgresRoundRepository) ClearActive(ctx context.Context, exec SQLExecutor) error {
	if exec == nil {
		exec = r.db
	}
	_, err := exec.ExecContext(ctx, `UPDATE rounds SET is_active = FALSE WHERE is_active = TRUE`)
	return err
}

func (r *postgresRoundRepository) SetActiveFlag(ctx context.Context, exec SQLExecutor, id int, active bool) error {
	if exec == nil {
		exec = r.db
	}
	result, err := exec.ExecContext(ctx, `UPDATE rounds SET is_active = $1 WHERE id = $2`, active, id)
	if err != nil {
		return err
	}

	rowsAffected, err := checkRowsAffected(result)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRoundNotFound
	}
	return nil
}
