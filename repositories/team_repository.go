package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hackovate/judging-portal/models"
	"github.com/lib/pq"
)

var (
	ErrTeamNotFound  = errors.New("team not found")
	ErrTeamPSInvalid = errors.New("team problem statement reference invalid")
)

type TeamRepository interface {
	List(ctx context.Context) ([]models.Team, error)
	GetByID(ctx context.Context, id int) (*models.Team, error)
	Create(ctx context.Context, team *models.Team) error
	AssignProblemStatement(ctx context.Context, teamID, problemStatementID int) error
	UpdateLogoKey(ctx context.Context, teamID int, logoKey *string) error
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

func (r *postgresTeamRepository) List(ctx context.Context) ([]models.Team, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), problem_statement_id, logo_key
		FROM teams
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		var team models.Team
		if err := rows.Scan(&team.ID, &team.Name, &team.Description, &team.ProblemStatementID, &team.LogoKey); err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	return teams, rows.Err()
}

func (r *postgresTeamRepository) GetByID(ctx context.Context, id int) (*models.Team, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), problem_statement_id, logo_key
		FROM teams
		WHERE id = $1`

	var team models.Team
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&team.ID, &team.Name, &team.Description, &team.ProblemStatementID, &team.LogoKey,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

func (r *postgresTeamRepository) Create(ctx context.Context, team *models.Team) error {
	query := `
		INSERT INTO teams (name, description)
		VALUES ($1, $2)
		RETURNING id`

	return r.db.QueryRowContext(ctx, query, team.Name, team.Description).Scan(&team.ID)
}

func (r *postgresTeamRepository) AssignProblemStatement(ctx context.Context, teamID, problemStatementID int) error {
	query := `UPDATE teams SET problem_statement_id = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, problemStatementID, teamID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return ErrTeamPSInvalid
		}
		return err
	}

	rowsAffected, err := checkRowsAffected(result)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTeamNotFound
	}
	return nil
}

func (r *postgresTeamRepository) UpdateLogoKey(ctx context.Context, teamID int, logoKey *string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE teams SET logo_key = $1 WHERE id = $2`, logoKey, teamID)
	if err != nil {
		return err
	}

	rowsAffected, err := checkRowsAffected(result)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTeamNotFound
	}
	return nil
}
