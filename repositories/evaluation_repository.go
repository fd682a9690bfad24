package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hackovate/judging-portal/models"
	"github.com/lib/pq"
)

var (
	ErrEvaluationNotFound   = errors.New("evaluation not found")
	ErrEvaluationConflict   = errors.New("evaluation already exists for this team, round and evaluator")
	ErrEvaluationRefInvalid = errors.New("evaluation references a missing team, round, evaluator or problem statement")
)

type EvaluationRepository interface {
	// List returns every evaluation enriched with team, round, evaluator and
	// problem statement display names, newest first.
	List(ctx context.Context) ([]models.Evaluation, error)
	GetByID(ctx context.Context, id int) (*models.Evaluation, error)
	// GetByTriple looks up the single evaluation for a (team, round,
	// evaluator) combination, returning ErrEvaluationNotFound when absent.
	GetByTriple(ctx context.Context, teamID, roundID, evaluatorID int) (*models.Evaluation, error)
	Create(ctx context.Context, evaluation *models.Evaluation) error
	// Update overwrites the score map, feedback and total and refreshes the
	// timestamp.
	Update(ctx context.Context, id int, scores models.ScoreMap, feedback string, totalScore float64) error
	// Upsert inserts the evaluation, or overwrites the existing row for the
	// same (team, round, evaluator) triple. The id of the surviving row is
	// written back into the model.
	Upsert(ctx context.Context, evaluation *models.Evaluation) error
	// Delete removes the row and reports how many rows were affected, so the
	// caller can distinguish not-found (0) from success.
	Delete(ctx context.Context, id int) (int64, error)
}

type postgresEvaluationRepository struct {
	db *sql.DB
}

func NewPostgresEvaluationRepository(db *sql.DB) EvaluationRepository {
	return &postgresEvaluationRepository{db: db}
}

func (r *postgresEvaluationRepository) List(ctx context.Context) ([]models.Evaluation, error) {
	query := `
		SELECT
			e.id, e.team_id, e.round_id, e.evaluator_id, e.problem_statement_id,
			e.scores, COALESCE(e.feedback, ''), e.total_score, e.created_at,
			t.name, r.name, ev.name, ps.title
		FROM evaluations e
		JOIN teams t ON e.team_id = t.id
		JOIN rounds r ON e.round_id = r.id
		JOIN evaluators ev ON e.evaluator_id = ev.id
		LEFT JOIN problem_statements ps ON e.problem_statement_id = ps.id
		ORDER BY e.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	evaluations := make([]models.Evaluation, 0)
	for rows.Next() {
		var evaluation models.Evaluation
		if err := rows.Scan(
			&evaluation.ID,
			&evaluation.TeamID,
			&evaluation.RoundID,
			&evaluation.EvaluatorID,
			&evaluation.ProblemStatementID,
			&evaluation.Scores,
			&evaluation.Feedback,
			&evaluation.TotalScore,
			&evaluation.CreatedAt,
			&evaluation.TeamName,
			&evaluation.RoundName,
			&evaluation.EvaluatorName,
			&evaluation.PSTitle,
		); err != nil {
			return nil, err
		}
		evaluations = append(evaluations, evaluation)
	}
	return evaluations, rows.Err()
}

func (r *postgresEvaluationRepository) GetByID(ctx context.Context, id int) (*models.Evaluation, error) {
	query := `
		SELECT id, team_id, round_id, evaluator_id, problem_statement_id,
		       scores, COALESCE(feedback, ''), total_score, created_at
		FROM evaluations
		WHERE id = $1`
	return r.scanEvaluation(ctx, query, id)
}

func (r *postgresEvaluationRepository) GetByTriple(ctx context.Context, teamID, roundID, evaluatorID int) (*models.Evaluation, error) {
	query := `
		SELECT id, team_id, round_id, evaluator_id, problem_statement_id,
		       scores, COALESCE(feedback, ''), total_score, created_at
		FROM evaluations
		WHERE team_id = $1 AND round_id = $2 AND evaluator_id = $3`
	return r.scanEvaluation(ctx, query, teamID, roundID, evaluatorID)
}

func (r *postgresEvaluationRepository) Create(ctx context.Context, evaluation *models.Evaluation) error {
	query := `
		INSERT INTO evaluations (team_id, round_id, evaluator_id, problem_statement_id, scores, feedback, total_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		evaluation.TeamID,
		evaluation.RoundID,
		evaluation.EvaluatorID,
		evaluation.ProblemStatementID,
		evaluation.Scores,
		evaluation.Feedback,
		evaluation.TotalScore,
	).Scan(&evaluation.ID, &evaluation.CreatedAt)
	if err != nil {
		return r.mapWriteError(err)
	}
	return nil
}

func (r *postgresEvaluationRepository) Update(ctx context.Context, id int, scores models.ScoreMap, feedback string, totalScore float64) error {
	query := `
		UPDATE evaluations
		SET scores = $1, feedback = $2, total_score = $3, created_at = now()
		WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query, scores, feedback, totalScore, id)
	if err != nil {
		return err
	}

	rowsAffected, err := checkRowsAffected(result)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrEvaluationNotFound
	}
	return nil
}

func (r *postgresEvaluationRepository) Upsert(ctx context.Context, evaluation *models.Evaluation) error {
	query := `
		INSERT INTO evaluations (team_id, round_id, evaluator_id, problem_statement_id, scores, feedback, total_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT ON CONSTRAINT evaluations_team_round_evaluator_key DO UPDATE SET
			problem_statement_id = EXCLUDED.problem_statement_id,
			scores = EXCLUDED.scores,
			feedback = EXCLUDED.feedback,
			total_score = EXCLUDED.total_score,
			created_at = now()
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		evaluation.TeamID,
		evaluation.RoundID,
		evaluation.EvaluatorID,
		evaluation.ProblemStatementID,
		evaluation.Scores,
		evaluation.Feedback,
		evaluation.TotalScore,
	).Scan(&evaluation.ID, &evaluation.CreatedAt)
	if err != nil {
		return r.mapWriteError(err)
	}
	return nil
}

func (r *postgresEvaluationRepository) Delete(ctx context.Context, id int) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM evaluations WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return checkRowsAffected(result)
}

func (r *postgresEvaluationRepository) scanEvaluation(ctx context.Context, query string, args ...interface{}) (*models.Evaluation, error) {
	evaluation := &models.Evaluation{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&evaluation.ID,
		&evaluation.TeamID,
		&evaluation.RoundID,
		&evaluation.EvaluatorID,
		&evaluation.ProblemStatementID,
		&evaluation.Scores,
		&evaluation.Feedback,
		&evaluation.TotalScore,
		&evaluation.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEvaluationNotFound
		}
		return nil, err
	}
	return evaluation, nil
}

func (r *postgresEvaluationRepository) mapWriteError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505": // unique_violation
			if pqErr.Constraint == "evaluations_team_round_evaluator_key" {
				return ErrEvaluationConflict
			}
		case "23503": // foreign_key_violation
			return ErrEvaluationRefInvalid
		}
	}
	return err
}
