package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hackovate/judging-portal/models"
	"github.com/hackovate/judging-portal/repositories"
)

// StandingsNotifier is told after every evaluation mutation so live views can
// push fresh standings. Implementations must not block.
type StandingsNotifier interface {
	EvaluationsChanged()
}

type EvaluationService interface {
	ListEvaluations(ctx context.Context) ([]models.Evaluation, error)
	GetForTriple(ctx context.Context, teamID, roundID, evaluatorID int) (*models.Evaluation, error)
	// Submit stores an evaluation for a (team, round, evaluator) triple. It
	// is a keyed upsert: a second submit for the same triple overwrites the
	// first row instead of producing a duplicate.
	Submit(ctx context.Context, input SubmitEvaluationInput) (*models.Evaluation, error)
	Update(ctx context.Context, id int, input UpdateEvaluationInput) error
	Delete(ctx context.Context, id int) error
}

type SubmitEvaluationInput struct {
	TeamID             int             `json:"team_id" validate:"required,gt=0"`
	RoundID            int             `json:"round_id" validate:"required,gt=0"`
	EvaluatorID        int             `json:"evaluator_id" validate:"required,gt=0"`
	ProblemStatementID *int            `json:"problem_statement_id"`
	Scores             models.ScoreMap `json:"scores"`
	Feedback           string          `json:"feedback"`
	TotalScore         float64         `json:"total_score"`
}

type UpdateEvaluationInput struct {
	Scores     models.ScoreMap `json:"scores"`
	Feedback   string          `json:"feedback"`
	TotalScore float64         `json:"total_score"`
}

type evaluationService struct {
	evaluationRepo repositories.EvaluationRepository
	parameterRepo  repositories.ParameterRepository
	notifier       StandingsNotifier // optional
}

func NewEvaluationService(
	evaluationRepo repositories.EvaluationRepository,
	parameterRepo repositories.ParameterRepository,
	notifier StandingsNotifier,
) EvaluationService {
	return &evaluationService{
		evaluationRepo: evaluationRepo,
		parameterRepo:  parameterRepo,
		notifier:       notifier,
	}
}

func (s *evaluationService) ListEvaluations(ctx context.Context) ([]models.Evaluation, error) {
	evaluations, err := s.evaluationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	return evaluations, nil
}

func (s *evaluationService) GetForTriple(ctx context.Context, teamID, roundID, evaluatorID int) (*models.Evaluation, error) {
	evaluation, err := s.evaluationRepo.GetByTriple(ctx, teamID, roundID, evaluatorID)
	if err != nil {
		if errors.Is(err, repositories.ErrEvaluationNotFound) {
			return nil, ErrEvaluationNotFound
		}
		return nil, fmt.Errorf("failed to look up evaluation: %w", err)
	}
	return evaluation, nil
}

func (s *evaluationService) Submit(ctx context.Context, input SubmitEvaluationInput) (*models.Evaluation, error) {
	scores := input.Scores
	if scores == nil {
		scores = models.ScoreMap{}
	}
	if err := s.validateScores(ctx, input.RoundID, scores); err != nil {
		return nil, err
	}

	evaluation := &models.Evaluation{
		TeamID:             input.TeamID,
		RoundID:            input.RoundID,
		EvaluatorID:        input.EvaluatorID,
		ProblemStatementID: input.ProblemStatementID,
		Scores:             scores,
		Feedback:           strings.TrimSpace(input.Feedback),
		// The stored total is always the sum of the stored scores,
		// regardless of what the caller claims.
		TotalScore: scores.Total(),
	}

	if err := s.evaluationRepo.Upsert(ctx, evaluation); err != nil {
		if errors.Is(err, repositories.ErrEvaluationRefInvalid) {
			return nil, ErrValidationFailed
		}
		return nil, fmt.Errorf("failed to store evaluation: %w", err)
	}

	s.notifyChanged()
	return evaluation, nil
}

func (s *evaluationService) Update(ctx context.Context, id int, input UpdateEvaluationInput) error {
	existing, err := s.evaluationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEvaluationNotFound) {
			return ErrEvaluationNotFound
		}
		return fmt.Errorf("failed to load evaluation %d: %w", id, err)
	}

	scores := input.Scores
	if scores == nil {
		scores = models.ScoreMap{}
	}
	if err := s.validateScores(ctx, existing.RoundID, scores); err != nil {
		return err
	}

	err = s.evaluationRepo.Update(ctx, id, scores, strings.TrimSpace(input.Feedback), scores.Total())
	if err != nil {
		if errors.Is(err, repositories.ErrEvaluationNotFound) {
			return ErrEvaluationNotFound
		}
		return fmt.Errorf("failed to update evaluation %d: %w", id, err)
	}

	s.notifyChanged()
	return nil
}

func (s *evaluationService) Delete(ctx context.Context, id int) error {
	rowsAffected, err := s.evaluationRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete evaluation %d: %w", id, err)
	}
	if rowsAffected == 0 {
		return ErrEvaluationNotFound
	}

	s.notifyChanged()
	return nil
}

// validateScores checks that every scored parameter belongs to the round and
// that each score lies within [0, max_score].
func (s *evaluationService) validateScores(ctx context.Context, roundID int, scores models.ScoreMap) error {
	parameters, err := s.parameterRepo.List(ctx, &roundID)
	if err != nil {
		return fmt.Errorf("failed to load parameters for round %d: %w", roundID, err)
	}

	maxByID := make(map[models.ParameterID]int, len(parameters))
	for _, param := range parameters {
		maxByID[models.ParameterID(param.ID)] = param.MaxScore
	}

	for paramID, score := range scores {
		maxScore, ok := maxByID[paramID]
		if !ok {
			return ErrParameterUnknown
		}
		if score < 0 || score > float64(maxScore) {
			return ErrScoreOutOfRange
		}
	}
	return nil
}

func (s *evaluationService) notifyChanged() {
	if s.notifier != nil {
		s.notifier.EvaluationsChanged()
	}
}
