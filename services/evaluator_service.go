package services

import (
	"context"
	"fmt"

	"github.com/hackovate/judging-portal/models"
	"github.com/hackovate/judging-portal/repositories"
)

type EvaluatorService interface {
	ListEvaluators(ctx context.Context) ([]models.Evaluator, error)
}

type evaluatorService struct {
	evaluatorRepo repositories.EvaluatorRepository
}

func NewEvaluatorService(evaluatorRepo repositories.EvaluatorRepository) EvaluatorService {
	return &evaluatorService{evaluatorRepo: evaluatorRepo}
}

func (s *evaluatorService) ListEvaluators(ctx context.Context) ([]models.Evaluator, error) {
	evaluators, err := s.evaluatorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluators: %w", err)
	}
	return evaluators, nil
}
