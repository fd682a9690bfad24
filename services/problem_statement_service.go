package services

import (
	"context"
	"fmt"

	"github.com/hackovate/judging-portal/models"
	"github.com/hackovate/judging-portal/repositories"
)

type ProblemStatementService interface {
	ListProblemStatements(ctx context.Context) ([]models.ProblemStatement, error)
}

type problemStatementService struct {
	psRepo repositories.ProblemStatementRepository
}

func NewProblemStatementService(psRepo repositories.ProblemStatementRepository) ProblemStatementService {
	return &problemStatementService{psRepo: psRepo}
}

func (s *problemStatementService) ListProblemStatements(ctx context.Context) ([]models.ProblemStatement, error) {
	statements, err := s.psRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list problem statements: %w", err)
	}
	return statements, nil
}
