package services

import (
	"context"
	"fmt"

	"github.com/hackovate/judging-portal/models"
	"github.com/hackovate/judging-portal/repositories"
)

type ParameterService interface {
	// ListParameters returns the rubric, optionally filtered to one round.
	ListParameters(ctx context.Context, roundID *int) ([]models.Parameter, error)
}

type parameterService struct {
	parameterRepo repositories.ParameterRepository
}

func NewParameterService(parameterRepo repositories.ParameterRepository) ParameterService {
	return &parameterService{parameterRepo: parameterRepo}
}

func (s *parameterService) ListParameters(ctx context.Context, roundID *int) ([]models.Parameter, error) {
	parameters, err := s.parameterRepo.List(ctx, roundID)
	if err != nil {
		return nil, fmt.Errorf("failed to list parameters: %w", err)
	}
	return parameters, nil
}
