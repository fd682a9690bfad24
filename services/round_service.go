package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/hackovate/judging-portal/models"
	"github.com/hackovate/judging-portal/repositories"
)

type RoundService interface {
	ListRounds(ctx context.Context) ([]models.Round, error)
	CreateRound(ctx context.Context, input CreateRoundInput) (*models.Round, error)
	// SetActiveRound toggles a round's active flag. Activating clears every
	// other round's flag in the same transaction, so exactly one round is
	// active afterwards no matter where a crash lands.
	SetActiveRound(ctx context.Context, id int, active bool) error
}

type CreateRoundInput struct {
	Name     string `json:"name" validate:"required"`
	Sequence int    `json:"sequence" validate:"required,gt=0"`
}

type roundService struct {
	db        *sql.DB
	roundRepo repositories.RoundRepository
}

func NewRoundService(db *sql.DB, roundRepo repositories.RoundRepository) RoundService {
	return &roundService{
		db:        db,
		roundRepo: roundRepo,
	}
}

func (s *roundService) ListRounds(ctx context.Context) ([]models.Round, error) {
	rounds, err := s.roundRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}
	return rounds, nil
}

func (s *roundService) CreateRound(ctx context.Context, input CreateRoundInput) (*models.Round, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrRoundNameRequired
	}
	if input.Sequence <= 0 {
		return nil, ErrRoundSequenceInvalid
	}

	round := &models.Round{
		Name:     name,
		Sequence: input.Sequence,
	}
	if err := s.roundRepo.Create(ctx, round); err != nil {
		return nil, fmt.Errorf("failed to create round: %w", err)
	}
	return round, nil
}

func (s *roundService) SetActiveRound(ctx context.Context, id int, active bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if active {
		if err := s.roundRepo.ClearActive(ctx, tx); err != nil {
			return fmt.Errorf("failed to clear active rounds: %w", err)
		}
	}
	if err := s.roundRepo.SetActiveFlag(ctx, tx, id, active); err != nil {
		if errors.Is(err, repositories.ErrRoundNotFound) {
			return ErrRoundNotFound
		}
		return fmt.Errorf("failed to set round active flag: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit active round change: %w", err)
	}
	return nil
}
