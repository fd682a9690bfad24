package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hackovate/judging-portal/models"
	"github.com/hackovate/judging-portal/repositories"
	"github.com/hackovate/judging-portal/storage"
)

type TeamService interface {
	ListTeams(ctx context.Context) ([]models.Team, error)
	CreateTeam(ctx context.Context, input CreateTeamInput) (*models.Team, error)
	// AssignProblemStatement links a team to a problem statement. The
	// statement must exist; assignment to a missing one is rejected rather
	// than silently ignored.
	AssignProblemStatement(ctx context.Context, teamID, problemStatementID int) error
	UploadLogo(ctx context.Context, teamID int, contentType string, reader io.Reader) (*models.Team, error)
}

type CreateTeamInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type teamService struct {
	teamRepo repositories.TeamRepository
	psRepo   repositories.ProblemStatementRepository
	uploader storage.FileUploader // nil when logo uploads are disabled
}

func NewTeamService(
	teamRepo repositories.TeamRepository,
	psRepo repositories.ProblemStatementRepository,
	uploader storage.FileUploader,
) TeamService {
	return &teamService{
		teamRepo: teamRepo,
		psRepo:   psRepo,
		uploader: uploader,
	}
}

func (s *teamService) ListTeams(ctx context.Context) ([]models.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	if s.uploader != nil {
		for i := range teams {
			if teams[i].LogoKey != nil {
				url := s.uploader.GetPublicURL(*teams[i].LogoKey)
				teams[i].LogoURL = &url
			}
		}
	}
	return teams, nil
}

func (s *teamService) CreateTeam(ctx context.Context, input CreateTeamInput) (*models.Team, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTeamNameRequired
	}

	team := &models.Team{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
	}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return team, nil
}

func (s *teamService) AssignProblemStatement(ctx context.Context, teamID, problemStatementID int) error {
	if _, err := s.psRepo.GetByID(ctx, problemStatementID); err != nil {
		if errors.Is(err, repositories.ErrProblemStatementNotFound) {
			return ErrProblemStatementNotFound
		}
		return fmt.Errorf("failed to verify problem statement %d: %w", problemStatementID, err)
	}

	err := s.teamRepo.AssignProblemStatement(ctx, teamID, problemStatementID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrTeamNotFound):
			return ErrTeamNotFound
		case errors.Is(err, repositories.ErrTeamPSInvalid):
			return ErrProblemStatementNotFound
		}
		return fmt.Errorf("failed to assign problem statement: %w", err)
	}
	return nil
}

func (s *teamService) UploadLogo(ctx context.Context, teamID int, contentType string, reader io.Reader) (*models.Team, error) {
	if s.uploader == nil {
		return nil, ErrLogoUploadsDisabled
	}

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team %d: %w", teamID, err)
	}

	key := fmt.Sprintf("teams/%d/logo-%d", teamID, time.Now().UnixNano())
	result, err := s.uploader.Upload(ctx, key, contentType, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to upload team logo: %w", err)
	}

	oldKey := team.LogoKey
	if err := s.teamRepo.UpdateLogoKey(ctx, teamID, &result.Key); err != nil {
		return nil, fmt.Errorf("failed to store team logo key: %w", err)
	}
	if oldKey != nil && *oldKey != result.Key {
		// Best effort; a dangling object is harmless.
		_ = s.uploader.Delete(ctx, *oldKey)
	}

	team.LogoKey = &result.Key
	team.LogoURL = &result.Location
	return team, nil
}
