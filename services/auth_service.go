package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hackovate/judging-portal/models"
	"github.com/hackovate/judging-portal/repositories"
)

type AuthService interface {
	// Login performs the exact-match credential comparison and returns the
	// matching account. No token or session is issued; the caller holds the
	// returned user for the lifetime of its own session object.
	Login(ctx context.Context, creds models.Credentials) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Login(ctx context.Context, creds models.Credentials) (*models.User, error) {
	username := strings.TrimSpace(creds.Username)
	if username == "" || creds.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByCredentials(ctx, username, creds.Password)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up credentials: %w", err)
	}
	return user, nil
}
