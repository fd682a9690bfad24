package services

import "errors"

// Shared errors used across services and the HTTP error mapping.
var (
	ErrNotFound         = errors.New("requested resource not found")
	ErrValidationFailed = errors.New("validation failed")

	// Authentication
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Business-rule errors
	ErrTeamNameRequired     = errors.New("team name is required")
	ErrRoundNameRequired    = errors.New("round name is required")
	ErrRoundSequenceInvalid = errors.New("round sequence must be positive")
	ErrScoreOutOfRange      = errors.New("score is outside the allowed range for its parameter")
	ErrParameterUnknown     = errors.New("score references a parameter that does not belong to the round")
	ErrLogoUploadsDisabled  = errors.New("logo uploads are not configured")

	// Entity-specific not-found errors (more context than ErrNotFound)
	ErrTeamNotFound             = errors.New("team not found")
	ErrRoundNotFound            = errors.New("round not found")
	ErrEvaluatorNotFound        = errors.New("evaluator not found")
	ErrProblemStatementNotFound = errors.New("problem statement not found")
	ErrEvaluationNotFound       = errors.New("evaluation not found")
)
