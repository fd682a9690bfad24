package services

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/hackovate/judging-portal/models"
	"github.com/hackovate/judging-portal/repositories"
)

// DefaultLeaderboardSize caps leaderboards when the caller does not ask for a
// specific size.
const DefaultLeaderboardSize = 10

type StandingsService interface {
	// Leaderboard ranks teams by summed total score, within one round when
	// roundID is non-nil, across all rounds otherwise.
	Leaderboard(ctx context.Context, roundID *int, limit int) ([]models.LeaderboardEntry, error)
	RoundAverages(ctx context.Context) ([]models.RoundAverage, error)
	ProblemStatementDistribution(ctx context.Context) ([]models.ProblemStatementCount, error)
}

type standingsService struct {
	evaluationRepo repositories.EvaluationRepository
	teamRepo       repositories.TeamRepository
	roundRepo      repositories.RoundRepository
	psRepo         repositories.ProblemStatementRepository
}

func NewStandingsService(
	evaluationRepo repositories.EvaluationRepository,
	teamRepo repositories.TeamRepository,
	roundRepo repositories.RoundRepository,
	psRepo repositories.ProblemStatementRepository,
) StandingsService {
	return &standingsService{
		evaluationRepo: evaluationRepo,
		teamRepo:       teamRepo,
		roundRepo:      roundRepo,
		psRepo:         psRepo,
	}
}

func (s *standingsService) Leaderboard(ctx context.Context, roundID *int, limit int) ([]models.LeaderboardEntry, error) {
	var (
		evaluations []models.Evaluation
		teams       []models.Team
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		evaluations, err = s.evaluationRepo.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		teams, err = s.teamRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load standings data: %w", err)
	}

	return ComputeLeaderboard(evaluations, teams, roundID, limit), nil
}

func (s *standingsService) RoundAverages(ctx context.Context) ([]models.RoundAverage, error) {
	var (
		evaluations []models.Evaluation
		rounds      []models.Round
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		evaluations, err = s.evaluationRepo.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		rounds, err = s.roundRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load round average data: %w", err)
	}

	return ComputeRoundAverages(evaluations, rounds), nil
}

func (s *standingsService) ProblemStatementDistribution(ctx context.Context) ([]models.ProblemStatementCount, error) {
	var (
		teams      []models.Team
		statements []models.ProblemStatement
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		teams, err = s.teamRepo.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		statements, err = s.psRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load distribution data: %w", err)
	}

	return ComputeProblemStatementDistribution(teams, statements), nil
}

// ComputeLeaderboard groups evaluations by team, sums total scores and ranks
// descending. Teams without a single matching evaluation are left out. Ties
// break by team name so the ordering is stable.
func ComputeLeaderboard(evaluations []models.Evaluation, teams []models.Team, roundID *int, limit int) []models.LeaderboardEntry {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}

	names := make(map[int]string, len(teams))
	for _, team := range teams {
		names[team.ID] = team.Name
	}

	totals := make(map[int]*models.LeaderboardEntry)
	for _, evaluation := range evaluations {
		if roundID != nil && evaluation.RoundID != *roundID {
			continue
		}
		entry, ok := totals[evaluation.TeamID]
		if !ok {
			name := evaluation.TeamName
			if name == "" {
				name = names[evaluation.TeamID]
			}
			entry = &models.LeaderboardEntry{TeamID: evaluation.TeamID, TeamName: name}
			totals[evaluation.TeamID] = entry
		}
		entry.TotalScore += evaluation.TotalScore
		entry.Evaluations++
	}

	entries := make([]models.LeaderboardEntry, 0, len(totals))
	for _, entry := range totals {
		entries = append(entries, *entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalScore != entries[j].TotalScore {
			return entries[i].TotalScore > entries[j].TotalScore
		}
		return entries[i].TeamName < entries[j].TeamName
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// ComputeRoundAverages returns the mean total score per round, in round
// sequence order. Rounds with no evaluations report a zero average.
func ComputeRoundAverages(evaluations []models.Evaluation, rounds []models.Round) []models.RoundAverage {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, evaluation := range evaluations {
		sums[evaluation.RoundID] += evaluation.TotalScore
		counts[evaluation.RoundID]++
	}

	averages := make([]models.RoundAverage, 0, len(rounds))
	for _, round := range rounds {
		avg := models.RoundAverage{
			RoundID:     round.ID,
			RoundName:   round.Name,
			Evaluations: counts[round.ID],
		}
		if avg.Evaluations > 0 {
			avg.AverageScore = sums[round.ID] / float64(avg.Evaluations)
		}
		averages = append(averages, avg)
	}
	return averages
}

// ComputeProblemStatementDistribution counts assigned teams per problem
// statement, in statement id order.
func ComputeProblemStatementDistribution(teams []models.Team, statements []models.ProblemStatement) []models.ProblemStatementCount {
	counts := make(map[int]int)
	for _, team := range teams {
		if team.ProblemStatementID != nil {
			counts[*team.ProblemStatementID]++
		}
	}

	distribution := make([]models.ProblemStatementCount, 0, len(statements))
	for _, ps := range statements {
		distribution = append(distribution, models.ProblemStatementCount{
			ProblemStatementID: ps.ID,
			Title:              ps.Title,
			Teams:              counts[ps.ID],
		})
	}
	return distribution
}
