package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hackovate/judging-portal/models"
)

// seedEvaluation is one pre-recorded judging result. Scores line up with the
// round's rubric parameters in insertion order.
type seedEvaluation struct {
	team   string
	scores []float64
	total  float64
}

// Seed populates the reference data on a fresh database: evaluators, teams,
// problem statements, rounds with their rubrics, login accounts and the
// historical evaluations of the first two rounds. It is a no-op once any team
// exists.
func Seed(ctx context.Context, dbConn *sql.DB, logger *slog.Logger) error {
	var teamCount int
	if err := dbConn.QueryRowContext(ctx, `SELECT COUNT(*) FROM teams`).Scan(&teamCount); err != nil {
		return fmt.Errorf("failed to check seed state: %w", err)
	}
	if teamCount > 0 {
		return nil
	}

	tx, err := dbConn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	evaluatorIDs := make(map[string]int)
	for _, name := range []string{"Rishabh", "Srijan", "Ramana"} {
		var id int
		if err := tx.QueryRowContext(ctx,
			`INSERT INTO evaluators (name) VALUES ($1) RETURNING id`, name).Scan(&id); err != nil {
			return fmt.Errorf("failed to seed evaluator %s: %w", name, err)
		}
		evaluatorIDs[name] = id
	}

	teamNames := []string{
		"Codestorm", "MARS", "Codecription", "Rebels", "Winners",
		"Team Triverse", "CodeRed", "BitByBit", "Code101", "4chan",
		"Tech Vengers", "D3CODE", "Hackoholics", "Code Catalyst", "Phoenix",
		"CodeQuad", "TokenX", "Alpha developer", "Team Invictus", "DeCoders",
		"Code Fusion", "4 CLOVER", "Avengers", "TEAM SHOURYANGA", "TriNova Coders",
		"Team Titans", "Central C", "Code Wave", "Binary Architects", "Mind Spark",
	}
	teamIDs := make(map[string]int)
	for _, name := range teamNames {
		var id int
		if err := tx.QueryRowContext(ctx,
			`INSERT INTO teams (name) VALUES ($1) RETURNING id`, name).Scan(&id); err != nil {
			return fmt.Errorf("failed to seed team %s: %w", name, err)
		}
		teamIDs[name] = id
	}

	problemStatements := []struct{ title, theme string }{
		{"PartySync", "Productivity & Time-Saving Tools"},
		{"AcademiFlow", "Productivity & Time-Saving Tools"},
		{"FlowSync", "Smart Infrastructure & Urban Development"},
		{"AquaGuard", "Smart Infrastructure & Urban Development"},
		{"Sound-Wave", "Financial Inclusion"},
		{"FinTok Truth Detector", "Financial Inclusion"},
		{"AlumniGraph", "Future of Works and Careers"},
		{"The Skill Translator", "Future of Works and Careers"},
		{"DrishtiNav", "Health & Well-Being Technology"},
		{"Geo-Infect", "Health & Well-Being Technology"},
		{"Svayam-Adhyayi", "Learning & Skill Development"},
		{"GuardianLink", "Learning & Skill Development"},
		{"DhartiSeva", "Rural & Grassroots Innovation"},
		{"The Pocket Agronomist", "Rural & Grassroots Innovation"},
		{"CarbonSync", "Sustainable & Green Solutions"},
		{"Poseidon’s Pulse", "Sustainable & Green Solutions"},
		{"PumpWatch", "Safety, Trust & Responsible Technology"},
		{"Deepfake Defender", "Safety, Trust & Responsible Technology"},
	}
	psIDs := make(map[string]int)
	for _, ps := range problemStatements {
		var id int
		if err := tx.QueryRowContext(ctx,
			`INSERT INTO problem_statements (title, theme) VALUES ($1, $2) RETURNING id`,
			ps.title, ps.theme).Scan(&id); err != nil {
			return fmt.Errorf("failed to seed problem statement %s: %w", ps.title, err)
		}
		psIDs[ps.title] = id
	}

	type seedRound struct {
		name     string
		sequence int
		rubric   []struct {
			name     string
			maxScore int
		}
	}
	rounds := []seedRound{
		{"Round 1: Ideation", 1, []struct {
			name     string
			maxScore int
		}{
			{"Problem Understanding & Requirement Clarity", 10},
			{"Feasibility & Scope", 5},
			{"Implementation Roadmap", 10},
			{"Technical Approach", 5},
		}},
		{"Round 2: Implementation", 2, []struct {
			name     string
			maxScore int
		}{
			{"Core Functionalities Implemented", 10},
			{"Scalability & System Design", 5},
			{"UI/UX & Usability", 10},
			{"USP / Innovation", 5},
		}},
		{"Round 3: Final Pitch", 3, []struct {
			name     string
			maxScore int
		}{
			{"Problem–Solution Fit", 10},
			{"Demonstration Quality", 10},
			{"Team Collaboration", 5},
			{"Overall Impact & Viability", 15},
		}},
	}

	roundIDs := make([]int, len(rounds))
	paramIDs := make([][]models.ParameterID, len(rounds))
	for i, round := range rounds {
		var roundID int
		if err := tx.QueryRowContext(ctx,
			`INSERT INTO rounds (name, sequence) VALUES ($1, $2) RETURNING id`,
			round.name, round.sequence).Scan(&roundID); err != nil {
			return fmt.Errorf("failed to seed round %s: %w", round.name, err)
		}
		roundIDs[i] = roundID

		for _, p := range round.rubric {
			var paramID int
			if err := tx.QueryRowContext(ctx,
				`INSERT INTO parameters (round_id, name, max_score) VALUES ($1, $2, $3) RETURNING id`,
				roundID, p.name, p.maxScore).Scan(&paramID); err != nil {
				return fmt.Errorf("failed to seed parameter %s: %w", p.name, err)
			}
			paramIDs[i] = append(paramIDs[i], models.ParameterID(paramID))
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO users (username, password, role) VALUES ($1, $2, $3)`,
		"admin", "admin123", models.RoleAdmin); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	for name, evaluatorID := range evaluatorIDs {
		password := strings.ToLower(name) + "123"
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO users (username, password, role, evaluator_id) VALUES ($1, $2, $3, $4)`,
			name, password, models.RoleJudge, evaluatorID); err != nil {
			return fmt.Errorf("failed to seed judge user %s: %w", name, err)
		}
	}

	assignments := map[string][]string{
		"GuardianLink":          {"Codestorm", "4chan", "Hackoholics", "Code Catalyst", "TriNova Coders", "Central C", "Code Wave"},
		"AcademiFlow":           {"Winners", "CodeQuad", "Team Invictus", "DeCoders", "4 CLOVER", "Team Titans"},
		"Sound-Wave":            {"Team Triverse", "D3CODE", "Mind Spark"},
		"FinTok Truth Detector": {"TEAM SHOURYANGA", "Binary Architects"},
		"The Pocket Agronomist": {"Phoenix", "Code Fusion"},
		"PumpWatch":             {"Codecription", "CodeRed"},
		"AlumniGraph":           {"Tech Vengers"},
		"CarbonSync":            {"BitByBit"},
		"Deepfake Defender":     {"Code101"},
		"FlowSync":              {"Avengers"},
		"Geo-Infect":            {"Rebels"},
		"PartySync":             {"TokenX"},
		"Svayam-Adhyayi":        {"Alpha developer"},
		"The Skill Translator":  {"MARS"},
	}
	teamPS := make(map[string]int)
	for psTitle, names := range assignments {
		psID, ok := psIDs[psTitle]
		if !ok {
			continue
		}
		for _, teamName := range names {
			if _, err := tx.ExecContext(ctx,
				`UPDATE teams SET problem_statement_id = $1 WHERE id = $2`,
				psID, teamIDs[teamName]); err != nil {
				return fmt.Errorf("failed to assign problem statement to %s: %w", teamName, err)
			}
			teamPS[teamName] = psID
		}
	}

	round1Rishabh := []seedEvaluation{
		{"Codestorm", []float64{8, 4, 8, 4}, 24},
		{"MARS", []float64{6, 3, 4, 1}, 14},
		{"Codecription", []float64{2, 1, 1, 1}, 5},
		{"Rebels", []float64{9, 5, 9, 5}, 28},
		{"Winners", []float64{10, 3, 6, 4}, 23},
		{"Team Triverse", []float64{10, 4, 9, 4}, 27},
		{"CodeRed", []float64{9, 4, 8, 4}, 25},
		{"BitByBit", []float64{6, 4, 4, 2}, 16},
		{"Code101", []float64{7, 2, 2, 2}, 13},
		{"4chan", []float64{7, 3, 6, 2}, 18},
		{"Tech Vengers", []float64{9, 5, 9, 4}, 27},
		{"D3CODE", []float64{9, 4, 9, 5}, 27},
		{"Hackoholics", []float64{5, 2, 4, 0}, 11},
		{"Code Catalyst", []float64{5, 4, 3, 1}, 13},
		{"Phoenix", []float64{3, 2, 2, 1}, 8},
		{"CodeQuad", []float64{4, 2, 3, 2}, 11},
		{"TokenX", []float64{8, 4, 5, 3}, 20},
		{"Alpha developer", []float64{3, 0, 0, 0}, 3},
		{"Team Invictus", []float64{4, 2, 4, 3}, 13},
		{"DeCoders", []float64{3, 1, 2, 1}, 7},
		{"Code Fusion", []float64{7, 2, 3, 2}, 14},
		{"4 CLOVER", []float64{5, 2, 3, 1}, 11},
		{"Avengers", []float64{5, 2, 3, 2}, 12},
		{"TEAM SHOURYANGA", []float64{2, 1, 1, 0}, 4},
		{"TriNova Coders", []float64{5, 2, 3, 1}, 11},
		{"Team Titans", []float64{6, 4, 5, 2}, 17},
		{"Central C", []float64{9, 4, 6, 3}, 22},
		{"Code Wave", []float64{8, 4, 5, 2}, 19},
		{"Binary Architects", []float64{4, 2, 1, 0}, 7},
		{"Mind Spark", []float64{4, 0, 1, 1}, 6},
	}
	round1Srijan := []seedEvaluation{
		{"Codestorm", []float64{9, 5, 8, 4}, 26},
		{"MARS", []float64{7, 3, 5, 2}, 17},
		{"Codecription", []float64{4, 0, 1, 2}, 7},
		{"Rebels", []float64{10, 5, 10, 5}, 30},
		{"Winners", []float64{10, 3, 6, 4}, 23},
		{"Team Triverse", []float64{10, 3, 7, 5}, 25},
		{"CodeRed", []float64{9, 4, 9, 5}, 27},
		{"BitByBit", []float64{7, 4, 5, 0}, 16},
		{"Code101", []float64{8, 2, 3, 3}, 16},
		{"4chan", []float64{8, 3, 7, 2}, 20},
		{"Tech Vengers", []float64{10, 5, 8, 5}, 28},
		{"D3CODE", []float64{10, 3, 7, 4}, 24},
		{"Hackoholics", []float64{6, 2, 5, 0}, 13},
		{"Code Catalyst", []float64{6, 3, 4, 2}, 15},
		{"Phoenix", []float64{4, 2, 0, 0}, 6},
		{"CodeQuad", []float64{5, 2, 3, 1}, 11},
		{"TokenX", []float64{9, 5, 6, 2}, 22},
		{"Alpha developer", []float64{4, 0, 0, 0}, 4},
		{"Team Invictus", []float64{5, 2, 6, 2}, 15},
		{"DeCoders", []float64{5, 0, 3, 0}, 8},
		{"Code Fusion", []float64{8, 3, 4, 2}, 17},
		{"4 CLOVER", []float64{6, 2, 4, 0}, 12},
		{"Avengers", []float64{7, 2, 5, 3}, 17},
		{"TEAM SHOURYANGA", []float64{4, 2, 0, 2}, 8},
		{"TriNova Coders", []float64{7, 3, 5, 1}, 16},
		{"Team Titans", []float64{7, 4, 5, 3}, 19},
		{"Central C", []float64{8, 5, 8, 4}, 25},
		{"Code Wave", []float64{8, 4, 6, 3}, 21},
		{"Binary Architects", []float64{6, 3, 0, 0}, 9},
		{"Mind Spark", []float64{5, 0, 0, 1}, 6},
	}
	round2Rishabh := []seedEvaluation{
		{"Team Invictus", []float64{10, 4, 9, 1}, 24},
		{"Tech Vengers", []float64{8, 4, 7, 5}, 24},
		{"Team Triverse", []float64{6, 3, 7, 2}, 18},
		{"Mind Spark", []float64{7, 2, 7, 2}, 18},
		{"Team Titans", []float64{8, 2, 7, 1}, 18},
		{"Code101", []float64{7, 2, 6, 2}, 17},
		{"D3CODE", []float64{7, 3, 2, 2}, 14},
		{"Central C", []float64{7, 1, 4, 2}, 14},
		{"CodeQuad", []float64{6, 1, 4, 1}, 12},
		{"Code Catalyst", []float64{4, 1, 4, 1}, 10},
		{"TriNova Coders", []float64{5, 1, 2, 2}, 10},
		{"Alpha developer", []float64{3, 1, 4, 1}, 9},
		{"4chan", []float64{2, 1, 2, 1}, 6},
		{"Code Wave", []float64{1, 1, 1, 1}, 4},
	}
	round2Srijan := []seedEvaluation{
		{"Central C", []float64{10, 4, 8, 5}, 27},
		{"Tech Vengers", []float64{10, 5, 6, 5}, 26},
		{"Team Invictus", []float64{10, 4, 8, 3}, 25},
		{"Team Titans", []float64{8, 2, 10, 3}, 23},
		{"Code101", []float64{7, 3, 7, 3}, 20},
		{"Team Triverse", []float64{7, 3, 6, 1}, 17},
		{"Mind Spark", []float64{5, 2, 7, 2}, 16},
		{"TriNova Coders", []float64{6, 2, 6, 1}, 15},
		{"CodeQuad", []float64{6, 2, 5, 1}, 14},
		{"D3CODE", []float64{6, 3, 2, 2}, 13},
		{"Code Catalyst", []float64{4, 1, 3, 1}, 9},
		{"4chan", []float64{3, 1, 4, 1}, 9},
		{"Alpha developer", []float64{1, 1, 1, 1}, 4},
		{"Code Wave", []float64{1, 1, 1, 1}, 4},
	}

	batches := []struct {
		evaluator string
		round     int // index into roundIDs/paramIDs
		feedback  string
		rows      []seedEvaluation
	}{
		{"Rishabh", 0, "Initial round evaluation", round1Rishabh},
		{"Srijan", 0, "Initial round evaluation", round1Srijan},
		{"Rishabh", 1, "Round 2 evaluation", round2Rishabh},
		{"Srijan", 1, "Round 2 evaluation", round2Srijan},
	}

	for _, batch := range batches {
		for _, row := range batch.rows {
			scores := make(models.ScoreMap, len(row.scores))
			for i, score := range row.scores {
				scores[paramIDs[batch.round][i]] = score
			}
			encoded, err := scores.Encode()
			if err != nil {
				return fmt.Errorf("failed to encode seed scores for %s: %w", row.team, err)
			}

			var psID *int
			if id, ok := teamPS[row.team]; ok {
				psID = &id
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO evaluations (team_id, round_id, evaluator_id, problem_statement_id, scores, feedback, total_score)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				teamIDs[row.team], roundIDs[batch.round], evaluatorIDs[batch.evaluator],
				psID, encoded, batch.feedback, row.total); err != nil {
				return fmt.Errorf("failed to seed evaluation for %s: %w", row.team, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	logger.Info("database seeded",
		slog.Int("teams", len(teamNames)),
		slog.Int("problem_statements", len(problemStatements)),
		slog.Int("rounds", len(rounds)))
	return nil
}
