package models

// LeaderboardEntry is one team's position in a leaderboard, either within a
// single round or across all rounds.
type LeaderboardEntry struct {
	Rank        int     `json:"rank"`
	TeamID      int     `json:"team_id"`
	TeamName    string  `json:"team_name"`
	TotalScore  float64 `json:"total_score"`
	Evaluations int     `json:"evaluations"`
}

// RoundAverage is the mean total score over every evaluation in a round.
type RoundAverage struct {
	RoundID      int     `json:"round_id"`
	RoundName    string  `json:"round_name"`
	AverageScore float64 `json:"average_score"`
	Evaluations  int     `json:"evaluations"`
}

// ProblemStatementCount is how many teams picked one problem statement.
type ProblemStatementCount struct {
	ProblemStatementID int    `json:"problem_statement_id"`
	Title              string `json:"title"`
	Teams              int    `json:"teams"`
}
