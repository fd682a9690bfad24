package models

// Round is one judging phase with its own rubric. At most one round is active
// at a time; only active rounds accept new evaluations.
type Round struct {
	ID       int    `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Sequence int    `json:"sequence" db:"sequence"`
	IsActive bool   `json:"is_active" db:"is_active"`
}

// Parameter is one rubric line item within a round.
type Parameter struct {
	ID       int    `json:"id" db:"id"`
	RoundID  int    `json:"round_id" db:"round_id"`
	Name     string `json:"name" db:"name"`
	MaxScore int    `json:"max_score" db:"max_score"`
}
