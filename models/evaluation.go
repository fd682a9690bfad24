package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ParameterID identifies a rubric parameter inside a score map.
type ParameterID int

// ScoreMap maps rubric parameters to the score a judge awarded. It is
// persisted as JSON text keyed by parameter id, and the codec round-trips
// exactly, including the empty map.
type ScoreMap map[ParameterID]float64

// Total sums every score in the map.
func (m ScoreMap) Total() float64 {
	var total float64
	for _, score := range m {
		total += score
	}
	return total
}

// Clone returns an independent copy. Cloning nil yields an empty map.
func (m ScoreMap) Clone() ScoreMap {
	out := make(ScoreMap, len(m))
	for id, score := range m {
		out[id] = score
	}
	return out
}

// Encode renders the map as the persisted JSON representation. A nil map
// encodes as the empty object, never as null.
func (m ScoreMap) Encode() (string, error) {
	if m == nil {
		return "{}", nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to encode score map: %w", err)
	}
	return string(raw), nil
}

// DecodeScoreMap parses the persisted representation. Empty input decodes as
// an empty map.
func DecodeScoreMap(raw string) (ScoreMap, error) {
	if raw == "" || raw == "null" {
		return ScoreMap{}, nil
	}
	var m ScoreMap
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, fmt.Errorf("failed to decode score map: %w", err)
	}
	if m == nil {
		m = ScoreMap{}
	}
	return m, nil
}

// Value implements driver.Valuer so score maps can be bound directly as
// query parameters.
func (m ScoreMap) Value() (driver.Value, error) {
	return m.Encode()
}

// Scan implements sql.Scanner for the TEXT column holding the JSON map.
func (m *ScoreMap) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*m = ScoreMap{}
		return nil
	case []byte:
		decoded, err := DecodeScoreMap(string(v))
		if err != nil {
			return err
		}
		*m = decoded
		return nil
	case string:
		decoded, err := DecodeScoreMap(v)
		if err != nil {
			return err
		}
		*m = decoded
		return nil
	default:
		return fmt.Errorf("cannot scan score map from %T", src)
	}
}

// Evaluation is one judge's scored assessment of one team in one round. The
// *Name/PSTitle fields are display joins populated by the repository list
// query, not columns of the evaluations table.
type Evaluation struct {
	ID                 int       `json:"id" db:"id"`
	TeamID             int       `json:"team_id" db:"team_id"`
	RoundID            int       `json:"round_id" db:"round_id"`
	EvaluatorID        int       `json:"evaluator_id" db:"evaluator_id"`
	ProblemStatementID *int      `json:"problem_statement_id" db:"problem_statement_id"`
	Scores             ScoreMap  `json:"scores" db:"scores"`
	Feedback           string    `json:"feedback" db:"feedback"`
	TotalScore         float64   `json:"total_score" db:"total_score"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`

	TeamName      string  `json:"team_name,omitempty" db:"-"`
	RoundName     string  `json:"round_name,omitempty" db:"-"`
	EvaluatorName string  `json:"evaluator_name,omitempty" db:"-"`
	PSTitle       *string `json:"ps_title,omitempty" db:"-"`
}
