package models

// Evaluator is a named judge identity, distinct from the login account that
// may represent it.
type Evaluator struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
