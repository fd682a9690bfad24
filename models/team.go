package models

type Team struct {
	ID                 int    `json:"id" db:"id"`
	Name               string `json:"name" db:"name"`
	Description        string `json:"description" db:"description"`
	ProblemStatementID *int   `json:"problem_statement_id" db:"problem_statement_id"`

	LogoKey *string `json:"-" db:"logo_key"`
	LogoURL *string `json:"logo_url,omitempty" db:"-"`
}

// Assigned reports whether the team already has a problem statement. Teams
// without one cannot be evaluated.
func (t *Team) Assigned() bool {
	return t.ProblemStatementID != nil
}
