package models

const (
	RoleAdmin = "admin"
	RoleJudge = "judge"
)

// User is a login account. Judge accounts are linked to the evaluator
// identity they score as; admin accounts have no evaluator.
type User struct {
	ID          int    `json:"id" db:"id"`
	Username    string `json:"username" db:"username"`
	Password    string `json:"-" db:"password"`
	Role        string `json:"role" db:"role"`
	EvaluatorID *int   `json:"evaluator_id,omitempty" db:"evaluator_id"`
}

// IsJudge reports whether the account is a judge bound to an evaluator.
func (u *User) IsJudge() bool {
	return u.Role == RoleJudge
}

type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
