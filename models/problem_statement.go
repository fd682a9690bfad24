package models

type ProblemStatement struct {
	ID          int    `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Theme       string `json:"theme,omitempty" db:"theme"`
	Description string `json:"description" db:"description"`
}
