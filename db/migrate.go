package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Migration statements are ordered so that referenced tables exist before the
// tables that point at them. The unique index on evaluations enforces the
// one-evaluation-per-(team, round, evaluator) rule at the store level.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS evaluators (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT NOT NULL,
		password TEXT NOT NULL,
		role TEXT NOT NULL,
		evaluator_id INTEGER REFERENCES evaluators (id),
		CONSTRAINT users_username_key UNIQUE (username)
	)`,
	`CREATE TABLE IF NOT EXISTS problem_statements (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		theme TEXT,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS teams (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		problem_statement_id INTEGER REFERENCES problem_statements (id),
		logo_key TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS rounds (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		sequence INTEGER NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS parameters (
		id SERIAL PRIMARY KEY,
		round_id INTEGER NOT NULL REFERENCES rounds (id),
		name TEXT NOT NULL,
		max_score INTEGER NOT NULL DEFAULT 10,
		CONSTRAINT parameters_max_score_check CHECK (max_score > 0)
	)`,
	`CREATE TABLE IF NOT EXISTS evaluations (
		id SERIAL PRIMARY KEY,
		team_id INTEGER NOT NULL REFERENCES teams (id),
		round_id INTEGER NOT NULL REFERENCES rounds (id),
		evaluator_id INTEGER NOT NULL REFERENCES evaluators (id),
		problem_statement_id INTEGER REFERENCES problem_statements (id),
		scores TEXT NOT NULL,
		feedback TEXT,
		total_score DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT evaluations_team_round_evaluator_key UNIQUE (team_id, round_id, evaluator_id)
	)`,
}

// Migrate applies the schema. Every statement is idempotent, so running it on
// an already migrated database is a no-op.
func Migrate(ctx context.Context, dbConn *sql.DB) error {
	for _, stmt := range migrations {
		if _, err := dbConn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
