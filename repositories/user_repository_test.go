package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/hackovate/judging-portal/models"
)

func TestGetByCredentialsExactMatch(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "username", "password", "role", "evaluator_id"}).
		AddRow(2, "rishabh", "rishabh123", models.RoleJudge, 1)
	mock.ExpectQuery(`SELECT .* FROM users\s+WHERE username = \$1 AND password = \$2`).
		WithArgs("rishabh", "rishabh123").
		WillReturnRows(rows)

	repo := NewPostgresUserRepository(db)
	user, err := repo.GetByCredentials(context.Background(), "rishabh", "rishabh123")
	require.NoError(t, err)
	require.Equal(t, "rishabh", user.Username)
	require.True(t, user.IsJudge())
	require.NotNil(t, user.EvaluatorID)
	require.Equal(t, 1, *user.EvaluatorID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByCredentialsMiss(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM users\s+WHERE username = \$1 AND password = \$2`).
		WithArgs("rishabh", "wrong").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := NewPostgresUserRepository(db)
	_, err = repo.GetByCredentials(context.Background(), "rishabh", "wrong")
	require.ErrorIs(t, err, ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
