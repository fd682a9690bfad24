package repositories

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLExecutor abstracts *sql.DB and *sql.Tx so repository writes can take
// part in a caller-managed transaction.
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

func checkRowsAffected(result sql.Result) (int64, error) {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check affected rows: %w", err)
	}
	return rowsAffected, nil
}
