package postgres

import (
	"context"
	"database/sql"
)

// Queryer é satisfeito por *sql.DB, *sql.Tx e *Connection
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}
