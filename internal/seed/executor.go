package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RPCPath is the PostgREST-style procedure endpoint, relative to the API base URL.
const RPCPath = "/rpc/exec_sql"

type poster interface {
	Post(ctx context.Context, path string, body, out any) error
}

type execSQLBody struct {
	SQL string `json:"sql"`
}

// RESTExecutor calls exec_sql over HTTP with the shared API client.
type RESTExecutor struct {
	api poster
}

func NewRESTExecutor(api poster) *RESTExecutor {
	return &RESTExecutor{api: api}
}

func (e *RESTExecutor) ExecSQL(ctx context.Context, sql string) error {
	return e.api.Post(ctx, RPCPath, execSQLBody{SQL: sql}, nil)
}

// PostgresExecutor calls exec_sql directly on the database.
type PostgresExecutor struct {
	pool *pgxpool.Pool
}

func NewPostgresExecutor(pool *pgxpool.Pool) *PostgresExecutor {
	return &PostgresExecutor{pool: pool}
}

func (e *PostgresExecutor) ExecSQL(ctx context.Context, sql string) error {
	if _, err := e.pool.Exec(ctx, "SELECT exec_sql($1)", sql); err != nil {
		return fmt.Errorf("exec_sql: %w", err)
	}
	return nil
}
