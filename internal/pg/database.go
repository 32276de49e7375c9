package pg

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Database interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Conn routes queries to the transaction stored in ctx by TXManager, falling
// back to the pool outside of a transaction.
type Conn struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Conn {
	return &Conn{pool: pool}
}

func (c *Conn) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx, ok := txFromContext(ctx); ok {
		tag, err := tx.Exec(ctx, sql, args...)
		return tag, mapError(err)
	}
	tag, err := c.pool.Exec(ctx, sql, args...)
	return tag, mapError(err)
}

func (c *Conn) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if tx, ok := txFromContext(ctx); ok {
		rows, err := tx.Query(ctx, sql, args...)
		return rows, mapError(err)
	}
	rows, err := c.pool.Query(ctx, sql, args...)
	return rows, mapError(err)
}

func (c *Conn) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx, ok := txFromContext(ctx); ok {
		return row{tx.QueryRow(ctx, sql, args...)}
	}
	return row{c.pool.QueryRow(ctx, sql, args...)}
}

type row struct {
	pgx.Row
}

func (r row) Scan(dest ...any) error {
	return mapError(r.Row.Scan(dest...))
}
