// Package exec holds the small runtime surface that generated query
// bindings call into. It adapts the four declared result shapes onto
// pgx: execute-and-discard, execute-and-count, single-column collection,
// and row-mapped collection.
package exec

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgx satisfied by *pgx.Conn, *pgxpool.Pool and
// pgx.Tx. Generated bindings accept it so the same callable works inside
// and outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Unit executes a statement and discards any result rows.
func Unit(ctx context.Context, db Querier, sql string, args ...any) error {
	_, err := db.Exec(ctx, sql, args...)
	return err
}

// RowsAffected executes a statement and reports how many rows it touched.
func RowsAffected(ctx context.Context, db Querier, sql string, args ...any) (int64, error) {
	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Column runs a query and collects the first column of every row.
func Column[T any](ctx context.Context, db Querier, sql string, args ...any) ([]T, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[T])
}

// Collect runs a query and maps every row through scan.
func Collect[T any](ctx context.Context, db Querier, sql string, scan pgx.RowToFunc[T], args ...any) ([]T, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scan)
}
