// Package repository implements the service stores over PostgreSQL.
//
// Every query is an explicit SQL statement with pgx named arguments;
// rows are scanned into model types by their `db` tags.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the query surface shared by *pgxpool.Pool, *pgx.Conn and
// pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// notFound tags pgx.ErrNoRows with the table so sqlerr.HandleError can
// name the missing resource.
func notFound(table string) error {
	return fmt.Errorf("table:%s: %w", table, pgx.ErrNoRows)
}

// queryOne runs a statement returning exactly one row and scans it into
// T. A missing row becomes notFound(table).
func queryOne[T any](ctx context.Context, db DBTX, table, sql string, args pgx.NamedArgs) (*T, error) {
	rows, err := db.Query(ctx, sql, args)
	if err != nil {
		return nil, err
	}

	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound(table)
		}
		return nil, err
	}

	return item, nil
}

// queryAll scans every row into T. The result is never nil.
func queryAll[T any](ctx context.Context, db DBTX, sql string, args pgx.NamedArgs) ([]T, error) {
	rows, err := db.Query(ctx, sql, args)
	if err != nil {
		return nil, err
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}

	return items, nil
}

// deleteByID removes one row by primary key, returning notFound(table)
// when nothing matched.
func deleteByID(ctx context.Context, db DBTX, table string, id int64) error {
	tag, err := db.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = @id`, table), pgx.NamedArgs{"id": id})
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return notFound(table)
	}
	return nil
}
