package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"mug-store/internal/repository"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	categoriesTable = "categories"
	mugsTable       = "mugs"
)

var (
	categoryColumns = []string{"id", "name"}
	mugColumns      = []string{"id", "name", "description", "price", "category_id", "image", "created_at", "updated_at"}
)

//go:embed schema.sql
var schema string

type Storage struct {
	db *pgxpool.Pool
}

// NewPostgres connects to url using authToken as the password and creates
// the tables if they do not exist yet.
func NewPostgres(ctx context.Context, url, authToken string) (*Storage, error) {
	const op = "storage.postgres.New"

	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	cfg.ConnConfig.Password = authToken

	db, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// no arguments, so pgx sends it over the simple protocol and all statements run
	if _, err := db.Exec(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	s.db.Close()
	return nil
}

func psql() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// insertBatchSize keeps every multi-row INSERT well below the 65535 bind parameter limit.
const insertBatchSize = 1000

// insertBatches splits rows into multi-row INSERT statements of at most size rows each.
func insertBatches(table string, columns []string, rows [][]any, size int) []squirrel.InsertBuilder {
	batches := make([]squirrel.InsertBuilder, 0, (len(rows)+size-1)/size)
	for start := 0; start < len(rows); start += size {
		query := psql().Insert(table).Columns(columns...)
		for _, row := range rows[start:min(start+size, len(rows))] {
			query = query.Values(row...)
		}
		batches = append(batches, query)
	}

	return batches
}

// insertAll writes rows in batches inside one transaction, so a failed batch leaves nothing behind.
func insertAll(ctx context.Context, db *pgxpool.Pool, table string, columns []string, rows [][]any) (int, error) {
	var inserted int

	err := pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		for _, query := range insertBatches(table, columns, rows, insertBatchSize) {
			sql, args, err := query.ToSql()
			if err != nil {
				return err
			}

			tag, err := tx.Exec(ctx, sql, args...)
			if err != nil {
				return mapError(err)
			}
			inserted += int(tag.RowsAffected())
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// queryOne runs a statement expected to yield a single row.
func queryOne[T any](ctx context.Context, db *pgxpool.Pool, sql string, args []any) (T, error) {
	var zero T

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return zero, mapError(err)
	}

	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		return zero, mapError(err)
	}

	return item, nil
}

func queryAll[T any](ctx context.Context, db *pgxpool.Pool, sql string, args []any) ([]T, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, mapError(err)
	}

	return items, nil
}

func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%w: %s", repository.ErrAlreadyExists, pgErr.Message)
		case "23503":
			return fmt.Errorf("%w: %s", repository.ErrConstraint, pgErr.Message)
		}
	}

	return err
}
