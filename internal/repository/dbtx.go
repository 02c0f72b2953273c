package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"family_tasks/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// notFound maps pgx.ErrNoRows to domain.ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

// setClause collects "col = $n" fragments for a sparse UPDATE.
type setClause struct {
	parts []string
	args  []any
}

func (s *setClause) add(col string, v any) {
	s.args = append(s.args, v)
	s.parts = append(s.parts, fmt.Sprintf("%s = $%d", col, len(s.args)))
}

func (s *setClause) empty() bool {
	return len(s.parts) == 0
}

// build returns the SET list and the placeholder for the trailing id argument.
func (s *setClause) build(id int64) (string, string, []any) {
	args := append(s.args, id)
	return strings.Join(s.parts, ", "), fmt.Sprintf("$%d", len(args)), args
}
