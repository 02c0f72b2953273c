package db

import (
	"context"
	"fmt"

	"family_tasks/internal/logger"
	"family_tasks/internal/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate applies every embedded migration in order. The files are written
// to be re-runnable, so applying them on each start is safe.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	all, err := migrations.All()
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	for _, m := range all {
		if _, err := pool.Exec(ctx, m.SQL); err != nil {
			return fmt.Errorf("apply %s: %w", m.Name, err)
		}
		logger.Debug("migration applied", "name", m.Name)
	}
	return nil
}
