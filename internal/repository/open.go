package repository

import (
	"context"
	"fmt"

	"family_tasks/internal/config"
	"family_tasks/internal/db"
	"family_tasks/internal/logger"
)

// Open builds the Store selected by cfg.StorageDriver. The Postgres schema
// is migrated before the store is returned.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		pool, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		logger.Info("storage ready", "driver", cfg.StorageDriver)
		return NewPostgresStore(pool), nil

	case config.DriverSQLite:
		gdb, err := db.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		s, err := NewGormStore(gdb)
		if err != nil {
			return nil, err
		}
		logger.Info("storage ready", "driver", cfg.StorageDriver, "path", cfg.SQLitePath)
		return s, nil

	case config.DriverMemory:
		logger.Warn("using in-memory storage, data is lost on restart")
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}
