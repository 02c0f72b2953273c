package db

import (
	"context"
	"fmt"

	"family_tasks/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Open creates a pool and checks it with a ping.
func Open(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create database pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

// Connect is Open for binaries: it exits the process on failure.
func Connect(dsn string) *pgxpool.Pool {
	pool, err := Open(context.Background(), dsn)
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}

	logger.Info("database connected")
	return pool
}
