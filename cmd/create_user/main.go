package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"family_tasks/internal/config"
	"family_tasks/internal/domain"
	"family_tasks/internal/logger"
	"family_tasks/internal/repository"
	"family_tasks/internal/service"
)

// Creates an account in the configured storage, e.g. for cmd/ws_smoke.
// Re-running with an existing username just prints that user.
func main() {
	username := flag.String("username", "", "username")
	password := flag.String("password", "", "password (at least 6 characters)")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	creds := domain.Credentials{Username: *username, Password: *password}
	if creds.Username == "" || len(creds.Password) < 6 {
		fmt.Fprintln(os.Stderr, "usage: create_user -username NAME -password SECRET")
		os.Exit(2)
	}

	ctx := context.Background()
	store, err := repository.Open(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to open storage", "error", err)
	}
	defer store.Close()

	auth := service.NewAuthService(store, service.NewMemorySessionStore(), service.NewTokenSigner(cfg.SessionSecret), cfg.SessionTTL)

	u, err := auth.CreateUser(ctx, creds)
	switch {
	case errors.Is(err, domain.ErrUsernameTaken):
		u, err = store.GetUserByUsername(ctx, creds.Username)
		if err != nil {
			logger.Fatal("get user failed", "error", err)
		}
		logger.Info("user already exists", "id", u.ID)
	case err != nil:
		logger.Fatal("create user failed", "error", err)
	default:
		logger.Info("user created", "id", u.ID, "username", u.Username)
	}

	fmt.Printf("id=%d username=%s created_at=%s\n", u.ID, u.Username, u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"))
}
