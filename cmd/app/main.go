package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"family_tasks/internal/config"
	httpServer "family_tasks/internal/http"
	"family_tasks/internal/http/middleware"
	"family_tasks/internal/logger"
	"family_tasks/internal/repository"
	"family_tasks/internal/service"
	"family_tasks/internal/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	store, err := repository.Open(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to open storage", "driver", cfg.StorageDriver, "error", err)
	}
	defer store.Close()

	var sessions service.SessionStore = service.NewMemorySessionStore()
	rdb := middleware.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if rdb != nil {
		defer rdb.Close()
		sessions = service.NewRedisSessionStore(rdb)
		logger.Info("redis connected", "addr", cfg.RedisAddr)
	}

	auth := service.NewAuthService(store, sessions, service.NewTokenSigner(cfg.SessionSecret), cfg.SessionTTL)
	hub := ws.NewHub()

	r := httpServer.NewRouter(httpServer.Deps{
		Config: cfg,
		Store:  store,
		Auth:   auth,
		Hub:    hub,
		Redis:  rdb,
	})

	// no WriteTimeout: /api/events connections are long lived
	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort, "version", cfg.AppVersion, "storage", cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	hub.Close()

	logger.Info("server exited")
}
