package http

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"family_tasks/internal/config"
	"family_tasks/internal/http/handlers"
	"family_tasks/internal/http/middleware"
	"family_tasks/internal/logger"
	"family_tasks/internal/repository"
	"family_tasks/internal/service"
	"family_tasks/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	redis "github.com/redis/go-redis/v9"
)

// Deps are the collaborators the route layer is built from. Redis may be nil.
type Deps struct {
	Config *config.Config
	Store  repository.Store
	Auth   *service.AuthService
	Hub    *ws.Hub
	Redis  *redis.Client
}

// NewRouter returns an engine with the common middleware and every route registered.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(d.Config.TrustedProxies); err != nil {
		logger.Warn("invalid TRUSTED_PROXIES, trusting none", "error", err)
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.Metrics())

	if len(d.Config.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     d.Config.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	RegisterRoutes(r, d)
	return r
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	h := handlers.NewHandler(d.Store, d.Auth, d.Hub, handlers.HandlerConfig{
		CookieSecure:   cfg.CookieSecure,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	var extra map[string]handlers.Pinger
	if d.Redis != nil {
		extra = map[string]handlers.Pinger{
			"redis": handlers.PingFunc(func(ctx context.Context) error { return d.Redis.Ping(ctx).Err() }),
		}
	}
	healthHandler := handlers.NewHealthHandler(d.Store, cfg.AppVersion, extra)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.Use(middleware.RateLimit(d.Redis, "api", cfg.APIRateLimit, cfg.APIRateWindow))

	// Auth
	authRL := middleware.RateLimit(d.Redis, "auth", cfg.AuthRateLimit, cfg.AuthRateWindow)
	api.POST("/register", authRL, h.Register)
	api.POST("/login", authRL, h.Login)

	protected := api.Group("")
	protected.Use(middleware.Session(d.Auth))
	{
		protected.POST("/logout", h.Logout)
		protected.GET("/user", h.CurrentUser)
		protected.GET("/users", h.ListUsers)

		protected.GET("/lists", h.ListLists)
		protected.POST("/lists", h.CreateList)
		protected.GET("/lists/:id", h.GetList)
		protected.PATCH("/lists/:id", h.UpdateList)
		protected.DELETE("/lists/:id", h.DeleteList)

		protected.GET("/lists/:id/tasks", h.ListTasks)
		protected.POST("/lists/:id/tasks", h.CreateTask)
		protected.PATCH("/tasks/:id", h.UpdateTask)
		protected.DELETE("/tasks/:id", h.DeleteTask)

		protected.GET("/events", h.Events)
	}

	// Frontend static files
	registerFrontend(r, cfg.FrontendDir)
}

func registerFrontend(r *gin.Engine, dir string) {
	index := filepath.Join(dir, "index.html")
	r.Static("/assets", filepath.Join(dir, "assets"))
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.File(index)
	})
}
