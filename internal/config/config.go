package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"family_tasks/internal/logger"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

type Config struct {
	AppPort    string
	AppVersion string

	StorageDriver string
	DatabaseURL   string
	SQLitePath    string

	SessionSecret string
	SessionTTL    time.Duration
	CookieSecure  bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AllowedOrigins []string
	// empty: X-Forwarded-For is ignored and the client ip is the peer address
	TrustedProxies []string

	APIRateLimit   int
	APIRateWindow  time.Duration
	AuthRateLimit  int
	AuthRateWindow time.Duration

	LogLevel    string
	LogJSON     bool
	FrontendDir string
}

// Load reads .env (if present) and the environment. Exits on a missing required value.
func Load() *Config {
	_ = godotenv.Load()

	cfg, err := FromEnv()
	if err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}
	return cfg
}

// FromEnv builds the config from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		AppPort:       getString("APP_PORT", "8080"),
		AppVersion:    getString("APP_VERSION", "dev"),
		StorageDriver: strings.ToLower(getString("STORAGE_DRIVER", DriverPostgres)),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SQLitePath:    getString("SQLITE_PATH", "family_tasks.db"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionTTL:    time.Duration(getInt("SESSION_TTL_HOURS", 24*7)) * time.Hour,
		CookieSecure:  os.Getenv("COOKIE_SECURE") == "true",
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getInt("REDIS_DB", 0),

		APIRateLimit:   getInt("API_RATE_LIMIT", 120),
		APIRateWindow:  time.Duration(getInt("API_RATE_WINDOW_SECONDS", 60)) * time.Second,
		AuthRateLimit:  getInt("AUTH_RATE_LIMIT", 10),
		AuthRateWindow: time.Duration(getInt("AUTH_RATE_WINDOW_SECONDS", 60)) * time.Second,

		LogLevel:    getString("LOG_LEVEL", "info"),
		LogJSON:     os.Getenv("LOG_JSON") == "true",
		FrontendDir: getString("FRONTEND_DIR", "./client/dist"),
	}

	cfg.AllowedOrigins = getList("ALLOWED_ORIGINS")
	cfg.TrustedProxies = getList("TRUSTED_PROXIES")

	if cfg.SessionSecret == "" {
		return nil, errors.New("SESSION_SECRET is not set")
	}

	switch cfg.StorageDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("DATABASE_URL is not set")
		}
	case DriverSQLite, DriverMemory:
	default:
		return nil, errors.New("unknown STORAGE_DRIVER " + cfg.StorageDriver)
	}

	return cfg, nil
}

func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// разделитель - запятая
func getList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// getInt returns def for empty, malformed or negative values.
func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}
