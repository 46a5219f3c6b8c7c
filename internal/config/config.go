package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	SessionStoreRedis    = "redis"
	SessionStorePostgres = "postgres"

	AuthzBuiltin = "builtin"
	AuthzRego    = "rego"
)

type Config struct {
	DatabaseURL string

	RedisAddr     string
	RedisDB       int
	RedisPassword string

	SessionSecret     string
	SessionStore      string
	SessionTTL        time.Duration
	SessionPruneEvery time.Duration

	HTTPAddr            string
	WorkerCount         int
	AuthzEngine         string
	AlternateBackendURL string
	Seed                bool

	LogLevel  string
	LogFormat string
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		SessionSecret:       os.Getenv("SESSION_SECRET"),
		SessionStore:        envOr("SESSION_STORE", SessionStoreRedis),
		HTTPAddr:            envOr("HTTP_ADDR", ":8080"),
		AuthzEngine:         envOr("AUTHZ_ENGINE", AuthzBuiltin),
		AlternateBackendURL: os.Getenv("ALTERNATE_BACKEND_URL"),
		LogLevel:            envOr("LOG_LEVEL", "info"),
		LogFormat:           envOr("LOG_FORMAT", "json"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is not set")
	}

	switch cfg.SessionStore {
	case SessionStoreRedis:
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("REDIS_ADDR is not set")
		}
	case SessionStorePostgres:
	default:
		return nil, fmt.Errorf("invalid SESSION_STORE: %q", cfg.SessionStore)
	}

	switch cfg.AuthzEngine {
	case AuthzBuiltin, AuthzRego:
	default:
		return nil, fmt.Errorf("invalid AUTHZ_ENGINE: %q", cfg.AuthzEngine)
	}

	var err error
	if cfg.RedisDB, err = intEnv("REDIS_DB", 0, 0); err != nil {
		return nil, err
	}
	if cfg.WorkerCount, err = intEnv("WORKER_COUNT", 1, 1); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = durationEnv("SESSION_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.SessionPruneEvery, err = durationEnv("SESSION_PRUNE_INTERVAL", 15*time.Minute); err != nil {
		return nil, err
	}

	cfg.Seed = true
	if v := os.Getenv("SEED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SEED: %v", err)
		}
		cfg.Seed = b
	}

	return cfg, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def, min int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < min {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return n, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return d, nil
}
