package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ViewStoreMemory = "memory"
	ViewStoreRedis  = "redis"
)

// Config holds all configuration for the storefront. It is built once at
// startup and passed by value; nothing reads the environment after Load.
type Config struct {
	// Environment
	AppEnv   string
	LogLevel string

	// Server
	Port               string
	CORSAllowedOrigins []string

	// Backend
	BackendURL     string
	BackendTimeout time.Duration

	// View store
	ViewStore     string
	ViewTTL       time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Visitor cookie
	VisitorSecret string
	VisitorTTL    time.Duration
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded, using process environment: %v", err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary key lookup, which keeps tests
// off the process environment.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		AppEnv:        get("APP_ENV", "development"),
		LogLevel:      get("LOG_LEVEL", "info"),
		Port:          get("PORT", "8080"),
		BackendURL:    strings.TrimRight(get("BACKEND_URL", "http://localhost:8000"), "/"),
		ViewStore:     strings.ToLower(get("VIEW_STORE", ViewStoreMemory)),
		RedisAddr:     get("REDIS_ADDR", "localhost:6379"),
		RedisPassword: get("REDIS_PASSWORD", ""),
		VisitorSecret: get("VISITOR_SECRET", ""),
	}

	var err error
	if cfg.BackendTimeout, err = time.ParseDuration(get("BACKEND_TIMEOUT", "15s")); err != nil {
		return Config{}, fmt.Errorf("invalid BACKEND_TIMEOUT: %w", err)
	}
	if cfg.ViewTTL, err = time.ParseDuration(get("VIEW_TTL", "2h")); err != nil {
		return Config{}, fmt.Errorf("invalid VIEW_TTL: %w", err)
	}
	if cfg.VisitorTTL, err = time.ParseDuration(get("VISITOR_TTL", "720h")); err != nil {
		return Config{}, fmt.Errorf("invalid VISITOR_TTL: %w", err)
	}
	if cfg.RedisDB, err = strconv.Atoi(get("REDIS_DB", "0")); err != nil {
		return Config{}, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	for _, origin := range strings.Split(get("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	switch cfg.ViewStore {
	case ViewStoreMemory, ViewStoreRedis:
	default:
		return Config{}, fmt.Errorf("unsupported VIEW_STORE %q, use %q or %q", cfg.ViewStore, ViewStoreMemory, ViewStoreRedis)
	}

	if cfg.VisitorSecret == "" {
		if cfg.IsProduction() {
			return Config{}, fmt.Errorf("VISITOR_SECRET is required when APP_ENV=production")
		}
		cfg.VisitorSecret = "wanderworld-dev-secret"
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c Config) Addr() string {
	return ":" + c.Port
}
