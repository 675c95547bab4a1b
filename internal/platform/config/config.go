// Package config loads application configuration from environment variables.
// All variables use the CASESIM_ prefix; a .env file in the working
// directory is read first when present.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Session store backends.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Session SessionConfig
	Cache   CacheConfig
	Log     LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string
	Port int
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SessionConfig holds web session settings.
type SessionConfig struct {
	Store      string // "memory" or "redis"
	TTL        time.Duration
	CookieName string
}

// CacheConfig holds Redis connection settings.
type CacheConfig struct {
	URL string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from the environment, after applying .env.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(), nil
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Host: envStr("CASESIM_SERVER_HOST", "0.0.0.0"),
			Port: envInt("CASESIM_SERVER_PORT", 8080),
		},
		Session: SessionConfig{
			Store:      envStr("CASESIM_SESSION_STORE", StoreMemory),
			TTL:        time.Duration(envInt("CASESIM_SESSION_TTL_MINUTES", 120)) * time.Minute,
			CookieName: envStr("CASESIM_SESSION_COOKIE", "casesim_session"),
		},
		Cache: CacheConfig{
			URL: envStr("CASESIM_CACHE_URL", "redis://localhost:6379"),
		},
		Log: LogConfig{
			Level:  envStr("CASESIM_LOG_LEVEL", "info"),
			Format: envStr("CASESIM_LOG_FORMAT", "json"),
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("CASESIM_SERVER_PORT must be 1-65535, got %d", c.Server.Port)
	}
	if c.Session.Store != StoreMemory && c.Session.Store != StoreRedis {
		return fmt.Errorf("CASESIM_SESSION_STORE must be 'memory' or 'redis', got %q", c.Session.Store)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("CASESIM_SESSION_TTL_MINUTES must be positive")
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("CASESIM_SESSION_COOKIE must not be empty")
	}
	if c.Session.Store == StoreRedis && c.Cache.URL == "" {
		return fmt.Errorf("CASESIM_CACHE_URL is required for the redis session store")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("CASESIM_LOG_LEVEL must be debug, info, warn or error, got %q", c.Log.Level)
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("CASESIM_LOG_FORMAT must be 'json' or 'text', got %q", c.Log.Format)
	}
	return nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
