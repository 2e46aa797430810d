// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	StatsURL     string
	HTTPAddr     string
	PostgresDSN  string // empty disables storage
	FetchTimeout time.Duration
	LogLevel     string
}

const (
	defaultHTTPAddr = ":8080"
	defaultLogLevel = "info"
)

// Load reads an optional .env file, then environment variables. Variables
// already set in the process environment win over the file.
func Load() (*Config, error) {
	for _, path := range envPaths() {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	timeout, err := getEnvDuration("FETCH_TIMEOUT", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		StatsURL:     getEnvString("STATS_URL", ""),
		HTTPAddr:     getEnvString("HTTP_ADDR", defaultHTTPAddr),
		PostgresDSN:  getEnvString("POSTGRES_DSN", ""),
		FetchTimeout: timeout,
		LogLevel:     getEnvString("LOG_LEVEL", defaultLogLevel),
	}

	if cfg.StatsURL == "" {
		return nil, fmt.Errorf("STATS_URL is not set")
	}

	return cfg, nil
}

func (c *Config) StorageEnabled() bool { return c.PostgresDSN != "" }

func envPaths() []string {
	var paths []string
	if p := os.Getenv("WEBSTATS_ENV_FILE"); p != "" {
		paths = append(paths, p)
	}
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}
	return paths
}

func getEnvString(key, defaultValue string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
