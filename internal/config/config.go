// Package config loads runtime settings from the environment, with .env
// file support for local development.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultTimeout = 10 * time.Second
)

// Config holds the runtime settings for the client.
type Config struct {
	// BaseURL of the attraction API backend.
	BaseURL string
	// Timeout applied to every HTTP request.
	Timeout time.Duration
	// NoCache disables the response file cache.
	NoCache bool
}

// Load reads configuration from a .env file (if present) and the process
// environment. Environment variables win over .env entries.
func Load() *Config {
	// Missing .env is the normal case outside development.
	_ = godotenv.Load()

	cfg := &Config{
		BaseURL: "",
		Timeout: defaultTimeout,
	}

	if v := os.Getenv("TRIP_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("TRIP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if v := os.Getenv("TRIP_NO_CACHE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.NoCache = b
		}
	}

	return cfg
}
