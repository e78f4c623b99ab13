package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the client.
type Config struct {
	Environment string
	APIBaseURL  string
	StatePath   string
	StateSecret string
	HTTPTimeout time.Duration
}

// Load loads configuration from environment variables.
// It attempts to load from .env file if not in production.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production we rely on system environment variables only,
	// so a missing .env file is not an error.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment: env,
		APIBaseURL:  os.Getenv("EVENTCONNECT_API_URL"),
		StatePath:   os.Getenv("EVENTCONNECT_STATE_PATH"),
		StateSecret: os.Getenv("EVENTCONNECT_STATE_SECRET"),
		HTTPTimeout: 15 * time.Second,
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://localhost:3000/api"
	}
	if cfg.StatePath == "" {
		cfg.StatePath = "eventconnect.db"
	}
	if s := os.Getenv("EVENTCONNECT_HTTP_TIMEOUT"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			log.Printf("Warning: invalid EVENTCONNECT_HTTP_TIMEOUT %q, using default: %v", s, err)
		} else {
			cfg.HTTPTimeout = d
		}
	}

	return cfg, nil
}
