package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	// BaseURL is the remote resource endpoint. Empty is allowed: requests
	// then carry only the query string, which works behind a local proxy.
	BaseURL string `env:"TURNLOG_API_URL"`

	// DebugLog is a file path for diagnostic output (stale fetches,
	// background refresh failures). Empty discards diagnostics.
	DebugLog string `env:"TURNLOG_DEBUG_LOG"`

	// ExportDir is where transcript exports are written.
	ExportDir string `env:"TURNLOG_EXPORT_DIR" envDefault:".transcripts"`
}

// Load reads the configuration from environment variables, honoring a local
// .env file when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
