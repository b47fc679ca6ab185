// Package config loads deployment configuration from the environment.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// APIBaseURL is the root of the marketplace backend.
	APIBaseURL string `env:"API_BASE_URL, default=http://localhost:8080"`
	// GoogleClientID enables Google sign-in. When empty the feature degrades
	// to unavailable instead of failing at startup.
	GoogleClientID string `env:"GOOGLE_CLIENT_ID"`
	// CredentialsPath is where the access/refresh token pair is persisted.
	// Defaults to $HOME/.movectl/credentials.json when empty.
	CredentialsPath string        `env:"CREDENTIALS_PATH"`
	HTTPTimeout     time.Duration `env:"HTTP_TIMEOUT, default=30s"`
	Env             string        `env:"ENV,       default=development"`
	LogLevel        string        `env:"LOG_LEVEL, default=info"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	if cfg.CredentialsPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.CredentialsPath = filepath.Join(home, ".movectl", "credentials.json")
	}
	return &cfg
}
